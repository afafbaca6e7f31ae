package query

import "article-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
