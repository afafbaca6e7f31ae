package query

import "article-service/internal/application/common"

type ArticleQueryResult struct {
	Result *common.ArticleResult `json:"result"`
}

type ArticleListResult struct {
	Result []*common.ArticleResult `json:"result"`
}

type ArticleWithAuthorListResult struct {
	Result []*common.ArticleWithAuthorResult `json:"result"`
}
