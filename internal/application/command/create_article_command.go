package command

import "article-service/internal/application/common"

type CreateArticleCommand struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

type CreateArticleCommandResult struct {
	Result *common.ArticleResult `json:"result"`
}
