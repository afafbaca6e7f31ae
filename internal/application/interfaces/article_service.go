package interfaces

import (
	"article-service/internal/application/command"
	"article-service/internal/application/query"
)

type ArticleService interface {
	Create(submitterID int64, createCommand *command.CreateArticleCommand) (*command.CreateArticleCommandResult, error)
	FindById(id int64) (*query.ArticleQueryResult, error)
	List() (*query.ArticleListResult, error)
	ListByUser(userID int64) (*query.ArticleListResult, error)
	ListByUserWithAuthor(userID int64) (*query.ArticleWithAuthorListResult, error)
}
