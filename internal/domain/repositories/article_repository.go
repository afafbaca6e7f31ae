package repositories

import "article-service/internal/domain/entities"

type ArticleRepository interface {
	Create(article *entities.ValidatedArticle) (*entities.Article, error)
	// FindById returns (nil, nil) when no row matches.
	FindById(id int64) (*entities.Article, error)
	FindAll() ([]*entities.Article, error)
	FindBySubmitter(userID int64) ([]*entities.Article, error)
	FindBySubmitterWithAuthor(userID int64) ([]*entities.ArticleWithAuthor, error)
}
