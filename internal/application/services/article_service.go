package services

import (
	"article-service/internal/application/command"
	"article-service/internal/application/interfaces"
	"article-service/internal/application/mapper"
	"article-service/internal/application/query"
	"article-service/internal/domain/apperrors"
	"article-service/internal/domain/entities"
	"article-service/internal/domain/repositories"
)

type ArticleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) interfaces.ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
	}
}

func (s *ArticleService) Create(submitterID int64, createCommand *command.CreateArticleCommand) (*command.CreateArticleCommandResult, error) {
	newArticle := entities.NewArticle(createCommand.Title, createCommand.Body, createCommand.Category, submitterID)
	validatedArticle, err := entities.NewValidatedArticle(newArticle)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	createdArticle, err := s.articleRepo.Create(validatedArticle)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := command.CreateArticleCommandResult{
		Result: mapper.NewArticleResultFromEntity(createdArticle),
	}

	return &result, nil
}

func (s *ArticleService) FindById(id int64) (*query.ArticleQueryResult, error) {
	article, err := s.articleRepo.FindById(id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if article == nil {
		return nil, apperrors.NotFound("article not found")
	}

	result := query.ArticleQueryResult{
		Result: mapper.NewArticleResultFromEntity(article),
	}

	return &result, nil
}

func (s *ArticleService) List() (*query.ArticleListResult, error) {
	articles, err := s.articleRepo.FindAll()
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := query.ArticleListResult{
		Result: mapper.NewArticleResultsFromEntities(articles),
	}

	return &result, nil
}

// ListByUser returns an empty list for a user with no articles; absence of
// rows is not an error here.
func (s *ArticleService) ListByUser(userID int64) (*query.ArticleListResult, error) {
	articles, err := s.articleRepo.FindBySubmitter(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := query.ArticleListResult{
		Result: mapper.NewArticleResultsFromEntities(articles),
	}

	return &result, nil
}

func (s *ArticleService) ListByUserWithAuthor(userID int64) (*query.ArticleWithAuthorListResult, error) {
	articles, err := s.articleRepo.FindBySubmitterWithAuthor(userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := query.ArticleWithAuthorListResult{
		Result: mapper.NewArticleWithAuthorResultsFromEntities(articles),
	}

	return &result, nil
}
