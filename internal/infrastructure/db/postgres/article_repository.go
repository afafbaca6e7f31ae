package postgres

import (
	"errors"
	"time"

	"article-service/internal/domain/entities"
	"article-service/internal/domain/repositories"
	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) repositories.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *entities.ValidatedArticle) (*entities.Article, error) {
	articleEntity := article.GetArticle()

	articleModel := ArticleModel{
		CreatedAt:   articleEntity.CreatedAt,
		Title:       articleEntity.Title,
		Body:        articleEntity.Body,
		Category:    articleEntity.Category,
		SubmittedBy: articleEntity.SubmittedBy,
	}

	if err := r.db.Create(&articleModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(articleModel.Id)
}

func (r *ArticleRepository) FindById(id int64) (*entities.Article, error) {
	var articleModel ArticleModel
	if err := r.db.Where("id = ?", id).First(&articleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&articleModel), nil
}

func (r *ArticleRepository) FindAll() ([]*entities.Article, error) {
	var articleModels []ArticleModel
	if err := r.db.Order("id").Find(&articleModels).Error; err != nil {
		return nil, err
	}

	return r.mapToEntities(articleModels), nil
}

func (r *ArticleRepository) FindBySubmitter(userID int64) ([]*entities.Article, error) {
	var articleModels []ArticleModel
	err := r.db.Where("submitted_by = ?", userID).Order("id").Find(&articleModels).Error
	if err != nil {
		return nil, err
	}

	return r.mapToEntities(articleModels), nil
}

type articleWithAuthorRow struct {
	Id             int64
	CreatedAt      time.Time
	Title          string
	Body           string
	Category       string
	SubmittedBy    int64
	AuthorUsername string
	AuthorEmail    string
}

func (r *ArticleRepository) FindBySubmitterWithAuthor(userID int64) ([]*entities.ArticleWithAuthor, error) {
	var rows []articleWithAuthorRow
	err := r.db.Table("articles").
		Select("articles.id, articles.created_at, articles.title, articles.body, articles.category, articles.submitted_by, users.username AS author_username, users.email AS author_email").
		Joins("JOIN users ON users.id = articles.submitted_by").
		Where("articles.submitted_by = ?", userID).
		Order("articles.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	articles := make([]*entities.ArticleWithAuthor, 0, len(rows))
	for i := range rows {
		articles = append(articles, &entities.ArticleWithAuthor{
			Article: entities.Article{
				Id:          rows[i].Id,
				CreatedAt:   rows[i].CreatedAt,
				Title:       rows[i].Title,
				Body:        rows[i].Body,
				Category:    rows[i].Category,
				SubmittedBy: rows[i].SubmittedBy,
			},
			AuthorUsername: rows[i].AuthorUsername,
			AuthorEmail:    rows[i].AuthorEmail,
		})
	}
	return articles, nil
}

func (r *ArticleRepository) mapToEntity(articleModel *ArticleModel) *entities.Article {
	return &entities.Article{
		Id:          articleModel.Id,
		CreatedAt:   articleModel.CreatedAt,
		Title:       articleModel.Title,
		Body:        articleModel.Body,
		Category:    articleModel.Category,
		SubmittedBy: articleModel.SubmittedBy,
	}
}

func (r *ArticleRepository) mapToEntities(articleModels []ArticleModel) []*entities.Article {
	articles := make([]*entities.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, r.mapToEntity(&articleModels[i]))
	}
	return articles
}
