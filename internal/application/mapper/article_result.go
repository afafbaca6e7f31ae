package mapper

import (
	"article-service/internal/application/common"
	"article-service/internal/domain/entities"
)

func NewArticleResultFromEntity(article *entities.Article) *common.ArticleResult {
	return &common.ArticleResult{
		Id:          article.Id,
		CreatedAt:   article.CreatedAt,
		Title:       article.Title,
		Body:        article.Body,
		Category:    article.Category,
		SubmittedBy: article.SubmittedBy,
	}
}

func NewArticleResultsFromEntities(articles []*entities.Article) []*common.ArticleResult {
	results := make([]*common.ArticleResult, 0, len(articles))
	for _, article := range articles {
		results = append(results, NewArticleResultFromEntity(article))
	}
	return results
}

func NewArticleWithAuthorResultsFromEntities(articles []*entities.ArticleWithAuthor) []*common.ArticleWithAuthorResult {
	results := make([]*common.ArticleWithAuthorResult, 0, len(articles))
	for _, article := range articles {
		results = append(results, &common.ArticleWithAuthorResult{
			ArticleResult:  *NewArticleResultFromEntity(&article.Article),
			AuthorUsername: article.AuthorUsername,
			AuthorEmail:    article.AuthorEmail,
		})
	}
	return results
}
