package entities

import (
	"errors"
	"time"
)

type Article struct {
	Id        int64
	CreatedAt time.Time
	Title     string
	Body      string
	Category  string
	// SubmittedBy is stamped from the authenticated identity at creation
	// and never changes afterwards.
	SubmittedBy int64
}

func NewArticle(title, body, category string, submittedBy int64) *Article {
	return &Article{
		CreatedAt:   time.Now(),
		Title:       title,
		Body:        body,
		Category:    category,
		SubmittedBy: submittedBy,
	}
}

func (a *Article) validate() error {
	if a.Title == "" {
		return errors.New("title must not be empty")
	}
	if a.Body == "" {
		return errors.New("body must not be empty")
	}
	if a.Category == "" {
		return errors.New("category must not be empty")
	}
	if a.SubmittedBy <= 0 {
		return errors.New("submitted_by must reference a user")
	}
	return nil
}

// ArticleWithAuthor is the read model for the joined article+author query.
type ArticleWithAuthor struct {
	Article
	AuthorUsername string
	AuthorEmail    string
}
