package common

import "time"

type ArticleResult struct {
	Id          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	SubmittedBy int64     `json:"submitted_by"`
}

// ArticleWithAuthorResult flattens the author's public fields into the
// article for the joined listing.
type ArticleWithAuthorResult struct {
	ArticleResult
	AuthorUsername string `json:"author_username"`
	AuthorEmail    string `json:"author_email"`
}
