package entities

type ValidatedArticle struct {
	*Article
}

func NewValidatedArticle(article *Article) (*ValidatedArticle, error) {
	if err := article.validate(); err != nil {
		return nil, err
	}

	return &ValidatedArticle{Article: article}, nil
}

func (va *ValidatedArticle) GetArticle() *Article {
	return va.Article
}
