package postgres

import "time"

type ArticleModel struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	Title     string `gorm:"not null"`
	Body      string `gorm:"not null"`
	Category  string `gorm:"not null"`
	// Plain foreign key, no cascade: deleting a user leaves their
	// articles in place.
	SubmittedBy int64      `gorm:"not null;index"`
	Submitter   *UserModel `gorm:"foreignKey:SubmittedBy"`
}

func (ArticleModel) TableName() string {
	return "articles"
}
