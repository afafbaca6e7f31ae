package repositories

import "article-service/internal/domain/entities"

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	// FindById and FindByEmail return (nil, nil) when no row matches.
	FindById(id int64) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Update(user *entities.ValidatedUser) (*entities.User, error)
	// Delete reports whether a row was actually removed.
	Delete(id int64) (bool, error)
}
