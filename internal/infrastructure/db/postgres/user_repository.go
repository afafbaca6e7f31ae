package postgres

import (
	"errors"

	"article-service/internal/domain/entities"
	"article-service/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Email:     userEntity.Email,
		Password:  userEntity.Password,
	}

	if err := r.db.Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user so the generated id is included
	return r.FindById(userModel.Id)
}

func (r *UserRepository) FindById(id int64) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

// ExistsByUsernameOrEmail is the registration uniqueness probe. The unique
// indexes on both columns remain the real guarantee under concurrency.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Id:        userEntity.Id,
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Email:     userEntity.Email,
		Password:  userEntity.Password,
	}

	if err := r.db.Save(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(userEntity.Id)
}

func (r *UserRepository) Delete(id int64) (bool, error) {
	result := r.db.Delete(&UserModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Email:     userModel.Email,
		Password:  userModel.Password,
	}
}
