package services

import (
	"errors"

	"article-service/internal/application/command"
	"article-service/internal/application/interfaces"
	"article-service/internal/application/mapper"
	"article-service/internal/application/query"
	"article-service/internal/domain/apperrors"
	"article-service/internal/domain/entities"
	"article-service/internal/domain/repositories"
	"article-service/internal/infrastructure"
	"gorm.io/gorm"
)

// Register and Login intentionally reuse one message per failure family so
// responses never reveal which identifier exists.
const (
	msgIdentityTaken      = "username or email already in use"
	msgInvalidCredentials = "invalid email or password"
)

type UserService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
}

func NewUserService(userRepo repositories.UserRepository, jwtService *infrastructure.JWTService) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *UserService) Register(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	newUser := entities.NewUser(registerCommand.Username, registerCommand.Email, registerCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(registerCommand.Username, registerCommand.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.Conflict(msgIdentityTaken)
	}

	if err := newUser.HashPassword(); err != nil {
		return nil, apperrors.Internal(err)
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		// Concurrent registration can slip past the probe; the unique
		// index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(msgIdentityTaken)
		}
		return nil, apperrors.Internal(err)
	}

	result := command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}

	return &result, nil
}

func (s *UserService) Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if loginCommand.Email == "" || loginCommand.Password == "" {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	user, err := s.userRepo.FindByEmail(loginCommand.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.jwtService.GenerateToken(user.Id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	result := command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}

	return &result, nil
}

func (s *UserService) GetProfile(id int64) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	result := query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}

	return &result, nil
}

func (s *UserService) Replace(callerID, targetID int64, replaceCommand *command.ReplaceUserCommand) (*query.UserQueryResult, error) {
	if callerID != targetID {
		return nil, apperrors.Forbidden("you may only update your own account")
	}

	// The ownership check passes before existence is consulted, so a
	// caller whose account vanished after token issuance sees 404.
	user, err := s.userRepo.FindById(targetID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if err := user.UpdateProfile(replaceCommand.Username, replaceCommand.Email); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.save(user)
}

func (s *UserService) Patch(callerID, targetID int64, patchCommand *command.PatchUserCommand) (*query.UserQueryResult, error) {
	if callerID != targetID {
		return nil, apperrors.Forbidden("you may only update your own account")
	}

	user, err := s.userRepo.FindById(targetID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	username := user.Username
	if patchCommand.Username != nil {
		username = *patchCommand.Username
	}
	email := user.Email
	if patchCommand.Email != nil {
		email = *patchCommand.Email
	}

	if err := user.UpdateProfile(username, email); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	return s.save(user)
}

func (s *UserService) Delete(callerID, targetID int64) error {
	if callerID != targetID {
		return apperrors.Forbidden("you may only delete your own account")
	}

	deleted, err := s.userRepo.Delete(targetID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !deleted {
		return apperrors.NotFound("user not found")
	}

	return nil
}

func (s *UserService) save(user *entities.User) (*query.UserQueryResult, error) {
	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updatedUser, err := s.userRepo.Update(validatedUser)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(msgIdentityTaken)
		}
		return nil, apperrors.Internal(err)
	}

	result := query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}

	return &result, nil
}
