package interfaces

import (
	"article-service/internal/application/command"
	"article-service/internal/application/query"
)

type UserService interface {
	Register(registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(id int64) (*query.UserQueryResult, error)
	Replace(callerID, targetID int64, replaceCommand *command.ReplaceUserCommand) (*query.UserQueryResult, error)
	Patch(callerID, targetID int64, patchCommand *command.PatchUserCommand) (*query.UserQueryResult, error)
	Delete(callerID, targetID int64) error
}
