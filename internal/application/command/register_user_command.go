package command

import "article-service/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
