package handler

import (
	"net/http"
	"strconv"

	"article-service/internal/application/command"
	"article-service/internal/application/interfaces"
	"article-service/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService interfaces.UserService
}

func NewUserHandler(userService interfaces.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.userService.Register(&registerCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *UserHandler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.userService.Login(&loginCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.userService.GetProfile(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var replaceCommand command.ReplaceUserCommand
	if err := c.Bind(&replaceCommand); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.userService.Replace(callerID(c), id, &replaceCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patchCommand command.PatchUserCommand
	if err := c.Bind(&patchCommand); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.userService.Patch(callerID(c), id, &patchCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(callerID(c), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("id must be numeric")
	}
	return id, nil
}
