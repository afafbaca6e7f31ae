package handler

import (
	"net/http"

	"article-service/internal/application/command"
	"article-service/internal/application/interfaces"
	"article-service/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

type ArticleHandler struct {
	articleService interfaces.ArticleService
}

func NewArticleHandler(articleService interfaces.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) Create(c echo.Context) error {
	var createCommand command.CreateArticleCommand
	if err := c.Bind(&createCommand); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.articleService.Create(callerID(c), &createCommand)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *ArticleHandler) GetById(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.articleService.FindById(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ArticleHandler) List(c echo.Context) error {
	result, err := h.articleService.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ArticleHandler) ListByUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.articleService.ListByUser(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ArticleHandler) ListByUserWithAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := h.articleService.ListByUserWithAuthor(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
