package router

import (
	"errors"
	"net/http"

	"article-service/internal/delivery/handler"
	"article-service/internal/domain/apperrors"
	"article-service/internal/infrastructure"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New assembles the echo instance: ambient middleware, the error mapper
// and the full route table.
func New(userHandler *handler.UserHandler, articleHandler *handler.ArticleHandler, jwtService *infrastructure.JWTService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	requireAuth := handler.RequireAuth(jwtService)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := e.Group("/auth")
	auth.POST("/register", userHandler.Register)
	auth.POST("/login", userHandler.Login)

	e.GET("/articles", articleHandler.List)
	e.GET("/articles/:id", articleHandler.GetById)
	e.POST("/articles", articleHandler.Create, requireAuth)

	e.GET("/users/:id", userHandler.GetProfile)
	e.GET("/users/:id/articles", articleHandler.ListByUser)
	e.GET("/users/:id/posts-with-user", articleHandler.ListByUserWithAuthor)
	e.PUT("/users/:id", userHandler.Replace, requireAuth)
	e.PATCH("/users/:id", userHandler.Patch, requireAuth)
	e.DELETE("/users/:id", userHandler.Delete, requireAuth)

	return e
}

// httpErrorHandler maps the domain error taxonomy to statuses and keeps
// internal causes out of response bodies.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperrors.Error
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.Kind.HTTPStatus()
		message = appErr.Message
		if appErr.Err != nil {
			c.Logger().Error(appErr.Err)
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	default:
		c.Logger().Error(err)
	}

	if err := c.JSON(status, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
