package handler

import (
	"strings"

	"article-service/internal/domain/apperrors"
	"article-service/internal/infrastructure"
	"github.com/labstack/echo/v4"
)

// authUserIDKey is where the auth gate stores the verified subject id.
const authUserIDKey = "authUserID"

// RequireAuth is the auth gate: it rejects the request before the handler
// runs unless a well-formed, correctly signed, unexpired bearer token is
// present. It trusts the token's embedded identity without a store
// round-trip, so a user deleted after issuance still passes the gate and
// surfaces as 404 in the handler instead.
func RequireAuth(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperrors.Unauthorized("missing authorization header")
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return apperrors.Unauthorized("malformed authorization header")
			}

			userID, err := jwtService.ParseToken(token)
			if err != nil {
				return apperrors.Unauthorized(err.Error())
			}

			c.Set(authUserIDKey, userID)
			return next(c)
		}
	}
}

// callerID returns the identity the auth gate attached, or 0 if the route
// was wired without RequireAuth.
func callerID(c echo.Context) int64 {
	id, _ := c.Get(authUserIDKey).(int64)
	return id
}
