package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
	"github.com/workhub-team/workhub/pkg/actor"
	"github.com/workhub-team/workhub/pkg/jwt"
)

// EchoAuth returns an Echo middleware that validates the bearer token,
// resolves the caller's workspace membership from the :workspaceID route
// param, and sets the actor into both the Echo context and the request
// context. Authorization failures reject before any handler runs.
func EchoAuth(jwtManager *jwt.Manager, memberRepo repositories.MemberRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			workspaceID := c.Param("workspaceID")
			if workspaceID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "Missing workspace id")
			}

			member, err := memberRepo.FindByUID(c.Request().Context(), workspaceID, claims.UID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "Not a member of this workspace")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve membership")
			}

			a := entities.Actor{
				UID:  member.UID,
				Name: member.DisplayName,
				Role: member.Role,
			}
			c.Set("actor", a)
			c.SetRequest(c.Request().WithContext(actor.WithActor(c.Request().Context(), a)))

			return next(c)
		}
	}
}

// extractToken reads the bearer token from the Authorization header, falling
// back to the access_token cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}

	return ""
}
