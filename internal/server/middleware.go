package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/session"
)

const sessionContextKey = "fundlift_session"

// sessionRequired resolves the bearer token into a live session.
func (s *Server) sessionRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session token"})
		}

		sess, err := s.sessions.Get(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session token"})
		}

		c.Set(sessionContextKey, sess)
		return next(c)
	}
}

// adminRequired gates the moderation surface behind an admin session.
func (s *Server) adminRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := currentSession(c)
		if sess == nil || sess.User.Role != domain.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin session required"})
		}
		return next(c)
	}
}

func currentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}
