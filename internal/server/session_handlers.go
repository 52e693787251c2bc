package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fundlift/fundlift/internal/domain"
)

// SignInRequest is the demo sign-in form. Email and password are only
// presence-checked; creators must also give a display name, donors get one
// derived from the email, admins are always "Admin".
type SignInRequest struct {
	Role     domain.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
}

func (s *Server) handleSignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return jsonError(c, &domain.ValidationError{Field: "email/password", Reason: "must not be empty"})
	}

	name := req.Name
	switch req.Role {
	case domain.RoleCreator:
		if name == "" {
			return jsonError(c, &domain.ValidationError{Field: "name", Reason: "must not be empty"})
		}
	case domain.RoleDonor:
		if name == "" {
			name, _, _ = strings.Cut(req.Email, "@")
		}
	case domain.RoleAdmin:
		name = "Admin"
	}

	sess, err := s.sessions.SignIn(name, req.Role)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, sess)
}

func (s *Server) handleSignOut(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		s.sessions.SignOut(token)
	}
	return c.NoContent(http.StatusNoContent)
}

type NavigateRequest struct {
	Page string `json:"page"`
}

func (s *Server) handleNavigate(c echo.Context) error {
	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	sess := currentSession(c)
	if err := s.sessions.Navigate(sess.Token, req.Page); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
