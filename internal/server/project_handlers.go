package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fundlift/fundlift/internal/domain"
	"github.com/fundlift/fundlift/internal/view"
)

func (s *Server) handleBrowse(c echo.Context) error {
	q := view.Query{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sort"),
	}
	return c.JSON(http.StatusOK, s.catalog.Browse(q))
}

func (s *Server) handleSubmit(c echo.Context) error {
	var draft domain.ProjectDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	// Provenance comes from the session, not the client.
	sess := currentSession(c)
	draft.Creator = sess.User.Name
	draft.CreatorID = sess.User.ID

	project, err := s.catalog.Submit(draft)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (s *Server) handleGetProject(c echo.Context) error {
	project, err := s.catalog.Get(c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (s *Server) handleProjectUpdates(c echo.Context) error {
	updates, err := s.catalog.Updates(c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, updates)
}

func (s *Server) handleCreatorTotals(c echo.Context) error {
	return c.JSON(http.StatusOK, s.catalog.CreatorTotals(c.Param("id")))
}
