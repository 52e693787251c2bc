package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fundlift/fundlift/internal/domain"
)

func (s *Server) handleAdminQueue(c echo.Context) error {
	queue := s.moderation.Queue()
	if queue == nil {
		queue = []*domain.Project{}
	}
	return c.JSON(http.StatusOK, queue)
}

func (s *Server) handleAdminMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.moderation.Metrics())
}

type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
}

func (s *Server) handleUpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := s.moderation.SetStatus(c.Param("id"), req.Status); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
