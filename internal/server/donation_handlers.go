package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fundlift/fundlift/internal/domain"
)

type DonationIntentRequest struct {
	ProjectID string               `json:"projectId"`
	Amount    int64                `json:"amount"`
	Method    domain.PaymentMethod `json:"method"`
}

// handleDonationIntent records the cosmetic donation flow's choice. It
// never touches the project's counters.
func (s *Server) handleDonationIntent(c echo.Context) error {
	var req DonationIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	intent, err := s.donations.RecordIntent(req.ProjectID, req.Amount, req.Method)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, intent)
}

type ApplyDonationRequest struct {
	Amount int64                `json:"amount"`
	Method domain.PaymentMethod `json:"method"`
}

// handleApplyDonation credits a confirmed donation. The Idempotency-Key
// header makes retries safe; a replayed key returns the original receipt.
func (s *Server) handleApplyDonation(c echo.Context) error {
	var req ApplyDonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	key := c.Request().Header.Get("Idempotency-Key")
	receipt, err := s.donations.Apply(c.Param("id"), req.Amount, req.Method, key)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, receipt)
}
