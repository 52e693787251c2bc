package domain

import "time"

// ProjectUpdate is a dated note a creator attaches to a project. Updates
// are read-only once created.
type ProjectUpdate struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Body      string    `json:"body"`
}
