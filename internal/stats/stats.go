// Package stats holds the pure numeric rollups derived from catalog
// fields. Everything here is O(n) over the input and recomputed on demand;
// nothing is cached or incrementally maintained.
package stats

import "github.com/fundlift/fundlift/internal/domain"

// FundingPercent is raised / goal as a percentage, clamped to 100 for
// display even when a project is overfunded.
func FundingPercent(project *domain.Project) float64 {
	if project.FundingGoal <= 0 {
		return 0
	}
	percent := float64(project.Raised) / float64(project.FundingGoal) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// CreatorTotals is the per-creator rollup shown on the creator dashboard.
type CreatorTotals struct {
	CreatorID       string `json:"creatorId"`
	TotalRaised     int64  `json:"totalRaised"`
	TotalSupporters int    `json:"totalSupporters"`
	ActiveCount     int    `json:"activeCount"`
}

// TotalsForCreator sums raised amounts and supporter counts over the
// creator's projects. ActiveCount counts every matching project regardless
// of status, matching the dashboard's loose "active projects" figure.
func TotalsForCreator(projects []*domain.Project, creatorID string) CreatorTotals {
	totals := CreatorTotals{CreatorID: creatorID}
	for _, project := range projects {
		if project.CreatorID != creatorID {
			continue
		}
		totals.TotalRaised += project.Raised
		totals.TotalSupporters += project.Donors
		totals.ActiveCount++
	}
	return totals
}

// AdminMetrics is the moderation rollup shown on the admin dashboard.
type AdminMetrics struct {
	PendingReview int `json:"pendingReview"`
	Verified      int `json:"verified"`
	Rejected      int `json:"rejected"`
}

// MetricsForAdmin counts projects by moderation bucket.
func MetricsForAdmin(projects []*domain.Project) AdminMetrics {
	var metrics AdminMetrics
	for _, project := range projects {
		switch {
		case project.Status.Pending():
			metrics.PendingReview++
		case project.Status == domain.StatusActive:
			metrics.Verified++
		case project.Status == domain.StatusRejected:
			metrics.Rejected++
		}
	}
	return metrics
}
