package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fundlift/fundlift/internal/domain"
)

func TestFundingPercent(t *testing.T) {
	tests := []struct {
		name   string
		goal   int64
		raised int64
		want   float64
	}{
		{"partial", 50000, 38000, 76},
		{"exact", 15000, 15000, 100},
		{"overfunded clamps at 100", 50000, 60000, 100},
		{"zero raised", 10000, 0, 0},
		{"zero goal", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Project{FundingGoal: tt.goal, Raised: tt.raised}
			assert.InDelta(t, tt.want, FundingPercent(p), 0.001)
		})
	}
}

func TestTotalsForCreator(t *testing.T) {
	catalog := []*domain.Project{
		{CreatorID: "c1", Raised: 38000, Donors: 842, Status: domain.StatusActive},
		{CreatorID: "c1", Raised: 14200, Donors: 389, Status: domain.StatusUnderReview},
		{CreatorID: "c2", Raised: 28500, Donors: 617, Status: domain.StatusActive},
	}

	totals := TotalsForCreator(catalog, "c1")
	assert.Equal(t, int64(52200), totals.TotalRaised)
	assert.Equal(t, 1231, totals.TotalSupporters)
	assert.Equal(t, 2, totals.ActiveCount)

	empty := TotalsForCreator(catalog, "nobody")
	assert.Equal(t, int64(0), empty.TotalRaised)
	assert.Equal(t, 0, empty.TotalSupporters)
	assert.Equal(t, 0, empty.ActiveCount)
}

func TestMetricsForAdmin(t *testing.T) {
	catalog := []*domain.Project{
		{Status: domain.StatusAwaitingVerification},
		{Status: domain.StatusUnderReview},
		{Status: domain.StatusActive},
		{Status: domain.StatusActive},
		{Status: domain.StatusRejected},
	}

	metrics := MetricsForAdmin(catalog)
	assert.Equal(t, 2, metrics.PendingReview)
	assert.Equal(t, 2, metrics.Verified)
	assert.Equal(t, 1, metrics.Rejected)
}
