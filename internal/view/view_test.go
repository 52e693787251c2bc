package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundlift/fundlift/internal/domain"
)

func project(id, title string, category domain.Category, goal, raised int64, donors int, created time.Time) *domain.Project {
	return &domain.Project{
		ID:          id,
		Title:       title,
		Category:    category,
		Description: title + " description",
		FundingGoal: goal,
		Raised:      raised,
		Donors:      donors,
		CreatedDate: created,
		Status:      domain.StatusActive,
	}
}

func fixtureCatalog() []*domain.Project {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return []*domain.Project{
		project("1", "Clean Water Initiative", domain.CategoryHealthcare, 50000, 38000, 842, base),
		project("2", "Youth Tech Education", domain.CategoryEducation, 30000, 28500, 617, base.AddDate(0, 0, 10)),
		project("3", "Urban Garden Project", domain.CategoryEnvironment, 15000, 15000, 389, base.AddDate(0, 0, 20)),
	}
}

func ids(projects []*domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestApply_NoFilterTrending(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{Search: "", Category: CategoryAll, SortBy: SortTrending})

	require.Len(t, result, len(catalog))
	assert.Equal(t, []string{"1", "2", "3"}, ids(result), "descending by supporter count")
}

func TestApply_TrendingTiesKeepInsertionOrder(t *testing.T) {
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	catalog := []*domain.Project{
		project("a", "First", domain.CategoryCommunity, 1000, 0, 50, base),
		project("b", "Second", domain.CategoryCommunity, 1000, 0, 50, base),
		project("c", "Third", domain.CategoryCommunity, 1000, 0, 90, base),
	}

	result := Apply(catalog, Query{SortBy: SortTrending})
	assert.Equal(t, []string{"c", "a", "b"}, ids(result))
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{Search: "WATER", Category: CategoryAll})
	require.Len(t, result, 1)
	assert.Equal(t, "Clean Water Initiative", result[0].Title)

	// Description text matches too
	result = Apply(catalog, Query{Search: "garden project DESC"})
	require.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestApply_CategoryFilter(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{Category: "Education"})
	require.Len(t, result, 1)
	assert.Equal(t, "Youth Tech Education", result[0].Title)

	// The sentinel and the empty string both disable the filter
	assert.Len(t, Apply(catalog, Query{Category: CategoryAll}), 3)
	assert.Len(t, Apply(catalog, Query{Category: ""}), 3)
}

func TestApply_FiltersAreConjunctive(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{Search: "water", Category: "Education"})
	assert.Empty(t, result)
}

func TestApply_SortFunded(t *testing.T) {
	catalog := []*domain.Project{
		project("1", "A", domain.CategoryCommunity, 50000, 38000, 0, time.Now()), // 76%
		project("2", "B", domain.CategoryCommunity, 30000, 28500, 0, time.Now()), // 95%
		project("3", "C", domain.CategoryCommunity, 15000, 15000, 0, time.Now()), // 100%
	}

	result := Apply(catalog, Query{SortBy: SortFunded})
	assert.Equal(t, []string{"3", "2", "1"}, ids(result))
}

func TestApply_SortNewest(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{SortBy: SortNewest})
	assert.Equal(t, []string{"3", "2", "1"}, ids(result))
}

func TestApply_UnrecognizedSortKeepsCatalogOrder(t *testing.T) {
	catalog := fixtureCatalog()

	result := Apply(catalog, Query{SortBy: "alphabetical"})
	assert.Equal(t, []string{"1", "2", "3"}, ids(result))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := fixtureCatalog()
	before := ids(catalog)

	Apply(catalog, Query{Search: "tech", Category: CategoryAll, SortBy: SortFunded})
	Apply(catalog, Query{SortBy: SortTrending})

	assert.Equal(t, before, ids(catalog))
}

func TestApply_Deterministic(t *testing.T) {
	catalog := fixtureCatalog()
	q := Query{Search: "project", Category: CategoryAll, SortBy: SortFunded}

	first := Apply(catalog, q)
	second := Apply(catalog, q)
	assert.Equal(t, ids(first), ids(second))
}

func TestApply_DoesNotFilterByStatus(t *testing.T) {
	catalog := fixtureCatalog()
	catalog[1].Status = domain.StatusRejected
	catalog[2].Status = domain.StatusAwaitingVerification

	// Current listing behavior: moderation status is ignored here
	result := Apply(catalog, Query{})
	assert.Len(t, result, 3)
}
