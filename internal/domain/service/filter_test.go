package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

func fixture() []Enriched {
	services := []models.ServiceRecord{
		{LocalID: 10, IDService: "SVC-1", CustomerID: 1, Status: "queue", CreatedAt: day("2024-01-02")},
		{LocalID: 20, IDService: "SVC-2", CustomerID: 2, Status: "paid", CreatedAt: day("2024-01-01")},
	}
	customers := []models.CustomerRecord{
		{LocalID: 1, Name: "Alice"},
		{LocalID: 2, Name: "Bob"},
	}
	return Enrich(services, customers, nil)
}

func ids(list []Enriched) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.IDService)
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Run("active tab keeps only active statuses", func(t *testing.T) {
		out := Select(fixture(), Criteria{Tab: TabActive})
		require.Equal(t, []string{"SVC-1"}, ids(out))
		assert.Equal(t, "Alice", out[0].Customer.Name)
		assert.Empty(t, out[0].Items)
		assert.Equal(t, 0.0, out[0].TotalCost())
	})

	t.Run("history tab is the complement", func(t *testing.T) {
		out := Select(fixture(), Criteria{Tab: TabHistory})
		assert.Equal(t, []string{"SVC-2"}, ids(out))
	})

	t.Run("tabs partition the full status enumeration", func(t *testing.T) {
		all := []Status{
			StatusQueue, StatusInProgress, StatusCompleted,
			StatusPaid, StatusDebts, StatusCancelled,
		}
		var list []Enriched
		for i, st := range all {
			list = append(list, Enriched{ServiceRecord: models.ServiceRecord{
				IDService: string(st),
				Status:    string(st),
				CreatedAt: day("2024-01-01").AddDate(0, 0, i),
			}})
		}

		active := Select(list, Criteria{Tab: TabActive})
		history := Select(list, Criteria{Tab: TabHistory})

		assert.Len(t, active, 3)
		assert.Len(t, history, 3)
		for _, a := range active {
			for _, h := range history {
				assert.NotEqual(t, a.IDService, h.IDService)
			}
		}
		assert.Len(t, append(active, history...), len(all))
	})

	t.Run("explicit statuses override the tab", func(t *testing.T) {
		out := Select(fixture(), Criteria{Tab: TabActive, Statuses: []Status{StatusPaid}})
		assert.Equal(t, []string{"SVC-2"}, ids(out))
	})

	t.Run("empty explicit set means no status filter", func(t *testing.T) {
		out := Select(fixture(), Criteria{Statuses: []Status{}})
		assert.Equal(t, []string{"SVC-1", "SVC-2"}, ids(out))
	})

	t.Run("search matches customer name case-insensitively across tabs", func(t *testing.T) {
		out := Select(fixture(), Criteria{Search: "bob"})
		assert.Equal(t, []string{"SVC-2"}, ids(out))
	})

	t.Run("search matches the service id", func(t *testing.T) {
		out := Select(fixture(), Criteria{Search: "svc-1"})
		assert.Equal(t, []string{"SVC-1"}, ids(out))
	})

	t.Run("whitespace-only search disables text filtering", func(t *testing.T) {
		out := Select(fixture(), Criteria{Search: "   "})
		assert.Len(t, out, 2)
	})

	t.Run("status and search are AND-combined", func(t *testing.T) {
		out := Select(fixture(), Criteria{Tab: TabActive, Search: "bob"})
		assert.Empty(t, out)
	})

	t.Run("orders newest first", func(t *testing.T) {
		out := Select(fixture(), Criteria{})
		require.Len(t, out, 2)
		for i := 1; i < len(out); i++ {
			assert.False(t, out[i-1].CreatedAt.Before(out[i].CreatedAt))
		}
	})

	t.Run("equal timestamps keep fetch order", func(t *testing.T) {
		same := day("2024-01-01")
		list := []Enriched{
			{ServiceRecord: models.ServiceRecord{IDService: "SVC-A", Status: "queue", CreatedAt: same}},
			{ServiceRecord: models.ServiceRecord{IDService: "SVC-B", Status: "queue", CreatedAt: same}},
			{ServiceRecord: models.ServiceRecord{IDService: "SVC-C", Status: "queue", CreatedAt: same}},
		}
		out := Select(list, Criteria{Tab: TabActive})
		assert.Equal(t, []string{"SVC-A", "SVC-B", "SVC-C"}, ids(out))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		cr := Criteria{Tab: TabActive, Search: "a"}
		first := Select(fixture(), cr)
		second := Select(fixture(), cr)
		assert.Equal(t, ids(first), ids(second))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		list := fixture()
		before := ids(list)
		Select(list, Criteria{Tab: TabHistory, Search: "x"})
		assert.Equal(t, before, ids(list))
	})
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "IN PROGRESS", StatusInProgress.Display())
	assert.Equal(t, "QUEUE", StatusQueue.Display())
}
