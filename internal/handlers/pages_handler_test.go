package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/usecase/pages"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const servicesFixture = `{"data": [
	{"local_id": 10, "id_service": "SVC-1", "customer_id": 1,
	 "status": "queue", "createdAt": "2024-01-02T00:00:00Z"},
	{"local_id": 20, "id_service": "SVC-2", "customer_id": 2,
	 "status": "paid", "createdAt": "2024-01-01T00:00:00Z"}
]}`

const customersFixture = `{"data": [
	{"local_id": 1, "name": "Alice"},
	{"local_id": 2, "name": "Bob"}
]}`

// pageRouter wires the page handlers against a central API stub.
// failPath, when set, makes that one central resource return 500.
func pageRouter(t *testing.T, failPath string) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/api/sync/services":
			w.Write([]byte(servicesFixture))
		case "/api/sync/customers":
			w.Write([]byte(customersFixture))
		case "/api/products":
			w.Write([]byte(`{"data": [{"id": 1, "name": "Toner", "price": 150000, "stock": 2, "minStock": 5}]}`))
		case "/api/reports/sales-summary":
			w.Write([]byte(`{"data": {"totalRevenue": 500000, "totalProfit": 100000, "totalTransactions": 2}}`))
		default:
			w.Write([]byte(`{"data": []}`))
		}
	}))
	t.Cleanup(srv.Close)

	registry := branches.NewRegistry([]branches.Branch{
		{Name: "Multi-Print", Subdomain: "multiprint"},
	})
	client := central.NewClient(srv.URL, "", time.Second)

	h := NewPagesHandler(
		registry,
		pages.NewLoadServicesPage(client),
		pages.NewLoadInventoryPage(client),
		pages.NewLoadCustomersPage(client),
		pages.NewLoadReportsPage(client),
	)

	r := gin.New()
	grp := r.Group("/api/pages/:branch")
	grp.GET("/services", h.Services)
	grp.GET("/inventory", h.Inventory)
	grp.GET("/customers", h.Customers)
	grp.GET("/reports", h.Reports)
	return r
}

func doGET(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

type listBody struct {
	Data  []map[string]any `json:"data"`
	Total int              `json:"total"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listBody {
	t.Helper()
	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestServicesEndpoint(t *testing.T) {
	t.Run("unknown branch is a 404 configuration error", func(t *testing.T) {
		w := doGET(pageRouter(t, ""), "/api/pages/nowhere/services")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "branch_not_found")
	})

	t.Run("active tab returns the enriched open ticket", func(t *testing.T) {
		w := doGET(pageRouter(t, ""), "/api/pages/multi-print/services?tab=active")
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeList(t, w)
		require.Len(t, body.Data, 1)
		row := body.Data[0]
		assert.Equal(t, "SVC-1", row["id_service"])
		assert.Equal(t, "Alice", row["customer_name"])
		assert.Equal(t, "QUEUE", row["status_label"])
		assert.Equal(t, "Rp 0", row["total_cost"])
	})

	t.Run("search finds by customer name regardless of tab", func(t *testing.T) {
		w := doGET(pageRouter(t, ""), "/api/pages/multi-print/services?search=bob")
		body := decodeList(t, w)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "SVC-2", body.Data[0]["id_service"])
	})

	t.Run("one failed fan-out fetch yields one aggregate 503 and no rows", func(t *testing.T) {
		w := doGET(pageRouter(t, "/api/sync/service_items"), "/api/pages/multi-print/services")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "central_unreachable")
		assert.NotContains(t, w.Body.String(), "SVC-1")
	})
}

func TestInventoryEndpoint(t *testing.T) {
	w := doGET(pageRouter(t, ""), "/api/pages/multi-print/inventory")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeList(t, w)
	require.Len(t, body.Data, 1)
	assert.Equal(t, true, body.Data[0]["low_stock"])
	assert.Equal(t, "Rp 150.000", body.Data[0]["price"])
}

func TestCustomersEndpoint(t *testing.T) {
	w := doGET(pageRouter(t, ""), "/api/pages/multi-print/customers")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeList(t, w)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "-", body.Data[0]["phone"], "missing phone renders as a dash")
}

// slowCustomersRouter wires the customers page against a central stub
// that takes slowBy to answer, so requests can overlap deliberately.
func slowCustomersRouter(t *testing.T, slowBy time.Duration) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(slowBy)
		w.Write([]byte(customersFixture))
	}))
	t.Cleanup(srv.Close)

	registry := branches.NewRegistry([]branches.Branch{
		{Name: "Multi-Print", Subdomain: "multiprint"},
	})
	client := central.NewClient(srv.URL, "", 5*time.Second)

	h := NewPagesHandler(
		registry,
		pages.NewLoadServicesPage(client),
		pages.NewLoadInventoryPage(client),
		pages.NewLoadCustomersPage(client),
		pages.NewLoadReportsPage(client),
	)

	r := gin.New()
	r.GET("/api/pages/:branch/customers", h.Customers)
	return r
}

func TestConcurrentViewers(t *testing.T) {
	t.Run("two viewers of one branch load independently", func(t *testing.T) {
		r := slowCustomersRouter(t, 300*time.Millisecond)

		var wg sync.WaitGroup
		codes := make([]int, 2)
		bodies := make([]string, 2)

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := doGET(r, "/api/pages/multi-print/customers")
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}(i)
			time.Sleep(100 * time.Millisecond)
		}
		wg.Wait()

		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusOK, codes[i], "each viewer must get full data, never a superseded 204")
			assert.Contains(t, bodies[i], "Alice")
		}
	})

	t.Run("a newer reload of the same view supersedes the older one", func(t *testing.T) {
		r := slowCustomersRouter(t, 300*time.Millisecond)

		var wg sync.WaitGroup
		var oldCode int
		wg.Add(1)
		go func() {
			defer wg.Done()
			oldCode = doGET(r, "/api/pages/multi-print/customers?view=v1").Code
		}()
		time.Sleep(100 * time.Millisecond)

		fresh := doGET(r, "/api/pages/multi-print/customers?view=v1")
		wg.Wait()

		require.Equal(t, http.StatusOK, fresh.Code)
		assert.Contains(t, fresh.Body.String(), "Alice")
		assert.Equal(t, http.StatusNoContent, oldCode, "the superseded reload must be dropped, not errored")
	})

	t.Run("distinct views of one branch do not supersede each other", func(t *testing.T) {
		r := slowCustomersRouter(t, 300*time.Millisecond)

		var wg sync.WaitGroup
		codes := make([]int, 2)
		views := []string{"v1", "v2"}

		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				codes[i] = doGET(r, "/api/pages/multi-print/customers?view="+views[i]).Code
			}(i)
			time.Sleep(100 * time.Millisecond)
		}
		wg.Wait()

		assert.Equal(t, http.StatusOK, codes[0])
		assert.Equal(t, http.StatusOK, codes[1])
	})
}

func TestReportsEndpoint(t *testing.T) {
	t.Run("summary comes back formatted", func(t *testing.T) {
		w := doGET(pageRouter(t, ""), "/api/pages/multi-print/reports")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_revenue":"Rp 500.000"`)
	})

	t.Run("bad date range is a 400", func(t *testing.T) {
		w := doGET(pageRouter(t, ""), "/api/pages/multi-print/reports?startDate=notadate")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_date_range")
	})
}
