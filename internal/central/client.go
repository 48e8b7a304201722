package central

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

// FetchError is returned for any non-2xx response from the central API.
// It carries the resource path and status so page loaders can log one
// useful aggregate line.
type FetchError struct {
	Path   string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("central api: fetch %q failed with status %d", e.Path, e.Status)
}

// Client fetches branch data from the central API. Every request carries
// the branch identifier as a query parameter plus the api key headers the
// central tunnel expects. There is no retry here: a failed fetch fails
// the page load that issued it.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

type objectEnvelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) get(ctx context.Context, path, branchID string, params url.Values, out any) error {
	q := url.Values{}
	q.Set("branch_id", branchID)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	reqURL := fmt.Sprintf("%s/api/%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("central api: build request for %q: %w", path, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("skip_zrok_interstitial", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("central api: fetch %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Path: path, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("central api: decode %q: %w", path, err)
	}
	return nil
}

func fetchList[T any](ctx context.Context, c *Client, path, branchID string, params url.Values) ([]T, error) {
	var env listEnvelope[T]
	if err := c.get(ctx, path, branchID, params, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func limitParams(limit int) url.Values {
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func (c *Client) Services(ctx context.Context, branchID string, limit int) ([]models.ServiceRecord, error) {
	return fetchList[models.ServiceRecord](ctx, c, "sync/services", branchID, limitParams(limit))
}

func (c *Client) Customers(ctx context.Context, branchID string, limit int) ([]models.CustomerRecord, error) {
	return fetchList[models.CustomerRecord](ctx, c, "sync/customers", branchID, limitParams(limit))
}

func (c *Client) ServiceItems(ctx context.Context, branchID string, limit int) ([]models.ServiceItemRecord, error) {
	return fetchList[models.ServiceItemRecord](ctx, c, "sync/service_items", branchID, limitParams(limit))
}

func (c *Client) Products(ctx context.Context, branchID string, limit int) ([]models.ProductRecord, error) {
	return fetchList[models.ProductRecord](ctx, c, "products", branchID, limitParams(limit))
}

// DateRange bounds a reports query; both ends are inclusive calendar days
// formatted as 2006-01-02.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) params() url.Values {
	v := url.Values{}
	if !r.Start.IsZero() {
		v.Set("startDate", r.Start.Format("2006-01-02"))
	}
	if !r.End.IsZero() {
		v.Set("endDate", r.End.Format("2006-01-02"))
	}
	return v
}

func (c *Client) Transactions(ctx context.Context, branchID string, rng DateRange, limit int) ([]models.TransactionRecord, error) {
	params := rng.params()
	params.Set("limit", strconv.Itoa(limit))
	return fetchList[models.TransactionRecord](ctx, c, "transactions", branchID, params)
}

func (c *Client) SalesSummary(ctx context.Context, branchID string, rng DateRange) (models.SalesSummary, error) {
	var env objectEnvelope[models.SalesSummary]
	if err := c.get(ctx, "reports/sales-summary", branchID, rng.params(), &env); err != nil {
		return models.SalesSummary{}, err
	}
	return env.Data, nil
}
