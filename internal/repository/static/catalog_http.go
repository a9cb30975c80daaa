package static

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/njprem/FocoTour_APP_BackEnd/internal/domain"
)

// HTTPCatalog fetches the catalog document with a single GET.
type HTTPCatalog struct {
	url    string
	client *http.Client
}

func NewHTTPCatalog(url string, client *http.Client) *HTTPCatalog {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPCatalog{url: url, client: client}
}

func (c *HTTPCatalog) Name() string {
	return c.url
}

func (c *HTTPCatalog) Fetch(ctx context.Context) ([]domain.Destination, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: get %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog: HTTP error! status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog: read body: %w", err)
	}
	return decodeCatalog(data)
}
