package sheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"content-ops-platform/internal/logger"
	"content-ops-platform/models"
)

var editSuffix = regexp.MustCompile(`/edit.*$`)

// ExportURL rewrites a sheet's edit-mode URL into its CSV export URL.
// No further validation; a malformed URL surfaces as a fetch failure.
func ExportURL(sheetURL string) string {
	return editSuffix.ReplaceAllString(sheetURL, "/export?format=csv")
}

// Client fetches the content sheet export and normalizes it into items.
type Client struct {
	httpClient *http.Client
	parser     RowParser
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		parser: CommaRowParser{},
	}
}

// NewClientWithParser allows substituting the row parser.
func NewClientWithParser(rp RowParser) *Client {
	c := NewClient()
	c.parser = rp
	return c
}

// FetchContentItems retrieves and parses the sheet. Fail-soft: any fetch or
// parse failure is absorbed and an empty list returned; the caller tracks
// its own loading/error flag around this call.
func (c *Client) FetchContentItems(ctx context.Context, sheetURL string) []models.ContentItem {
	tracer := otel.Tracer("sheet-client")
	ctx, span := tracer.Start(ctx, "sheet.fetch_content_items")
	defer span.End()

	items, err := c.fetch(ctx, sheetURL)
	if err != nil {
		span.SetAttributes(attribute.Bool("sheet.error", true))
		logger.Error("Failed to fetch sheet data", "url", sheetURL, "error", err)
		return []models.ContentItem{}
	}

	span.SetAttributes(attribute.Int("sheet.items", len(items)))
	return items
}

func (c *Client) fetch(ctx context.Context, sheetURL string) ([]models.ContentItem, error) {
	csvURL := ExportURL(sheetURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("sheet export returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return ParseItems(string(body), c.parser), nil
}
