package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driven"
	"github.com/riosdeldesierto/consulta-clientes/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CustomerAPI = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RequestIDHeader carries a per-request identifier for log correlation.
	RequestIDHeader = "X-Request-ID"

	acceptJSON = "application/json"
	acceptAny  = "*/*"
)

// Config configures a Client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	UserAgent         string

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the customer REST API.
// It is safe for concurrent use.
type Client struct {
	mu        sync.RWMutex
	baseURL   string
	http      *http.Client
	limiter   *RateLimiter
	userAgent string
}

// NewClient creates a new API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "consulta"
	}

	return &Client{
		baseURL:   normaliseBaseURL(cfg.BaseURL),
		http:      httpClient,
		limiter:   NewRateLimiter(cfg.RequestsPerSecond),
		userAgent: userAgent,
	}
}

func normaliseBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return domain.DefaultAPIURL
	}
	return raw
}

// BaseURL returns the base URL in use.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL switches the base URL for subsequent requests.
func (c *Client) SetBaseURL(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = normaliseBaseURL(raw)
}

// ListDocumentTypes fetches the document type catalog.
// The server may answer with a bare array or a paginated {"results": [...]} object.
func (c *Client) ListDocumentTypes(ctx context.Context) ([]domain.DocumentType, error) {
	body, err := c.get(ctx, "/tipos-documento/", nil, acceptJSON)
	if err != nil {
		return nil, err
	}

	types, err := decodeDocumentTypes(body)
	if err != nil {
		return nil, fmt.Errorf("decode document types: %w", err)
	}
	return types, nil
}

func decodeDocumentTypes(body []byte) ([]domain.DocumentType, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var types []domain.DocumentType
		if err := json.Unmarshal(trimmed, &types); err != nil {
			return nil, err
		}
		return types, nil
	}

	var page struct {
		Results []domain.DocumentType `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return []domain.DocumentType{}, nil
	}
	return page.Results, nil
}

// SearchCustomer looks up a customer by document type and number.
func (c *Client) SearchCustomer(
	ctx context.Context, documentTypeID domain.ID, documentNumber string,
) (*domain.Customer, error) {
	query := url.Values{}
	query.Set("tipo_documento_id", documentTypeID.String())
	query.Set("numero_documento", documentNumber)

	body, err := c.get(ctx, "/clientes/buscar/", query, acceptJSON)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := json.Unmarshal(body, &customer); err != nil {
		return nil, fmt.Errorf("decode customer: %w", err)
	}
	return &customer, nil
}

// ExportCustomer downloads the customer rendered in format.
func (c *Client) ExportCustomer(
	ctx context.Context, customerID domain.ID, format domain.ExportFormat,
) ([]byte, error) {
	query := url.Values{}
	query.Set("formato", format.String())

	path := "/clientes/" + url.PathEscape(customerID.String()) + "/exportar/"
	return c.get(ctx, path, query, acceptAny)
}

// GenerateLoyaltyReport downloads the loyalty spreadsheet.
func (c *Client) GenerateLoyaltyReport(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/reporte-fidelizacion/generar/", nil, acceptAny)
}

// get performs a single GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, path string, query url.Values, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	endpoint := c.BaseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	logger.Debug("GET %s [%s]", endpoint, requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Debug("No response [%s]: %v", requestID, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	logger.Debug("%d %s, %d bytes in %s [%s]",
		resp.StatusCode, http.StatusText(resp.StatusCode), len(body), time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, endpoint, body)
	}
	return body, nil
}
