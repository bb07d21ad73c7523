// Package remote is the HTTP client for the hosted protocolo backend. Only
// the operations the driver app needs are implemented: creating a protocolo
// and a lightweight health probe. The backend's internal schema is not
// modeled here; records travel as JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/logifrete/protocolos/internal/client/models"
	"github.com/logifrete/protocolos/internal/client/offline"
	"github.com/logifrete/protocolos/internal/common"
	"github.com/logifrete/protocolos/internal/logging"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logging.Logger
}

func NewClient(baseURL, apiKey string, log logging.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log.With("component", "remote"),
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// CreateProtocolo pushes one protocolo to the backend and returns the stored
// version. Non-2xx responses wrap common.ErrCreate.
func (c *Client) CreateProtocolo(ctx context.Context, p models.Protocolo) (models.Protocolo, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return models.Protocolo{}, fmt.Errorf("encode protocolo: %w", err)
	}

	url := c.baseURL + "/rest/v1/protocolos"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Protocolo{}, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Protocolo{}, fmt.Errorf("%w: %v", common.ErrCreate, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	c.log.Debug(ctx, "create protocolo response",
		"numero", p.Numero,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return models.Protocolo{}, fmt.Errorf("%w: status %d: %s", common.ErrCreate, resp.StatusCode, string(raw))
	}

	created := p
	if len(raw) > 0 {
		// the backend echoes the stored record (PostgREST returns an array)
		var many []models.Protocolo
		if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
			created = many[0]
		} else if err := json.Unmarshal(raw, &created); err != nil {
			created = p
		}
	}
	return created, nil
}

// Ping probes the backend root. It satisfies connectivity.Pinger.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend unhealthy: %s", resp.Status)
	}
	return nil
}

// CreateFn adapts the client to the reconciler's injected create operation.
func (c *Client) CreateFn() offline.CreateFunc {
	return func(ctx context.Context, p models.Protocolo) (models.Protocolo, error) {
		return c.CreateProtocolo(ctx, p)
	}
}
