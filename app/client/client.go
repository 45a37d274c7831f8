// Package client wraps the donation API for programs embedding it,
// tracking the last fetched template list plus loading/error state so
// callers do not repeat transport and error plumbing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/types"
)

const (
	defaultTemplatesError    = "Failed to fetch templates"
	defaultRedirectFlowError = "Failed to create redirect flow"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.Mutex
	templates []entity.DonationTemplate
	loading   bool
	lastErr   string
	seq       uint64
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTemplates loads the template list, optionally filtered. The last
// successful result replaces the cached list wholesale; a failure
// records the error message and leaves the list untouched. Overlapping
// calls are sequence-tagged: a response that is no longer the newest
// issued request is discarded instead of overwriting fresher state.
func (c *Client) FetchTemplates(ctx context.Context, templateType, category string) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	items, err := c.fetchTemplates(ctx, templateType, category)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		// Stale response; a newer fetch owns the state now.
		return err
	}

	c.loading = false
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.templates = items
	return nil
}

func (c *Client) fetchTemplates(ctx context.Context, templateType, category string) ([]entity.DonationTemplate, error) {
	query := url.Values{}
	if strings.TrimSpace(templateType) != "" {
		query.Set("type", templateType)
	}
	if strings.TrimSpace(category) != "" {
		query.Set("category", category)
	}

	target := c.baseURL + "/api/donations/templates"
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errorMessage(body, defaultTemplatesError))
	}

	var items []entity.DonationTemplate
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateRedirectFlow posts a redirect-flow request and returns the
// parsed flow. It does not touch template/loading/error state: callers
// manage their own UI around the checkout hand-off.
func (c *Client) CreateRedirectFlow(ctx context.Context, req *types.CreateRedirectFlowRequest) (*types.RedirectFlowResponse, error) {
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/donations/redirect-flow", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errorMessage(body, defaultRedirectFlowError))
	}

	var flow types.RedirectFlowResponse
	if err := json.Unmarshal(body, &flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// Templates returns a copy of the last successfully fetched list.
func (c *Client) Templates() []entity.DonationTemplate {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]entity.DonationTemplate, len(c.templates))
	copy(result, c.templates)
	return result
}

func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the message of the last failed fetch, or "" after a
// successful one.
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func errorMessage(body []byte, fallback string) string {
	var envelope types.ErrorResponse
	if json.Unmarshal(body, &envelope) == nil && strings.TrimSpace(envelope.Error) != "" {
		return envelope.Error
	}
	return fallback
}
