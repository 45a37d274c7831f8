package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
)

const (
	LiveBaseURL    = "https://api.gocardless.com"
	SandboxBaseURL = "https://api-sandbox.gocardless.com"

	gocardlessVersion = "2015-07-06"
)

type GoCardlessConfig struct {
	AccessToken string
	Environment string
	BaseURL     string
	HTTPTimeout time.Duration
}

type GoCardlessProvider struct {
	cfg    GoCardlessConfig
	client *http.Client
}

func NewGoCardlessProvider(cfg GoCardlessConfig) *GoCardlessProvider {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		if strings.EqualFold(strings.TrimSpace(cfg.Environment), "live") {
			cfg.BaseURL = LiveBaseURL
		} else {
			cfg.BaseURL = SandboxBaseURL
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &GoCardlessProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *GoCardlessProvider) Name() string {
	return "gocardless"
}

func (p *GoCardlessProvider) CreateRedirectFlow(ctx context.Context, input *CreateInput) (*entity.RedirectFlow, error) {
	if strings.TrimSpace(p.cfg.AccessToken) == "" {
		return nil, errors.New("gocardless access token is not configured")
	}

	payload := struct {
		RedirectFlows struct {
			Description        string `json:"description"`
			SessionToken       string `json:"session_token"`
			SuccessRedirectURL string `json:"success_redirect_url"`
		} `json:"redirect_flows"`
	}{}
	payload.RedirectFlows.Description = input.Description
	payload.RedirectFlows.SessionToken = input.SessionToken
	payload.RedirectFlows.SuccessRedirectURL = input.SuccessRedirectURL

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/redirect_flows", bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.AccessToken)
	req.Header.Set("GoCardless-Version", gocardlessVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope struct {
		RedirectFlows struct {
			ID          string `json:"id"`
			Status      string `json:"status"`
			RedirectURL string `json:"redirect_url"`
			CreatedAt   string `json:"created_at"`
			UpdatedAt   string `json:"updated_at"`
		} `json:"redirect_flows"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(envelope.RedirectFlows.Status)
	if status == "" {
		status = entity.StatusPendingCustomerApproval
	}

	now := time.Now().UTC()
	return &entity.RedirectFlow{
		ID:          strings.TrimSpace(envelope.RedirectFlows.ID),
		Status:      status,
		RedirectURI: strings.TrimSpace(envelope.RedirectFlows.RedirectURL),
		CreatedAt:   parseTimestamp(envelope.RedirectFlows.CreatedAt, now),
		UpdatedAt:   parseTimestamp(envelope.RedirectFlows.UpdatedAt, now),
	}, nil
}

// parseTimestamp accepts the provider's RFC3339 timestamps, falling back
// to the request time when the field is missing or malformed.
func parseTimestamp(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	return fallback
}
