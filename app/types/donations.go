package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ListTemplatesRequest carries the raw query parameters. Unrecognized
// values are not rejected here: the service falls back to the full
// catalog for an invalid type, which is part of the public contract.
type ListTemplatesRequest struct {
	Type     string
	Category string
}

func NewListTemplatesRequestFromContext(ctx echo.Context) *ListTemplatesRequest {
	return &ListTemplatesRequest{
		Type:     strings.ToLower(strings.TrimSpace(ctx.QueryParam("type"))),
		Category: strings.ToLower(strings.TrimSpace(ctx.QueryParam("category"))),
	}
}

type CreateRedirectFlowRequest struct {
	Description        string `json:"description"`
	SuccessRedirectURL string `json:"success_redirect_url"`
	SessionToken       string `json:"session_token"`
}

func NewCreateRedirectFlowRequestFromContext(ctx echo.Context) (*CreateRedirectFlowRequest, error) {
	var body CreateRedirectFlowRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Description = strings.TrimSpace(body.Description)
	body.SuccessRedirectURL = strings.TrimSpace(body.SuccessRedirectURL)
	body.SessionToken = strings.TrimSpace(body.SessionToken)

	return &body, nil
}

func (r *CreateRedirectFlowRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(r.SuccessRedirectURL) == "" {
		return errors.New("success_redirect_url is required")
	}
	if strings.TrimSpace(r.SessionToken) == "" {
		return errors.New("session_token is required")
	}
	return nil
}

type RedirectFlowResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RedirectURI string `json:"redirect_uri"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
