package provider

import (
	"context"
	"strings"
	"time"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
	"github.com/google/uuid"
)

const mockHostedPageBase = "https://pay-sandbox.gocardless.com/flow/"

// MockProvider fabricates redirect flows for development without
// GoCardless credentials. It never touches the network and never fails.
// It is deliberately not idempotent: each call mints a fresh id.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) CreateRedirectFlow(_ context.Context, _ *CreateInput) (*entity.RedirectFlow, error) {
	id := mockFlowID()
	now := time.Now().UTC()

	return &entity.RedirectFlow{
		ID:          id,
		Status:      entity.StatusPendingCustomerApproval,
		RedirectURI: mockHostedPageBase + id,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func mockFlowID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RE" + strings.ToUpper(raw[:20])
}
