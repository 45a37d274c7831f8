package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
)

func TestMockProviderSynthesizesFlow(t *testing.T) {
	p := NewMockProvider()

	flow, err := p.CreateRedirectFlow(context.Background(), &CreateInput{
		Description:        "One-off donation of GBP 25",
		SuccessRedirectURL: "https://discoverislam.example/donate/thanks",
		SessionToken:       "session-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flow.Status != entity.StatusPendingCustomerApproval {
		t.Fatalf("unexpected status: %s", flow.Status)
	}
	if !strings.HasPrefix(flow.ID, "RE") {
		t.Fatalf("unexpected id prefix: %s", flow.ID)
	}
	if !strings.Contains(flow.RedirectURI, flow.ID) {
		t.Fatalf("redirect uri %s does not embed id %s", flow.RedirectURI, flow.ID)
	}
	if !strings.HasPrefix(flow.RedirectURI, "https://") {
		t.Fatalf("redirect uri is not absolute: %s", flow.RedirectURI)
	}
	if flow.CreatedAt.IsZero() || flow.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestMockProviderIsNotIdempotent(t *testing.T) {
	p := NewMockProvider()
	input := &CreateInput{
		Description:        "Monthly literature fund donation",
		SuccessRedirectURL: "https://discoverislam.example/donate/thanks",
		SessionToken:       "session-2",
	}

	first, err := p.CreateRedirectFlow(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.CreateRedirectFlow(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids for identical input, got %s twice", first.ID)
	}
}
