package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
)

// ErrTransport marks failures reaching the payment provider (DNS,
// timeout, connection reset) as opposed to failures the provider
// reported itself.
var ErrTransport = errors.New("redirect flow transport failure")

// UpstreamError carries the provider's HTTP status and raw body for a
// non-2xx response. It is logged in full server-side and never surfaced
// to clients.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("redirect flow request failed: status=%d body=%s", e.StatusCode, e.Body)
}

type CreateInput struct {
	Description        string
	SuccessRedirectURL string
	SessionToken       string
}

// RedirectFlowProvider obtains a hosted-checkout redirect URL for a
// donation. Implementations are chosen once at startup: the live
// GoCardless client when an access token is configured, the mock
// otherwise.
type RedirectFlowProvider interface {
	Name() string
	CreateRedirectFlow(ctx context.Context, input *CreateInput) (*entity.RedirectFlow, error)
}
