package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/catalog"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/factory"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/provider"
	"github.com/sirupsen/logrus"
)

type DonationService struct {
	provider provider.RedirectFlowProvider
	logger   logrus.FieldLogger
}

func NewDonationService(flowProvider provider.RedirectFlowProvider) *DonationService {
	return &DonationService{
		provider: flowProvider,
		logger:   factory.NewModuleLogger("donations-service"),
	}
}

// ListTemplates dispatches on the raw query values. A valid type narrows
// the catalog (optionally by category); a valid category alone matches
// both types; anything else, including an unrecognized type, yields the
// full catalog.
func (s *DonationService) ListTemplates(rawType, rawCategory string) ([]entity.DonationTemplate, error) {
	if templateType, ok := entity.ParseTemplateType(rawType); ok {
		if category, ok := entity.ParseTemplateCategory(rawCategory); ok {
			return catalog.Filter(templateType, category), nil
		}
		return catalog.Filter(templateType, ""), nil
	}

	if category, ok := entity.ParseTemplateCategory(rawCategory); ok {
		return catalog.ByCategory(category), nil
	}

	return catalog.All(), nil
}

// CreateRedirectFlow validates the three required fields and hands off
// to the configured provider. Failures are classified so the boundary
// can log detail while returning only a generic message.
func (s *DonationService) CreateRedirectFlow(ctx context.Context, description, successRedirectURL, sessionToken string) (*entity.RedirectFlow, error) {
	description = strings.TrimSpace(description)
	successRedirectURL = strings.TrimSpace(successRedirectURL)
	sessionToken = strings.TrimSpace(sessionToken)

	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidRequest)
	}
	if successRedirectURL == "" {
		return nil, fmt.Errorf("%w: success_redirect_url is required", ErrInvalidRequest)
	}
	if sessionToken == "" {
		return nil, fmt.Errorf("%w: session_token is required", ErrInvalidRequest)
	}

	parsed, err := url.Parse(successRedirectURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: success_redirect_url must be an absolute URL", ErrInvalidRequest)
	}

	flow, err := s.provider.CreateRedirectFlow(ctx, &provider.CreateInput{
		Description:        description,
		SuccessRedirectURL: successRedirectURL,
		SessionToken:       sessionToken,
	})
	if err != nil {
		return nil, s.classifyProviderError(err)
	}

	return flow, nil
}

func (s *DonationService) classifyProviderError(err error) error {
	var upstream *provider.UpstreamError
	if errors.As(err, &upstream) {
		s.logger.WithFields(logrus.Fields{
			"provider":        s.provider.Name(),
			"upstream_status": upstream.StatusCode,
			"upstream_body":   upstream.Body,
		}).Error("Provider rejected redirect flow")
		return fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if errors.Is(err, provider.ErrTransport) {
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	return err
}
