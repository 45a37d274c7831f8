package entity

import (
	"strings"
	"time"
)

type TemplateType string

const (
	TemplateTypeOneOff    TemplateType = "one-off"
	TemplateTypeRecurring TemplateType = "recurring"
)

type TemplateCategory string

const (
	CategorySchool     TemplateCategory = "school"
	CategoryExhibition TemplateCategory = "exhibition"
	CategoryLiterature TemplateCategory = "literature"
)

type RecurringInterval string

const (
	IntervalMonthly   RecurringInterval = "monthly"
	IntervalQuarterly RecurringInterval = "quarterly"
	IntervalYearly    RecurringInterval = "yearly"
)

// StatusPendingCustomerApproval is the redirect flow status before the
// donor completes the hosted payment page.
const StatusPendingCustomerApproval = "pending_customer_approval"

// DonationTemplate is a statically defined donation offer. Interval is
// set if and only if Type is recurring.
type DonationTemplate struct {
	ID       string            `json:"id"`
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Type     TemplateType      `json:"type"`
	Category TemplateCategory  `json:"category"`
	Interval RecurringInterval `json:"interval,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RedirectFlow is the result of initiating a hosted checkout. It is not
// stored; the caller must follow RedirectURI immediately.
type RedirectFlow struct {
	ID          string
	Status      string
	RedirectURI string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ParseTemplateType(raw string) (TemplateType, bool) {
	switch TemplateType(strings.ToLower(strings.TrimSpace(raw))) {
	case TemplateTypeOneOff:
		return TemplateTypeOneOff, true
	case TemplateTypeRecurring:
		return TemplateTypeRecurring, true
	default:
		return "", false
	}
}

func ParseTemplateCategory(raw string) (TemplateCategory, bool) {
	switch TemplateCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategorySchool:
		return CategorySchool, true
	case CategoryExhibition:
		return CategoryExhibition, true
	case CategoryLiterature:
		return CategoryLiterature, true
	default:
		return "", false
	}
}
