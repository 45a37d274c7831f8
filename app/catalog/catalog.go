// Package catalog holds the static list of donation offers shown on the
// donate pages. The list is defined once at startup and never mutated;
// declaration order is the default display order.
package catalog

import (
	"strconv"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
)

var templates = buildTemplates()

func buildTemplates() []entity.DonationTemplate {
	items := make([]entity.DonationTemplate, 0, 32)

	oneOffAmounts := []float64{10, 25, 50, 100}
	for _, category := range []entity.TemplateCategory{
		entity.CategorySchool,
		entity.CategoryExhibition,
		entity.CategoryLiterature,
	} {
		for _, amount := range oneOffAmounts {
			items = append(items, oneOff(len(items)+1, amount, category))
		}
	}

	recurringOffers := []struct {
		amount   float64
		category entity.TemplateCategory
		interval entity.RecurringInterval
	}{
		{5, entity.CategorySchool, entity.IntervalMonthly},
		{10, entity.CategorySchool, entity.IntervalMonthly},
		{25, entity.CategorySchool, entity.IntervalMonthly},
		{30, entity.CategorySchool, entity.IntervalQuarterly},
		{75, entity.CategorySchool, entity.IntervalQuarterly},
		{60, entity.CategorySchool, entity.IntervalYearly},
		{120, entity.CategorySchool, entity.IntervalYearly},
		{300, entity.CategorySchool, entity.IntervalYearly},
		{5, entity.CategoryExhibition, entity.IntervalMonthly},
		{10, entity.CategoryExhibition, entity.IntervalMonthly},
		{25, entity.CategoryExhibition, entity.IntervalMonthly},
		{30, entity.CategoryExhibition, entity.IntervalQuarterly},
		{75, entity.CategoryExhibition, entity.IntervalQuarterly},
		{60, entity.CategoryExhibition, entity.IntervalYearly},
		{120, entity.CategoryExhibition, entity.IntervalYearly},
		{300, entity.CategoryExhibition, entity.IntervalYearly},
		{10, entity.CategoryLiterature, entity.IntervalMonthly},
		{30, entity.CategoryLiterature, entity.IntervalQuarterly},
		{120, entity.CategoryLiterature, entity.IntervalYearly},
		{25, entity.CategoryLiterature, entity.IntervalMonthly},
	}
	for i, offer := range recurringOffers {
		items = append(items, recurring(i+1, offer.amount, offer.category, offer.interval))
	}

	return items
}

func oneOff(n int, amount float64, category entity.TemplateCategory) entity.DonationTemplate {
	return entity.DonationTemplate{
		ID:       "oneoff-" + strconv.Itoa(n),
		Amount:   amount,
		Currency: "GBP",
		Type:     entity.TemplateTypeOneOff,
		Category: category,
	}
}

func recurring(n int, amount float64, category entity.TemplateCategory, interval entity.RecurringInterval) entity.DonationTemplate {
	return entity.DonationTemplate{
		ID:       "recurring-" + strconv.Itoa(n),
		Amount:   amount,
		Currency: "GBP",
		Type:     entity.TemplateTypeRecurring,
		Category: category,
		Interval: interval,
		Metadata: map[string]string{
			"schedule":     scheduleHint(interval),
			"day_of_month": "1",
		},
	}
}

func scheduleHint(interval entity.RecurringInterval) string {
	switch interval {
	case entity.IntervalMonthly:
		return "Collected on the 1st of every month"
	case entity.IntervalQuarterly:
		return "Collected on the 1st of every third month"
	case entity.IntervalYearly:
		return "Collected once a year on the 1st"
	default:
		return ""
	}
}

// All returns every template in declaration order.
func All() []entity.DonationTemplate {
	result := make([]entity.DonationTemplate, len(templates))
	copy(result, templates)
	return result
}

// Filter returns templates matching the given type, further narrowed by
// category when it is non-empty. An empty result is not an error.
func Filter(templateType entity.TemplateType, category entity.TemplateCategory) []entity.DonationTemplate {
	result := make([]entity.DonationTemplate, 0, len(templates))
	for _, item := range templates {
		if item.Type != templateType {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, item)
	}
	return result
}

// ByCategory returns templates of every type matching the category.
func ByCategory(category entity.TemplateCategory) []entity.DonationTemplate {
	result := make([]entity.DonationTemplate, 0, len(templates))
	for _, item := range templates {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}
