package catalog

import (
	"testing"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/entity"
)

func TestAllIsDeterministic(t *testing.T) {
	first := All()
	second := All()

	if len(first) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if len(first) != len(second) {
		t.Fatalf("catalog size changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("catalog order changed at index %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	items := All()
	items[0].ID = "mutated"

	if All()[0].ID == "mutated" {
		t.Fatal("mutating the returned slice must not affect the catalog")
	}
}

func TestIntervalSetOnlyForRecurring(t *testing.T) {
	for _, item := range All() {
		switch item.Type {
		case entity.TemplateTypeRecurring:
			if item.Interval == "" {
				t.Fatalf("recurring template %s has no interval", item.ID)
			}
		case entity.TemplateTypeOneOff:
			if item.Interval != "" {
				t.Fatalf("one-off template %s has interval %s", item.ID, item.Interval)
			}
		default:
			t.Fatalf("template %s has unknown type %s", item.ID, item.Type)
		}
	}
}

func TestFilterMatchesTypeAndCategory(t *testing.T) {
	for _, templateType := range []entity.TemplateType{entity.TemplateTypeOneOff, entity.TemplateTypeRecurring} {
		for _, category := range []entity.TemplateCategory{entity.CategorySchool, entity.CategoryExhibition, entity.CategoryLiterature} {
			for _, item := range Filter(templateType, category) {
				if item.Type != templateType || item.Category != category {
					t.Fatalf("filter(%s, %s) returned %s with type=%s category=%s",
						templateType, category, item.ID, item.Type, item.Category)
				}
			}
		}
	}
}

func TestFilterUnionOverCategoriesEqualsTypeOnly(t *testing.T) {
	for _, templateType := range []entity.TemplateType{entity.TemplateTypeOneOff, entity.TemplateTypeRecurring} {
		union := map[string]bool{}
		for _, category := range []entity.TemplateCategory{entity.CategorySchool, entity.CategoryExhibition, entity.CategoryLiterature} {
			for _, item := range Filter(templateType, category) {
				union[item.ID] = true
			}
		}

		typeOnly := Filter(templateType, "")
		if len(typeOnly) != len(union) {
			t.Fatalf("union over categories has %d items, filter(%s) has %d", len(union), templateType, len(typeOnly))
		}
		for _, item := range typeOnly {
			if !union[item.ID] {
				t.Fatalf("template %s missing from category union", item.ID)
			}
		}
	}
}

func TestRecurringLiteratureSubset(t *testing.T) {
	matched := Filter(entity.TemplateTypeRecurring, entity.CategoryLiterature)
	if len(matched) != 4 {
		t.Fatalf("expected 4 recurring literature templates, got %d", len(matched))
	}

	ids := map[string]bool{}
	for _, item := range matched {
		if item.Type != entity.TemplateTypeRecurring || item.Category != entity.CategoryLiterature {
			t.Fatalf("template %s does not satisfy both predicates", item.ID)
		}
		ids[item.ID] = true
	}
	if !ids["recurring-20"] {
		t.Fatalf("expected recurring-20 in the subset, got %v", ids)
	}

	// No satisfying catalog item may be omitted.
	for _, item := range All() {
		if item.Type == entity.TemplateTypeRecurring && item.Category == entity.CategoryLiterature && !ids[item.ID] {
			t.Fatalf("template %s satisfies both predicates but was omitted", item.ID)
		}
	}
}

func TestByCategoryIgnoresType(t *testing.T) {
	items := ByCategory(entity.CategorySchool)
	if len(items) == 0 {
		t.Fatal("expected school templates")
	}

	seenOneOff, seenRecurring := false, false
	for _, item := range items {
		if item.Category != entity.CategorySchool {
			t.Fatalf("template %s has category %s", item.ID, item.Category)
		}
		switch item.Type {
		case entity.TemplateTypeOneOff:
			seenOneOff = true
		case entity.TemplateTypeRecurring:
			seenRecurring = true
		}
	}
	if !seenOneOff || !seenRecurring {
		t.Fatalf("expected both types in category listing: one-off=%v recurring=%v", seenOneOff, seenRecurring)
	}
}

func TestParseTemplateEnums(t *testing.T) {
	if _, ok := entity.ParseTemplateType("Recurring "); !ok {
		t.Fatal("expected recurring to parse with surrounding noise")
	}
	if _, ok := entity.ParseTemplateType("weekly"); ok {
		t.Fatal("expected unknown type to be rejected")
	}
	if _, ok := entity.ParseTemplateCategory("LITERATURE"); !ok {
		t.Fatal("expected literature to parse case-insensitively")
	}
	if _, ok := entity.ParseTemplateCategory("garden"); ok {
		t.Fatal("expected unknown category to be rejected")
	}
}
