package catalogue

import (
	"fmt"
	"strings"
)

// validateCategories performs the structural checks on a category set.
// Returns a combined error describing all problems found, or nil if valid.
// Quiz fields are not checked here; see questions.Build.
func validateCategories(categories []Category) error {
	var errs []string

	if len(categories) == 0 {
		errs = append(errs, "catalogue has no categories")
	}

	names := make(map[string]bool, len(categories))
	slugs := make(map[string]string, len(categories))
	for i, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			errs = append(errs, fmt.Sprintf("category #%d has an empty name", i+1))
			continue
		}
		if strings.Contains(cat.Name, idSeparator) {
			errs = append(errs, fmt.Sprintf("category %q: name must not contain %q", cat.Name, idSeparator))
		}
		if names[cat.Name] {
			errs = append(errs, fmt.Sprintf("duplicate category: %q", cat.Name))
		}
		names[cat.Name] = true

		// Slugs address categories from the CLI and URLs, so they must not collide.
		if other, ok := slugs[cat.Slug()]; ok && other != cat.Name {
			errs = append(errs, fmt.Sprintf("categories %q and %q share slug %q", other, cat.Name, cat.Slug()))
		}
		slugs[cat.Slug()] = cat.Name

		if len(cat.Topics) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no topics", cat.Name))
		}

		topics := make(map[string]bool, len(cat.Topics))
		for j, rec := range cat.Topics {
			if strings.TrimSpace(rec.Topic) == "" {
				errs = append(errs, fmt.Sprintf("category %q topic #%d has an empty name", cat.Name, j+1))
				continue
			}
			if strings.Contains(rec.Topic, idSeparator) {
				errs = append(errs, fmt.Sprintf("topic %q: name must not contain %q", rec.ID(), idSeparator))
			}
			if topics[rec.Topic] {
				errs = append(errs, fmt.Sprintf("duplicate topic: %q", rec.ID()))
			}
			topics[rec.Topic] = true

			if strings.TrimSpace(rec.Definition) == "" {
				errs = append(errs, fmt.Sprintf("topic %q has an empty definition", rec.ID()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalogue validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
