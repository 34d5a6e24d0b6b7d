// Package catalog holds the compiled-in products, services and page
// navigation of the site. Nothing in it is mutated after start.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownCategory is returned for values outside the category enum.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownAnchor is returned for hrefs that match no page section.
	ErrUnknownAnchor = errors.New("unknown anchor")
)

// Categories lists every valid category, "all" first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryOperation, CategoryVisual, CategoryAIAgent}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// ParseCategory converts user input into a Category. Empty input means all.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// FilterByCategory returns the products visible under category.
// CategoryAll returns the input unchanged; otherwise the matching entries are
// returned in their original relative order.
func FilterByCategory(items []Product, category Category) []Product {
	if category == CategoryAll {
		return items
	}
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Products returns a copy of the product catalog in display order.
func Products() []Product { return slices.Clone(products) }

// Services returns a copy of the services list.
func Services() []Service { return slices.Clone(services) }

// NavLinks returns the navigation entries.
func NavLinks() []NavLink { return slices.Clone(navLinks) }

// Agents returns the AI-agent showcase cards.
func Agents() []Agent {
	out := make([]Agent, len(agents))
	for i, a := range agents {
		a.Highlights = slices.Clone(a.Highlights)
		out[i] = a
	}
	return out
}

// FilterTabs returns the product filter buttons in display order.
func FilterTabs() []FilterTab { return slices.Clone(filterTabs) }

// ProjectTypes returns the project type options of the contact form.
func ProjectTypes() []Option { return slices.Clone(projectTypes) }

// Budgets returns the budget options of the contact form.
func Budgets() []Option { return slices.Clone(budgets) }

// Contact returns the direct contact channels.
func Contact() ContactChannels {
	c := contactChannels
	c.Social = slices.Clone(c.Social)
	return c
}

// Anchors returns the section identifiers in document order.
func Anchors() []string { return slices.Clone(anchors) }

// ResolveAnchor validates an in-page href of the form "#<anchor>" and
// returns the anchor without the leading '#'.
func ResolveAnchor(href string) (string, error) {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok || !slices.Contains(anchors, id) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAnchor, href)
	}
	return id, nil
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
