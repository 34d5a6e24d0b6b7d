package catalog

import (
	"log/slog"
	"slices"

	"go.uber.org/fx"

	"github.com/wutian475-collab/wutian111/pkg/logger"
)

var Module = fx.Module("catalog",
	fx.Provide(NewStore),
)

// Store is the read-only catalog handed to handlers and the view-state
// controller.
type Store struct {
	products []Product
	services []Service
}

// NewStore snapshots the compiled-in catalog.
func NewStore(log *slog.Logger) *Store {
	s := &Store{products: Products(), services: Services()}
	log.Debug("catalog loaded",
		logger.Scope("catalog"),
		slog.Int("products", len(s.products)),
		slog.Int("services", len(s.services)),
	)
	return s
}

// Products returns all products in display order.
func (s *Store) Products() []Product { return slices.Clone(s.products) }

// Services returns all services in display order.
func (s *Store) Services() []Service { return slices.Clone(s.services) }

// Filter applies FilterByCategory to the store's products.
func (s *Store) Filter(c Category) []Product {
	return FilterByCategory(s.Products(), c)
}

// CountByCategory returns how many products each filter tab shows.
func (s *Store) CountByCategory() map[Category]int {
	counts := map[Category]int{CategoryAll: len(s.products)}
	for _, p := range s.products {
		counts[p.Category]++
	}
	return counts
}
