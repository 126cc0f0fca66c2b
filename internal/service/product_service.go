package service

import (
	"context"
	"fmt"

	"mini-shop/internal/model"
	"mini-shop/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store repository.Store, logger zerolog.Logger) ProductService {
	return &productService{
		store:  store,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List returns every product as a client-ready document, seeding sample data
// first if the catalogue is empty.
func (s *productService) List(ctx context.Context) ([]map[string]any, error) {
	if !s.store.Available() {
		s.logger.Warn().Msg("storage unavailable, serving static fallback product")
		return fallbackProducts(), nil
	}

	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	docs, err := s.store.FetchAll(ctx, ProductCollection)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch products")
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		products = append(products, repository.Serialize(doc))
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// ensureSeeded inserts the sample catalogue when the product collection is
// empty. The count-then-insert is unsynchronised: concurrent first requests
// can race and seed twice. Accepted for this service; there is no uniqueness
// key on product title to lean on.
func (s *productService) ensureSeeded(ctx context.Context) error {
	count, err := s.store.Count(ctx, ProductCollection)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count products")
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, p := range sampleProducts() {
		if err := model.Validate(&p); err != nil {
			s.logger.Error().Err(err).Str("title", p.Title).Msg("sample product failed validation")
			return fmt.Errorf("invalid sample product %q: %w", p.Title, err)
		}

		if _, err := s.store.Insert(ctx, ProductCollection, p); err != nil {
			s.logger.Error().Err(err).Str("title", p.Title).Msg("failed to seed product")
			return fmt.Errorf("failed to seed product %q: %w", p.Title, err)
		}
	}

	s.logger.Info().Int("count", len(sampleProducts())).Msg("seeded empty product catalogue")

	return nil
}
