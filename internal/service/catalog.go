package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/repository"
)

// DefaultCatalogTTL is how long a catalog snapshot is served before the
// repository is consulted again.
const DefaultCatalogTTL = 5 * time.Minute

// ErrItemNotFound is returned when a menu item or extra is unknown.
var ErrItemNotFound = errors.New("catalog item not found")

// CatalogService serves menu items and extras with snapshot caching.
type CatalogService interface {
	MenuItems(ctx context.Context) ([]model.MenuItem, error)
	MenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	Extras(ctx context.Context) ([]model.ExtraOption, error)
	ResolveExtras(ctx context.Context, ids []string) ([]model.ExtraOption, error)
	UpsertMenuItem(ctx context.Context, item model.MenuItem, updatedBy string) (*model.MenuItem, error)
	UpsertExtra(ctx context.Context, extra model.ExtraOption, updatedBy string) (*model.ExtraOption, error)
	Invalidate()
}

// CatalogServiceImpl implements CatalogService over the catalog
// repository. Without a repository it serves the built-in defaults.
type CatalogServiceImpl struct {
	repo repository.CatalogRepositoryInterface
	ttl  time.Duration

	mu        sync.RWMutex
	items     []model.MenuItem
	extras    []model.ExtraOption
	itemIndex map[string]model.MenuItem
	extraIdx  map[string]model.ExtraOption
	expiresAt time.Time
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// WithCatalogTTL overrides the snapshot TTL.
func WithCatalogTTL(ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewCatalogService creates a new catalog service. The repository may
// be nil, in which case the built-in defaults are served.
func NewCatalogService(repo repository.CatalogRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		repo: repo,
		ttl:  DefaultCatalogTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot returns the cached catalog, refreshing it when expired.
// Refresh failures keep serving the previous snapshot.
func (s *CatalogServiceImpl) snapshot(ctx context.Context) ([]model.MenuItem, []model.ExtraOption) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		items, extras := s.items, s.extras
		s.mu.RUnlock()
		return items, extras
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Now().Before(s.expiresAt) {
		return s.items, s.extras
	}

	items, extras := s.loadLocked(ctx)
	s.items = items
	s.extras = extras
	s.itemIndex = make(map[string]model.MenuItem, len(items))
	for _, item := range items {
		s.itemIndex[item.ID] = item
	}
	s.extraIdx = make(map[string]model.ExtraOption, len(extras))
	for _, extra := range extras {
		s.extraIdx[extra.ID] = extra
	}
	s.expiresAt = time.Now().Add(s.ttl)

	return s.items, s.extras
}

// loadLocked fetches the catalog from the repository or falls back to
// the defaults. Callers hold s.mu.
func (s *CatalogServiceImpl) loadLocked(ctx context.Context) ([]model.MenuItem, []model.ExtraOption) {
	if s.repo == nil {
		return DefaultMenuItems(), DefaultExtras()
	}

	items, err := s.repo.ListMenuItems(ctx, true)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load menu items, serving previous snapshot")
		if s.items != nil {
			return s.items, s.extras
		}
		return DefaultMenuItems(), DefaultExtras()
	}

	extras, err := s.repo.ListExtras(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load extras, serving previous snapshot")
		if s.items != nil {
			return s.items, s.extras
		}
		return items, DefaultExtras()
	}

	return items, extras
}

// MenuItems returns the available menu items.
func (s *CatalogServiceImpl) MenuItems(ctx context.Context) ([]model.MenuItem, error) {
	items, _ := s.snapshot(ctx)
	return items, nil
}

// MenuItem returns a single available menu item.
func (s *CatalogServiceImpl) MenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	s.snapshot(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.itemIndex[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// Extras returns all extra options.
func (s *CatalogServiceImpl) Extras(ctx context.Context) ([]model.ExtraOption, error) {
	_, extras := s.snapshot(ctx)
	return extras, nil
}

// ResolveExtras maps extra IDs to their catalog entries. Unknown IDs
// fail the whole resolution so a line never carries a phantom extra.
func (s *CatalogServiceImpl) ResolveExtras(ctx context.Context, ids []string) ([]model.ExtraOption, error) {
	s.snapshot(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	resolved := make([]model.ExtraOption, 0, len(ids))
	for _, id := range ids {
		extra, ok := s.extraIdx[id]
		if !ok {
			return nil, ErrItemNotFound
		}
		resolved = append(resolved, extra)
	}
	return resolved, nil
}

// UpsertMenuItem saves a menu item and invalidates the snapshot.
func (s *CatalogServiceImpl) UpsertMenuItem(ctx context.Context, item model.MenuItem, updatedBy string) (*model.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	saved, err := s.repo.UpsertMenuItem(ctx, item, updatedBy)
	if err != nil {
		return nil, err
	}
	s.Invalidate()
	return saved, nil
}

// UpsertExtra saves an extra option and invalidates the snapshot.
func (s *CatalogServiceImpl) UpsertExtra(ctx context.Context, extra model.ExtraOption, updatedBy string) (*model.ExtraOption, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	saved, err := s.repo.UpsertExtra(ctx, extra, updatedBy)
	if err != nil {
		return nil, err
	}
	s.Invalidate()
	return saved, nil
}

// Invalidate expires the snapshot so the next read hits the repository.
func (s *CatalogServiceImpl) Invalidate() {
	s.mu.Lock()
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}

// DefaultMenuItems returns the seeded menu.
func DefaultMenuItems() []model.MenuItem {
	return []model.MenuItem{
		{ID: "szechuan-beef", Name: "Szechuan Beef", BasePrice: decimal.NewFromInt(65), Category: "main", Spicy: true, Available: true},
		{ID: "kung-pao-chicken", Name: "Kung Pao Chicken", BasePrice: decimal.NewFromInt(58), Category: "main", Spicy: true, Available: true},
		{ID: "sweet-sour-chicken", Name: "Sweet and Sour Chicken", BasePrice: decimal.NewFromInt(55), Category: "main", Available: true},
		{ID: "ginger-scallion-fish", Name: "Ginger Scallion Fish", BasePrice: decimal.NewFromInt(78), DiscountedPrice: decimal.NewFromInt(68), Category: "main", Available: true},
		{ID: "mapo-tofu", Name: "Mapo Tofu", BasePrice: decimal.NewFromInt(48), Category: "main", Vegetarian: true, Spicy: true, Available: true},
		{ID: "buddhas-delight", Name: "Buddha's Delight", BasePrice: decimal.NewFromInt(45), Category: "main", Vegan: true, Available: true},
		{ID: "spring-rolls", Name: "Spring Rolls", BasePrice: decimal.NewFromInt(24), Category: "starter", Vegetarian: true, Available: true},
		{ID: "wonton-soup", Name: "Wonton Soup", BasePrice: decimal.NewFromInt(28), Category: "starter", Available: true},
		{ID: "hot-sour-soup", Name: "Hot and Sour Soup", BasePrice: decimal.NewFromInt(26), Category: "starter", Spicy: true, Available: true},
		{ID: "jasmine-tea", Name: "Jasmine Tea", BasePrice: decimal.NewFromInt(12), Category: "drink", Vegan: true, GlutenFree: true, Available: true},
	}
}

// DefaultExtras returns the seeded extras.
func DefaultExtras() []model.ExtraOption {
	return []model.ExtraOption{
		{ID: "steamed-rice", Name: "Steamed Rice", Price: decimal.NewFromInt(18), Category: "rice"},
		{ID: "fried-rice", Name: "Fried Rice", Price: decimal.NewFromInt(24), Category: "rice"},
		{ID: "egg-noodles", Name: "Egg Noodles", Price: decimal.NewFromInt(22), Category: "rice"},
		{ID: "sweet-chili-sauce", Name: "Sweet Chili Sauce", Price: decimal.NewFromInt(6), Category: "sauce"},
		{ID: "garlic-sauce", Name: "Garlic Sauce", Price: decimal.NewFromInt(6), Category: "sauce"},
		{ID: "peanut-sauce", Name: "Peanut Sauce", Price: decimal.NewFromInt(8), Category: "sauce"},
		{ID: "steamed-broccoli", Name: "Steamed Broccoli", Price: decimal.NewFromInt(14), Category: "vegetable"},
		{ID: "bok-choy", Name: "Bok Choy", Price: decimal.NewFromInt(16), Category: "vegetable"},
		{ID: "extra-chicken", Name: "Extra Chicken", Price: decimal.NewFromInt(22), Category: "protein"},
		{ID: "extra-beef", Name: "Extra Beef", Price: decimal.NewFromInt(26), Category: "protein"},
		{ID: "extra-tofu", Name: "Extra Tofu", Price: decimal.NewFromInt(16), Category: "protein"},
	}
}
