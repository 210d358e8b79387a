package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hookhub/hookhub/internal/domain"
	"github.com/hookhub/hookhub/internal/logging"
	"github.com/hookhub/hookhub/internal/ports"
)

// SourceSummary reports what one source contributed to the catalog
type SourceSummary struct {
	Duplicates int
	Loaded     int
	Name       string
}

// CatalogService holds the loaded hook collection. The collection is
// read-only after LoadCatalog and is shared by every TUI session.
type CatalogService struct {
	categories []string
	hooks      []domain.Hook
	index      map[string]int
	summaries  []SourceSummary

	mu   sync.Mutex
	memo filterMemo
}

type filterMemo struct {
	category string
	query    string
	result   []domain.Hook
	valid    bool
}

// LoadCatalog loads every source concurrently and merges the results in
// source order. Hooks whose ID was already seen are dropped.
func LoadCatalog(ctx context.Context, sources ...ports.HookSource) (*CatalogService, error) {
	results := make([][]domain.Hook, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			hooks, err := src.Load(ctx)
			if err != nil {
				logging.Logger.Error("Failed to load catalog source", "source", src.Name(), "error", err)
				return fmt.Errorf("failed to load catalog %s: %w", src.Name(), err)
			}
			results[i] = hooks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &CatalogService{
		hooks:     []domain.Hook{},
		index:     make(map[string]int),
		summaries: make([]SourceSummary, 0, len(sources)),
	}
	for i, src := range sources {
		summary := SourceSummary{Name: src.Name()}
		for _, hook := range results[i] {
			if _, seen := s.index[hook.ID]; seen {
				logging.Logger.Warn("Duplicate hook id ignored", "id", hook.ID, "source", summary.Name)
				summary.Duplicates++
				continue
			}
			s.index[hook.ID] = len(s.hooks)
			s.hooks = append(s.hooks, hook)
			summary.Loaded++
		}
		s.summaries = append(s.summaries, summary)
	}

	s.categories = domain.ExtractCategories(s.hooks)
	logging.Logger.Info("Catalog loaded", "sources", len(sources), "hooks", len(s.hooks), "categories", len(s.categories)-1)
	return s, nil
}

// NewCatalogService wraps an in-memory collection
func NewCatalogService(hooks []domain.Hook) *CatalogService {
	s := &CatalogService{
		hooks: make([]domain.Hook, 0, len(hooks)),
		index: make(map[string]int, len(hooks)),
	}
	for _, hook := range hooks {
		if _, seen := s.index[hook.ID]; seen {
			continue
		}
		s.index[hook.ID] = len(s.hooks)
		s.hooks = append(s.hooks, hook)
	}
	s.categories = domain.ExtractCategories(s.hooks)
	return s
}

// Hooks returns the whole collection. Callers must not modify it.
func (s *CatalogService) Hooks() []domain.Hook {
	return s.hooks
}

// Categories returns "All" followed by the sorted distinct categories
func (s *CatalogService) Categories() []string {
	return s.categories
}

// Sources returns per-source load counts in source order
func (s *CatalogService) Sources() []SourceSummary {
	return s.summaries
}

// Filter applies the category and query filters. The last result is
// memoized; callers must not modify the returned slice.
func (s *CatalogService) Filter(category, query string) []domain.Hook {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memo.valid && s.memo.category == category && s.memo.query == query {
		return s.memo.result
	}

	result := domain.FilterHooks(s.hooks, category, query)
	s.memo = filterMemo{category: category, query: query, result: result, valid: true}
	return result
}

// Find returns the hook with the given id
func (s *CatalogService) Find(id string) (domain.Hook, error) {
	i, ok := s.index[id]
	if !ok {
		return domain.Hook{}, fmt.Errorf("%w: %s", domain.ErrHookNotFound, id)
	}
	return s.hooks[i], nil
}
