package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/models/dto"
	"github.com/mverbeke/campushub/internal/app/query"
	"github.com/mverbeke/campushub/internal/pkg/cache"
)

const (
	restoCatalogKey = "restos:catalog"
	restoCacheTTL   = 5 * time.Minute
)

// restoStore is the persistence surface the resto service needs.
type restoStore interface {
	GetAllWithMenus(ctx context.Context) ([]*models.Resto, error)
}

// RestoService handles resto and menu listings. The full catalog is cached
// in Redis; cache failures only cost the round trip to Postgres.
type RestoService struct {
	restos restoStore
	cache  *cache.Redis
	logger zerolog.Logger
}

// NewRestoService creates a new resto service instance
func NewRestoService(restos restoStore, redis *cache.Redis, lgr zerolog.Logger) *RestoService {
	return &RestoService{restos: restos, cache: redis, logger: lgr}
}

var restoOrdering = map[string]query.LessFunc[*models.Resto]{
	"name": func(a, b *models.Resto) bool { return a.Name < b.Name },
}

// List returns one page of restos with their menus, items grouped per
// weekday Monday through Friday. Search covers the resto name; the default
// order is ascending name.
func (s *RestoService) List(ctx context.Context, spec query.Spec) (*dto.RestoListResponse, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	restos, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result, err := query.Run(ctx, restos, spec, query.Definition[*models.Resto]{
		SearchFields: func(r *models.Resto) []string { return []string{r.Name} },
		Less:         restoOrdering,
		DefaultLess:  restoOrdering["name"],
	})
	if err != nil {
		return nil, err
	}

	response := &dto.RestoListResponse{
		Restos:     make([]dto.RestoResponse, 0, len(result.Items)),
		TotalCount: result.TotalCount,
	}
	for _, r := range result.Items {
		response.Restos = append(response.Restos, dto.RestoResponse{
			ID:          r.ID,
			Name:        r.Name,
			Coordinates: r.Coordinates,
			Menu:        menuResponse(r.Menu),
		})
	}
	return response, nil
}

// loadCatalog reads the resto catalog through the cache. Any cache error is
// logged and ignored; the database remains the source of truth.
func (s *RestoService) loadCatalog(ctx context.Context) ([]*models.Resto, error) {
	if raw, hit, err := s.cache.GetString(ctx, restoCatalogKey); err == nil && hit {
		var cached []*models.Resto
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		s.logger.Warn().Msg("Discarding undecodable resto cache entry")
	} else if err != nil {
		s.logger.Warn().Err(err).Msg("Resto cache read failed")
	}

	restos, err := s.restos.GetAllWithMenus(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load restos")
		return nil, fmt.Errorf("error listing restos: %w", err)
	}

	if encoded, err := json.Marshal(restos); err == nil {
		if err := s.cache.SetString(ctx, restoCatalogKey, string(encoded), restoCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("Resto cache write failed")
		}
	}
	return restos, nil
}

// menuResponse projects a menu, distributing items over the fixed
// Monday-to-Friday structure regardless of how rows came back.
func menuResponse(menu *models.Menu) *dto.MenuResponse {
	if menu == nil {
		return nil
	}

	response := &dto.MenuResponse{ID: menu.ID}
	for _, day := range models.Weekdays {
		items := make([]dto.MenuItemResponse, 0, len(menu.Items[day]))
		for _, item := range menu.Items[day] {
			items = append(items, dto.MenuItemResponse{
				ID:              item.ID,
				Name:            item.Name,
				Description:     item.Description,
				Category:        string(item.Category),
				IsVeganAndHalal: item.IsVeganAndHalal,
			})
		}
		switch day {
		case models.Monday:
			response.Items.Monday = items
		case models.Tuesday:
			response.Items.Tuesday = items
		case models.Wednesday:
			response.Items.Wednesday = items
		case models.Thursday:
			response.Items.Thursday = items
		case models.Friday:
			response.Items.Friday = items
		}
	}
	return response
}
