package services

import (
	"context"
	"testing"

	"github.com/mverbeke/campushub/internal/app/models"
	"github.com/mverbeke/campushub/internal/app/query"
	"github.com/mverbeke/campushub/internal/pkg/logger"
)

// Services run with a nil cache in tests; every read falls through to the
// store, matching the degraded mode when Redis is unreachable.
func newRestoService(store *mockRestoStore) *RestoService {
	return NewRestoService(store, nil, logger.Nop())
}

func TestRestoListGroupsMenuPerWeekday(t *testing.T) {
	menu := &models.Menu{
		ID:      1,
		RestoID: 1,
		Items: map[models.Weekday][]*models.MenuItem{
			// Storage order scrambled on purpose.
			models.Friday: {{ID: 3, Name: "Fish", Category: models.FoodCategoryMain}},
			models.Monday: {
				{ID: 1, Name: "Tomato soup", Category: models.FoodCategorySoup},
				{ID: 2, Name: "Stew", Category: models.FoodCategoryMain},
			},
		},
	}
	store := &mockRestoStore{restos: []*models.Resto{
		{ID: 1, Name: "De Brug", Coordinates: "51.05,3.72", Menu: menu},
	}}
	svc := newRestoService(store)

	res, err := svc.List(context.Background(), query.Spec{Take: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(res.Restos) != 1 || res.Restos[0].Menu == nil {
		t.Fatalf("resto or menu missing: %+v", res.Restos)
	}

	items := res.Restos[0].Menu.Items
	if len(items.Monday) != 2 || items.Monday[0].Name != "Tomato soup" {
		t.Errorf("Monday items wrong: %+v", items.Monday)
	}
	if len(items.Friday) != 1 || items.Friday[0].Name != "Fish" {
		t.Errorf("Friday items wrong: %+v", items.Friday)
	}
	if len(items.Tuesday) != 0 || len(items.Wednesday) != 0 || len(items.Thursday) != 0 {
		t.Errorf("empty days must stay empty: %+v", items)
	}
}

func TestRestoListSearchAndOrder(t *testing.T) {
	store := &mockRestoStore{restos: []*models.Resto{
		{ID: 1, Name: "De Brug"},
		{ID: 2, Name: "Ter Beke"},
		{ID: 3, Name: "De Sterre"},
	}}
	svc := newRestoService(store)

	res, err := svc.List(context.Background(), query.Spec{SearchTerm: "de", Take: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if res.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", res.TotalCount)
	}
	if res.Restos[0].Name != "De Brug" || res.Restos[1].Name != "De Sterre" {
		t.Errorf("default name order wrong: %+v", res.Restos)
	}

	res, err = svc.List(context.Background(), query.Spec{OrderBy: "name", OrderDescending: true, Take: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if res.TotalCount != 3 || len(res.Restos) != 1 || res.Restos[0].Name != "Ter Beke" {
		t.Errorf("descending first page wrong: %+v", res.Restos)
	}
}

func TestRestoListWithoutMenu(t *testing.T) {
	store := &mockRestoStore{restos: []*models.Resto{{ID: 1, Name: "De Brug"}}}
	svc := newRestoService(store)

	res, err := svc.List(context.Background(), query.Spec{Take: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if res.Restos[0].Menu != nil {
		t.Errorf("resto without menu must project nil, got %+v", res.Restos[0].Menu)
	}
}
