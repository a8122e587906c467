package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mverbeke/campushub/internal/app/models"
)

// RestoRepository handles database operations for restos and their menus.
type RestoRepository struct {
	db     *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestoRepository creates a new resto repository
func NewRestoRepository(db *pgxpool.Pool, lgr zerolog.Logger) *RestoRepository {
	return &RestoRepository{db: db, logger: lgr}
}

// GetAllWithMenus retrieves every resto with its menu and menu items. Items
// are grouped per weekday on the menu; grouping order is the consumer's
// concern, storage order carries no meaning.
func (r *RestoRepository) GetAllWithMenus(ctx context.Context) ([]*models.Resto, error) {
	sqlStr, args, err := squirrel.Select(
		"r.id", "r.building_id", "r.name", "r.coordinates",
		"m.id", "m.start_date",
	).From("restos r").
		LeftJoin("menus m ON m.resto_id = r.id").
		OrderBy("r.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building resto list SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing restos: %w", err)
	}
	defer rows.Close()

	var restos []*models.Resto
	menusByID := make(map[int64]*models.Menu)
	for rows.Next() {
		var resto models.Resto
		var menuID *int64
		var menuStart *time.Time

		if err := rows.Scan(
			&resto.ID, &resto.BuildingID, &resto.Name, &resto.Coordinates,
			&menuID, &menuStart,
		); err != nil {
			return nil, err
		}

		if menuID != nil {
			menu := &models.Menu{
				ID:      *menuID,
				RestoID: resto.ID,
				Items:   make(map[models.Weekday][]*models.MenuItem),
			}
			if menuStart != nil {
				menu.StartDate = *menuStart
			}
			resto.Menu = menu
			menusByID[menu.ID] = menu
		}
		restos = append(restos, &resto)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(menusByID) == 0 {
		return restos, nil
	}

	menuIDs := make([]int64, 0, len(menusByID))
	for id := range menusByID {
		menuIDs = append(menuIDs, id)
	}

	itemSQL, itemArgs, err := squirrel.Select(
		"id", "menu_id", "weekday", "name", "description", "category", "is_vegan_and_halal",
	).From("menu_items").
		Where(squirrel.Eq{"menu_id": menuIDs}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building menu item SQL")
		return nil, err
	}

	itemRows, err := r.db.Query(ctx, itemSQL, itemArgs...)
	if err != nil {
		return nil, fmt.Errorf("error listing menu items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.MenuItem
		if err := itemRows.Scan(
			&item.ID, &item.MenuID, &item.Weekday, &item.Name,
			&item.Description, &item.Category, &item.IsVeganAndHalal,
		); err != nil {
			return nil, err
		}
		if menu, ok := menusByID[item.MenuID]; ok {
			menu.Items[item.Weekday] = append(menu.Items[item.Weekday], &item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return restos, nil
}

// HasCampuses reports whether at least one campus exists. Used at startup to
// decide whether the demo catalog needs seeding.
func (r *RestoRepository) HasCampuses(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM campuses)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking campuses: %w", err)
	}
	return exists, nil
}

// CreateCampus persists a campus together with its buildings, classrooms,
// restos and their menus in a single transaction. IDs are written back onto
// the models as rows are inserted.
func (r *RestoRepository) CreateCampus(ctx context.Context, campus *models.Campus) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO campuses (name, map, is_open)
			VALUES ($1, $2, $3)
			RETURNING id
		`, campus.Name, campus.Map, campus.IsOpen).Scan(&campus.ID)
		if err != nil {
			return fmt.Errorf("error creating campus: %w", err)
		}

		for _, building := range campus.Buildings {
			building.CampusID = campus.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO buildings (campus_id, name)
				VALUES ($1, $2)
				RETURNING id
			`, building.CampusID, building.Name).Scan(&building.ID)
			if err != nil {
				return fmt.Errorf("error creating building: %w", err)
			}

			for _, classroom := range building.Classrooms {
				classroom.BuildingID = building.ID
				err := tx.QueryRow(ctx, `
					INSERT INTO classrooms (building_id, coordinates)
					VALUES ($1, $2)
					RETURNING id
				`, classroom.BuildingID, classroom.Coordinates).Scan(&classroom.ID)
				if err != nil {
					return fmt.Errorf("error creating classroom: %w", err)
				}
			}

			for _, resto := range building.Restos {
				resto.BuildingID = building.ID
				err := tx.QueryRow(ctx, `
					INSERT INTO restos (building_id, name, coordinates)
					VALUES ($1, $2, $3)
					RETURNING id
				`, resto.BuildingID, resto.Name, resto.Coordinates).Scan(&resto.ID)
				if err != nil {
					return fmt.Errorf("error creating resto: %w", err)
				}

				if resto.Menu == nil {
					continue
				}
				resto.Menu.RestoID = resto.ID
				err = tx.QueryRow(ctx, `
					INSERT INTO menus (resto_id, start_date)
					VALUES ($1, $2)
					RETURNING id
				`, resto.Menu.RestoID, resto.Menu.StartDate).Scan(&resto.Menu.ID)
				if err != nil {
					return fmt.Errorf("error creating menu: %w", err)
				}

				for _, day := range models.Weekdays {
					for _, item := range resto.Menu.Items[day] {
						item.MenuID = resto.Menu.ID
						item.Weekday = day
						err := tx.QueryRow(ctx, `
							INSERT INTO menu_items (menu_id, weekday, name, description, category, is_vegan_and_halal)
							VALUES ($1, $2, $3, $4, $5, $6)
							RETURNING id
						`, item.MenuID, item.Weekday, item.Name, item.Description,
							item.Category, item.IsVeganAndHalal,
						).Scan(&item.ID)
						if err != nil {
							return fmt.Errorf("error creating menu item: %w", err)
						}
					}
				}
			}
		}
		return nil
	})
}
