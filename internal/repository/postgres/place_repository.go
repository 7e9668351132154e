package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const placeColumns = `
	p.id, p.category_id, p.address, p.latitude, p.longitude, p.main_image,
	p.website, p.phone, p.email, p.whatsapp, p.map_link,
	p.instagram, p.twitter, p.facebook, p.pinterest,
	p.outside_area, p.inside_area, p.reservation, p.kids_menu, p.baby_sit,
	p.kard_pay, p.cash, p.free_park_area, p.bar, p.coffee, p.dessert,
	p.kitchen, p.wheelchair_accessible_entrance, p.pets_allow, p.fish,
	p.meat_and_chicken,
	p.popular, p.historical_places, p.alcohol, p.beach, p.creative_places,
	p.castles, p.museum, p.parks, p.waterfalls, p.hiking_trails,
	p.kyrenia, p.nicosia, p.famagusta, p.iskele, p.guzelyurt, p.karpaz, p.lefke,
	p.currency_supported, p.is_active, p.created_at, p.updated_at,
	(SELECT COUNT(*) FROM place_likes pl WHERE pl.place_id = p.id) AS like_count`

// appendFilter extends the WHERE clause with the filter's predicates, all
// combined with AND. Tag columns come from the fixed tag tables, never from
// user input, so interpolating the column name is safe.
func appendFilter(query string, args []interface{}, filter domain.PlaceFilter) (string, []interface{}) {
	argIdx := len(args) + 1

	if len(filter.CategoryIDs) == 1 {
		query += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, filter.CategoryIDs[0])
		argIdx++
	} else if len(filter.CategoryIDs) > 1 {
		query += fmt.Sprintf(" AND p.category_id = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.CategoryIDs))
		argIdx++
	}

	if filter.CategoryName != "" {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM translations ct
			WHERE ct.entity_type = 'category' AND ct.entity_id = p.category_id::text
			  AND ct.field = 'name' AND ct.value ILIKE '%%' || $%d || '%%'
		)`, argIdx)
		args = append(args, filter.CategoryName)
		argIdx++
	}

	for _, col := range filter.TagColumns {
		query += fmt.Sprintf(" AND p.%s = TRUE", col)
	}

	if filter.Search != "" {
		query += fmt.Sprintf(` AND (
			p.address ILIKE '%%' || $%d || '%%'
			OR EXISTS (
				SELECT 1 FROM translations pt
				WHERE pt.entity_type = 'place' AND pt.entity_id = p.id::text
				  AND pt.field IN ('name', 'description')
				  AND pt.value ILIKE '%%' || $%d || '%%'
			)
			OR EXISTS (
				SELECT 1 FROM translations ct
				WHERE ct.entity_type = 'category' AND ct.entity_id = p.category_id::text
				  AND ct.field = 'name' AND ct.value ILIKE '%%' || $%d || '%%'
			)
		)`, argIdx, argIdx, argIdx)
		args = append(args, filter.Search)
		argIdx++
	}

	return query, args
}

// appendOrdering maps the public ordering parameter onto a SQL expression.
// Name and category orderings sort by the requested language's translation.
// Unknown values fall back to the default -created_at.
func appendOrdering(query string, args []interface{}, filter domain.PlaceFilter) (string, []interface{}) {
	field := strings.TrimPrefix(filter.Ordering, "-")
	argIdx := len(args) + 1

	var expr string
	switch field {
	case "name":
		expr = fmt.Sprintf(`(
			SELECT pt.value FROM translations pt
			WHERE pt.entity_type = 'place' AND pt.entity_id = p.id::text
			  AND pt.field = 'name' AND pt.language_code = $%d
			LIMIT 1
		)`, argIdx)
		args = append(args, filter.Language)
	case "category":
		expr = fmt.Sprintf(`(
			SELECT ct.value FROM translations ct
			WHERE ct.entity_type = 'category' AND ct.entity_id = p.category_id::text
			  AND ct.field = 'name' AND ct.language_code = $%d
			LIMIT 1
		)`, argIdx)
		args = append(args, filter.Language)
	case "created_at":
		expr = "p.created_at"
	case "popularity", "popular":
		expr = "p.popular"
	default:
		return query + " ORDER BY p.created_at DESC, p.id", args
	}

	dir := " ASC"
	if strings.HasPrefix(filter.Ordering, "-") {
		dir = " DESC"
	}
	return query + " ORDER BY " + expr + dir + ", p.id", args
}

func (r *placeRepository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	query := "SELECT " + placeColumns + " FROM places p WHERE p.is_active = TRUE"
	var args []interface{}
	query, args = appendFilter(query, args, filter)
	query, args = appendOrdering(query, args, filter)

	var places []*domain.Place
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to list places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.hydrate(ctx, places, false); err != nil {
		r.logger.Error("Failed to hydrate places", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return places, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := "SELECT " + placeColumns + " FROM places p WHERE p.is_active = TRUE AND p.id = $1"

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrPlaceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get place", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.hydrate(ctx, []*domain.Place{&place}, true); err != nil {
		r.logger.Error("Failed to hydrate place", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) FilterIDs(ctx context.Context, filter domain.PlaceFilter) ([]int64, error) {
	query := "SELECT p.id FROM places p WHERE p.is_active = TRUE"
	var args []interface{}
	query, args = appendFilter(query, args, filter)
	query += " ORDER BY p.id"

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		r.logger.Error("Failed to filter place ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return ids, nil
}

func (r *placeRepository) ToggleLike(ctx context.Context, placeID int64, deviceID string) (bool, int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin like transaction", zap.Error(err))
		return false, 0, errors.ErrDatabaseError
	}
	defer tx.Rollback() //nolint:errcheck

	var exists bool
	err = tx.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM places WHERE id = $1 AND is_active = TRUE)", placeID)
	if err != nil {
		r.logger.Error("Failed to check place", zap.Int64("place_id", placeID), zap.Error(err))
		return false, 0, errors.ErrDatabaseError
	}
	if !exists {
		return false, 0, errors.ErrPlaceNotFound
	}

	// The unique index on (place_id, device_id) makes the toggle race-free:
	// concurrent toggles for the same pair serialize on the index entry.
	res, err := tx.ExecContext(ctx, `
		INSERT INTO place_likes (place_id, device_id)
		VALUES ($1, $2)
		ON CONFLICT (place_id, device_id) DO NOTHING
	`, placeID, deviceID)
	if err != nil {
		r.logger.Error("Failed to insert like", zap.Int64("place_id", placeID), zap.Error(err))
		return false, 0, errors.ErrDatabaseError
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, 0, errors.ErrDatabaseError
	}

	liked := inserted > 0
	if !liked {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM place_likes WHERE place_id = $1 AND device_id = $2",
			placeID, deviceID); err != nil {
			r.logger.Error("Failed to delete like", zap.Int64("place_id", placeID), zap.Error(err))
			return false, 0, errors.ErrDatabaseError
		}
	}

	var count int
	err = tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM place_likes WHERE place_id = $1", placeID)
	if err != nil {
		r.logger.Error("Failed to count likes", zap.Int64("place_id", placeID), zap.Error(err))
		return false, 0, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit like transaction", zap.Error(err))
		return false, 0, errors.ErrDatabaseError
	}

	return liked, count, nil
}

func (r *placeRepository) IsLikedBy(ctx context.Context, placeID int64, deviceID string) (bool, error) {
	var liked bool
	err := r.db.GetContext(ctx, &liked,
		"SELECT EXISTS (SELECT 1 FROM place_likes WHERE place_id = $1 AND device_id = $2)",
		placeID, deviceID)
	if err != nil {
		r.logger.Error("Failed to check like", zap.Int64("place_id", placeID), zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return liked, nil
}

// hydrate attaches translations, categories and opening hours to the given
// places, plus the image gallery when withImages is set. Everything is
// loaded in batch queries keyed by place id.
func (r *placeRepository) hydrate(ctx context.Context, places []*domain.Place, withImages bool) error {
	if len(places) == 0 {
		return nil
	}

	ids := make([]int64, len(places))
	idStrs := make([]string, len(places))
	byID := make(map[int64]*domain.Place, len(places))
	for i, p := range places {
		ids[i] = p.ID
		idStrs[i] = strconv.FormatInt(p.ID, 10)
		byID[p.ID] = p
	}

	sets, err := loadTranslationSets(ctx, r.db, domain.EntityPlace, idStrs)
	if err != nil {
		return err
	}
	for _, p := range places {
		p.Translations = translationsFor(sets, strconv.FormatInt(p.ID, 10))
	}

	if err := r.attachCategories(ctx, places); err != nil {
		return err
	}
	if err := r.attachOpeningHours(ctx, ids, byID); err != nil {
		return err
	}
	if withImages {
		if err := r.attachImages(ctx, ids, byID); err != nil {
			return err
		}
	}

	return nil
}

func (r *placeRepository) attachCategories(ctx context.Context, places []*domain.Place) error {
	seen := make(map[int64]struct{})
	var categoryIDs []int64
	for _, p := range places {
		if _, ok := seen[p.CategoryID]; !ok {
			seen[p.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, p.CategoryID)
		}
	}

	var categories []*domain.Category
	err := r.db.SelectContext(ctx, &categories,
		"SELECT id, icon_key FROM categories WHERE id = ANY($1)", pq.Array(categoryIDs))
	if err != nil {
		return err
	}

	idStrs := make([]string, len(categories))
	for i, c := range categories {
		idStrs[i] = strconv.FormatInt(c.ID, 10)
	}
	sets, err := loadTranslationSets(ctx, r.db, domain.EntityCategory, idStrs)
	if err != nil {
		return err
	}

	byID := make(map[int64]*domain.Category, len(categories))
	for _, c := range categories {
		c.Translations = translationsFor(sets, strconv.FormatInt(c.ID, 10))
		byID[c.ID] = c
	}
	for _, p := range places {
		p.Category = byID[p.CategoryID]
	}

	return nil
}

func (r *placeRepository) attachOpeningHours(ctx context.Context, ids []int64, byID map[int64]*domain.Place) error {
	var hours []domain.OpeningHour
	err := r.db.SelectContext(ctx, &hours, `
		SELECT place_id, day_of_week,
		       to_char(open_time, 'HH24:MI') AS open_time,
		       to_char(close_time, 'HH24:MI') AS close_time
		FROM opening_hours
		WHERE place_id = ANY($1)
		ORDER BY day_of_week, open_time
	`, pq.Array(ids))
	if err != nil {
		return err
	}

	for _, h := range hours {
		if p, ok := byID[h.PlaceID]; ok {
			p.OpenTimes = append(p.OpenTimes, h)
		}
	}
	return nil
}

func (r *placeRepository) attachImages(ctx context.Context, ids []int64, byID map[int64]*domain.Place) error {
	var images []domain.PlaceImage
	err := r.db.SelectContext(ctx, &images, `
		SELECT place_id, image_url, display_order
		FROM place_images
		WHERE place_id = ANY($1)
		ORDER BY display_order, image_url
	`, pq.Array(ids))
	if err != nil {
		return err
	}

	for _, img := range images {
		if p, ok := byID[img.PlaceID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return nil
}
