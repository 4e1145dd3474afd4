package restaurant

import (
	"context"
	"database/sql"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/restaurant"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"errors"
	"math/big"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const (
	SLUG_CONSTRAINT_NAME          = "restaurant_slug_idx"
	CATEGORY_SLUG_CONSTRAINT_NAME = "category_restaurant_slug_idx"
)

const (
	restaurantColumns = `id, owner_id, name, location, slug, public_id::text, created_at, updated_at`
	categoryColumns   = `id, restaurant_id, name, slug, parent_id, display_order, created_at, updated_at`
	dishColumns       = `d.id, d.restaurant_id, d.name, d.description, d.price, d.image_url, d.spice_level,
		d.is_available, d.sort_order, d.created_at, d.updated_at`
)

type PgxRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxRepository{db: dbtx}
}

func (r *PgxRepository) Create(ctx context.Context, input restaurant.CreateInput) (restaurant.Restaurant, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO restaurant (owner_id, name, location, slug, public_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::uuid, $6, $6)
		RETURNING `+restaurantColumns,
		int64(input.OwnerID),
		input.Name,
		input.Location,
		input.Slug,
		string(input.PublicID),
		input.CreatedAt,
	)
	created, err := scanRestaurant(row)
	if db.IsUniqueViolation(err, SLUG_CONSTRAINT_NAME) {
		return created, restaurant.ErrSlugAlreadyExists
	}
	return created, err
}

func (r *PgxRepository) SlugExists(ctx context.Context, slug string) (exists bool, err error) {
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM restaurant WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *PgxRepository) ListAll(ctx context.Context) ([]restaurant.Restaurant, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+restaurantColumns+` FROM restaurant ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PgxRepository) ListByOwner(ctx context.Context, ownerID user.ID) ([]restaurant.Restaurant, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+restaurantColumns+` FROM restaurant WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`,
		int64(ownerID),
	)
	if err != nil {
		return nil, err
	}
	return collectRestaurants(rows)
}

func (r *PgxRepository) GetBySlug(ctx context.Context, slug string) (restaurant.Restaurant, error) {
	row := r.db.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurant WHERE slug = $1`, slug)
	return decodeOneRestaurant(row)
}

func (r *PgxRepository) GetByPublicID(ctx context.Context, publicID restaurant.PublicID) (restaurant.Restaurant, error) {
	parsed, err := uuid.Parse(string(publicID))
	if err != nil {
		return restaurant.Restaurant{}, restaurant.ErrRestaurantDoesNotExist
	}
	row := r.db.QueryRow(
		ctx,
		`SELECT `+restaurantColumns+` FROM restaurant WHERE public_id = $1::uuid`,
		parsed.String(),
	)
	return decodeOneRestaurant(row)
}

func (r *PgxRepository) CreateCategory(
	ctx context.Context,
	input restaurant.CreateCategoryInput,
) (restaurant.Category, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO category (restaurant_id, name, slug, parent_id, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+categoryColumns,
		int64(input.RestaurantID),
		input.Name,
		input.Slug,
		sql.NullInt64{Int64: int64(input.ParentID.Value), Valid: input.ParentID.IsPresent},
		input.DisplayOrder,
		input.CreatedAt,
	)
	category, err := scanCategory(row)
	if db.IsUniqueViolation(err, CATEGORY_SLUG_CONSTRAINT_NAME) {
		return category, restaurant.ErrSlugAlreadyExists
	}
	return category, err
}

func (r *PgxRepository) CategorySlugExists(
	ctx context.Context,
	restaurantID restaurant.ID,
	slug string,
) (exists bool, err error) {
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM category WHERE restaurant_id = $1 AND slug = $2)`,
		int64(restaurantID),
		slug,
	).Scan(&exists)
	return exists, err
}

func (r *PgxRepository) ListCategories(ctx context.Context, restaurantID restaurant.ID) ([]restaurant.Category, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+categoryColumns+` FROM category WHERE restaurant_id = $1 ORDER BY display_order, id`,
		int64(restaurantID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []restaurant.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PgxRepository) CreateDish(ctx context.Context, input restaurant.CreateDishInput) (restaurant.Dish, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO dish AS d (
			restaurant_id, name, description, price, image_url, spice_level,
			is_available, sort_order, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING `+dishColumns,
		int64(input.RestaurantID),
		input.Name,
		encodeOptionalString(input.Description),
		encodePrice(input.Price),
		encodeOptionalString(input.ImageURL),
		encodeOptionalString(input.SpiceLevel),
		input.IsAvailable,
		input.SortOrder,
		input.CreatedAt,
	)
	dish, err := scanDish(row)
	if err != nil {
		return dish, err
	}

	for ix, categoryID := range input.CategoryIDs {
		_, err = r.db.Exec(
			ctx,
			`INSERT INTO dish_category (dish_id, category_id, order_index) VALUES ($1, $2, $3)`,
			int64(dish.ID),
			int64(categoryID),
			int32(ix),
		)
		if err != nil {
			return dish, err
		}
	}
	return dish, nil
}

func (r *PgxRepository) ListAvailableDishLinks(
	ctx context.Context,
	restaurantID restaurant.ID,
) ([]restaurant.DishLink, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT dc.category_id, dc.order_index, `+dishColumns+`
		FROM dish_category dc
		JOIN dish d ON d.id = dc.dish_id
		WHERE d.restaurant_id = $1 AND d.is_available
		ORDER BY dc.category_id, dc.order_index, d.id`,
		int64(restaurantID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []restaurant.DishLink{}
	for rows.Next() {
		var (
			link  restaurant.DishLink
			dest  dishDest
			catID int64
		)
		err := rows.Scan(append([]interface{}{&catID, &link.OrderIndex}, dest.targets()...)...)
		if err != nil {
			return nil, err
		}
		link.CategoryID = restaurant.CategoryID(catID)
		link.Dish = dest.decode()
		links = append(links, link)
	}
	return links, rows.Err()
}

func decodeOneRestaurant(row pgx.Row) (restaurant.Restaurant, error) {
	found, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return found, restaurant.ErrRestaurantDoesNotExist
	}
	return found, err
}

func collectRestaurants(rows pgx.Rows) ([]restaurant.Restaurant, error) {
	defer rows.Close()

	restaurants := []restaurant.Restaurant{}
	for rows.Next() {
		found, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, found)
	}
	return restaurants, rows.Err()
}

func scanRestaurant(row pgx.Row) (found restaurant.Restaurant, err error) {
	var (
		id       int64
		ownerID  int64
		publicID string
	)
	err = row.Scan(
		&id,
		&ownerID,
		&found.Name,
		&found.Location,
		&found.Slug,
		&publicID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	found.ID = restaurant.ID(id)
	found.OwnerID = user.ID(ownerID)
	found.PublicID = restaurant.PublicID(publicID)
	return found, err
}

func scanCategory(row pgx.Row) (category restaurant.Category, err error) {
	var (
		id           int64
		restaurantID int64
		parentID     sql.NullInt64
	)
	err = row.Scan(
		&id,
		&restaurantID,
		&category.Name,
		&category.Slug,
		&parentID,
		&category.DisplayOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	category.ID = restaurant.CategoryID(id)
	category.RestaurantID = restaurant.ID(restaurantID)
	category.ParentID = c.NewOptional(restaurant.CategoryID(parentID.Int64), parentID.Valid)
	return category, err
}

type dishDest struct {
	id           int64
	restaurantID int64
	name         string
	description  sql.NullString
	price        pgtype.Numeric
	imageURL     sql.NullString
	spiceLevel   sql.NullString
	isAvailable  bool
	sortOrder    int32
	createdAt    pgtype.Timestamptz
	updatedAt    pgtype.Timestamptz
}

func (d *dishDest) targets() []interface{} {
	return []interface{}{
		&d.id,
		&d.restaurantID,
		&d.name,
		&d.description,
		&d.price,
		&d.imageURL,
		&d.spiceLevel,
		&d.isAvailable,
		&d.sortOrder,
		&d.createdAt,
		&d.updatedAt,
	}
}

func (d *dishDest) decode() restaurant.Dish {
	return restaurant.Dish{
		ID:           restaurant.DishID(d.id),
		RestaurantID: restaurant.ID(d.restaurantID),
		Name:         d.name,
		Description:  c.NewOptional(d.description.String, d.description.Valid),
		Price:        decodePrice(d.price),
		ImageURL:     c.NewOptional(d.imageURL.String, d.imageURL.Valid),
		SpiceLevel:   c.NewOptional(d.spiceLevel.String, d.spiceLevel.Valid),
		IsAvailable:  d.isAvailable,
		SortOrder:    d.sortOrder,
		CreatedAt:    d.createdAt.Time,
		UpdatedAt:    d.updatedAt.Time,
	}
}

func scanDish(row pgx.Row) (restaurant.Dish, error) {
	var dest dishDest
	if err := row.Scan(dest.targets()...); err != nil {
		return restaurant.Dish{}, err
	}
	return dest.decode(), nil
}

func encodeOptionalString(value c.Optional[string]) sql.NullString {
	return sql.NullString{String: value.Value, Valid: value.IsPresent}
}

func encodePrice(price c.Optional[restaurant.Price]) pgtype.Numeric {
	if !price.IsPresent {
		return pgtype.Numeric{Status: pgtype.Null}
	}
	return pgtype.Numeric{Int: big.NewInt(int64(price.Value)), Exp: -2, Status: pgtype.Present}
}

func decodePrice(n pgtype.Numeric) c.Optional[restaurant.Price] {
	if n.Status != pgtype.Present || n.NaN || n.Int == nil {
		return c.Optional[restaurant.Price]{}
	}
	cents := new(big.Int).Set(n.Int)
	exp := int64(n.Exp) + 2
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(absInt64(exp)), nil)
	if exp > 0 {
		cents.Mul(cents, scale)
	} else if exp < 0 {
		cents.Quo(cents, scale)
	}
	return c.NewOptional(restaurant.Price(cents.Int64()), true)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
