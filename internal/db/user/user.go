package user

import (
	"context"
	"database/sql"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"errors"

	"github.com/jackc/pgx/v4"
)

const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, name, country, created_at, updated_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+userColumns,
		string(input.Email),
		input.Name,
		input.Country,
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsUniqueViolation(err, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	return r.decodeOne(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	return r.decodeOne(row)
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			name = COALESCE($2, name),
			country = COALESCE($3, country),
			updated_at = $4
		WHERE id = $1
		RETURNING `+userColumns,
		int64(input.ID),
		encodeOptionalString(input.Name),
		encodeOptionalString(input.Country),
		input.UpdatedAt,
	)
	return r.decodeOne(row)
}

func (r *PgxUserRepository) decodeOne(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var email string
	err = row.Scan(&u.ID, &email, &u.Name, &u.Country, &u.CreatedAt, &u.UpdatedAt)
	u.Email = c.Email(email)
	return u, err
}

func encodeOptionalString(value c.Optional[string]) sql.NullString {
	return sql.NullString{String: value.Value, Valid: value.IsPresent}
}

func encodeOptionalID(id c.Optional[user.ID]) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id.Value), Valid: id.IsPresent}
}
