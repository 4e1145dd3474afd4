package user

import (
	"context"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(dbtx db.DBTX) *PgxSessionRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: dbtx}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) (s user.Session, err error) {
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO session (token_hash, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, token_hash, user_id, created_at, expires_at`,
		string(input.TokenHash),
		int64(input.UserID),
		input.CreatedAt,
		input.ExpiresAt,
	).Scan(&s.ID, &s.TokenHash, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	return s, err
}

func (r *PgxSessionRepository) GetUserByToken(
	ctx context.Context,
	tokenHash user.SessionTokenHash,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT u.id, u.email, u.name, u.country, u.created_at, u.updated_at
		FROM session s
		JOIN "user" u ON u.id = s.user_id
		WHERE s.token_hash = $1 AND s.expires_at > $2`,
		string(tokenHash),
		now,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxSessionRepository) Delete(ctx context.Context, tokenHash user.SessionTokenHash) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session WHERE token_hash = $1`, string(tokenHash))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PgxSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM session WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
