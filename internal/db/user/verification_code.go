package user

import (
	"context"
	"database/sql"
	c "digitalmenu/internal/core/domain/common"
	e "digitalmenu/internal/core/domain/errors"
	"digitalmenu/internal/core/domain/user"
	"digitalmenu/internal/db"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

const verificationCodeColumns = `id, email, code_hash, user_id, created_at, expires_at, consumed_at`

type PgxVerificationCodeRepository struct {
	db db.DBTX
}

func NewPgxVerificationCodeRepository(dbtx db.DBTX) *PgxVerificationCodeRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxVerificationCodeRepository{db: dbtx}
}

func (r *PgxVerificationCodeRepository) Create(
	ctx context.Context,
	input user.CreateVerificationCodeInput,
) (user.VerificationCode, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO verification_code (email, code_hash, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+verificationCodeColumns,
		string(input.Email),
		string(input.CodeHash),
		encodeOptionalID(input.UserID),
		input.CreatedAt,
		input.ExpiresAt,
	)
	return scanVerificationCode(row)
}

func (r *PgxVerificationCodeRepository) DeleteStale(ctx context.Context, email c.Email, now time.Time) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM verification_code
		WHERE email = $1 AND (expires_at <= $2 OR consumed_at IS NOT NULL)`,
		string(email),
		now,
	)
	return err
}

func (r *PgxVerificationCodeRepository) GetActive(
	ctx context.Context,
	email c.Email,
	codeHash user.LoginCodeHash,
	now time.Time,
) (user.VerificationCode, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+verificationCodeColumns+` FROM verification_code
		WHERE email = $1 AND code_hash = $2 AND consumed_at IS NULL AND expires_at > $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		string(email),
		string(codeHash),
		now,
	)
	code, err := scanVerificationCode(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return code, user.ErrLoginCodeInvalid
	}
	return code, err
}

func (r *PgxVerificationCodeRepository) Consume(ctx context.Context, id user.VerificationCodeID, at time.Time) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE verification_code SET consumed_at = $2 WHERE id = $1 AND consumed_at IS NULL`,
		int64(id),
		at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrVerificationCodeConsumed
	}
	return nil
}

func (r *PgxVerificationCodeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM verification_code WHERE expires_at <= $1 OR consumed_at IS NOT NULL`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanVerificationCode(row pgx.Row) (code user.VerificationCode, err error) {
	var (
		email      string
		userID     sql.NullInt64
		consumedAt sql.NullTime
	)
	err = row.Scan(
		&code.ID,
		&email,
		&code.CodeHash,
		&userID,
		&code.CreatedAt,
		&code.ExpiresAt,
		&consumedAt,
	)
	code.Email = c.Email(email)
	code.UserID = c.NewOptional(user.ID(userID.Int64), userID.Valid)
	code.ConsumedAt = c.NewOptional(consumedAt.Time, consumedAt.Valid)
	return code, err
}
