package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, email, password_hash, name, is_verified, verification_token, created_at, updated_at`

// GetByEmail returns the user with the given (lowercased) email, or nil when
// no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByVerificationToken returns the user holding an unspent verification
// token, or nil when the token matches nobody.
func (r *UserReadRepository) GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE verification_token = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, token)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. Email uniqueness is enforced by the database;
// a duplicate surfaces as a unique-violation error.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, email, password_hash, name, is_verified, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	args := []any{user.ID, user.Email, user.PasswordHash, user.Name, user.IsVerified, user.VerificationToken}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Email, user.Name},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkVerified flips the user to verified and clears the single-use token.
func (r *UserWriteRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE users
		SET is_verified = TRUE,
		    verification_token = NULL,
		    updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
