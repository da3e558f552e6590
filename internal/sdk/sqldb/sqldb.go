// Package sqldb provides database operations for the account service.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mritunjay-thakur/clothify/internal/config"
	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
)

// Postgres error codes, per the errcodes appendix.
const (
	uniqueViolation = "23505"
)

var (
	ErrDBNotFound        = sql.ErrNoRows
	ErrDBDuplicatedEntry = errors.New("duplicated entry")
)

// Service is the credential store contract the handlers program against.
// All operations may fail with a transient I/O error, which callers surface
// as a generic server error.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	GetUserByID(ctx context.Context, userID string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type service struct {
	db *sql.DB
}

// New opens a connection pool to Postgres using the configured DSN.
func New(cfg config.DBConfig) (Service, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	return &service{db: db}, nil
}

// Health pings the database and reports connection pool statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	return stats
}

func (s *service) Close() error {
	log.Println("Disconnected from database")
	return s.db.Close()
}

// ---------------------------------------------
// SQL Commands
// ---------------------------------------------

const userColumns = `
		id,
		email,
		full_name,
		password,
		profile_pic,
		is_verified,
		created_at,
		updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Password,
		&user.ProfilePic,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// GetUserByID retrieves a user by their identifier.
func (s *service) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	const query = `
		SELECT` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrDBNotFound
		}
		return models.User{}, fmt.Errorf("selecting user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email. Stored emails are lower-cased,
// so the match is case-insensitive on the caller's input.
func (s *service) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT` + userColumns + `
		FROM users
		WHERE email = lower($1)
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrDBNotFound
		}
		return models.User{}, fmt.Errorf("selecting user by email: %w", err)
	}

	return user, nil
}

// CreateUser inserts a new user. The id and timestamps are assigned by the
// database and immutable afterwards.
func (s *service) CreateUser(ctx context.Context, nu models.NewUser) (models.User, error) {
	const query = `
		INSERT INTO users (email, full_name, password, profile_pic, is_verified)
		VALUES (lower($1), $2, $3, $4, $5)
		RETURNING` + userColumns + `
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query,
		nu.Email,
		nu.FullName,
		nu.Password,
		nu.ProfilePic,
		nu.IsVerified,
	))
	if err != nil {
		if isPgError(err, uniqueViolation) {
			return models.User{}, ErrDBDuplicatedEntry
		}
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial mutation and persists it. Concurrent updates
// to the same row are last-write-wins; no version check is performed.
func (s *service) UpdateUser(ctx context.Context, userID string, up models.UserUpdate) (models.User, error) {
	const query = `
		UPDATE users
		SET email       = COALESCE(lower($2), email),
		    full_name   = COALESCE($3, full_name),
		    password    = COALESCE($4, password),
		    profile_pic = COALESCE($5, profile_pic),
		    updated_at  = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING` + userColumns + `
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query,
		userID,
		up.Email,
		up.FullName,
		up.Password,
		up.ProfilePic,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrDBNotFound
		}
		if isPgError(err, uniqueViolation) {
			return models.User{}, ErrDBDuplicatedEntry
		}
		return models.User{}, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}

// DeleteUser removes a user row. The delete is destructive and irreversible;
// there is no soft-delete.
func (s *service) DeleteUser(ctx context.Context, userID string) error {
	const query = `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrDBNotFound
	}

	return nil
}

// ---------------------------------------------
// Helpers
// ---------------------------------------------

// isPgError checks if the error is a PostgreSQL error with the given code.
func isPgError(err error, code string) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == code
	}
	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDBNotFound)
}

// IsDuplicateEntry checks if the error is a duplicate entry error.
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDBDuplicatedEntry)
}
