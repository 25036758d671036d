package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/accountd/apiserver/types"
	"github.com/lib/pq"
)

// Postgres class 23505: unique_violation.
const pqUniqueViolation = "23505"

// UserRepository handles persistence for users. Every operation is a
// single parameterized statement; the *sql.DB pool bounds concurrent
// access to the store.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureSchema idempotently creates the user table. It is safe to call
// on every process start.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS "user" (
			id         SERIAL PRIMARY KEY,
			name       VARCHAR(100) UNIQUE NOT NULL,
			password   VARCHAR(255) NOT NULL,
			email      VARCHAR(100) NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// FindCredentialsByName returns the id and password hash for a name.
func (r *UserRepository) FindCredentialsByName(ctx context.Context, name string) (int, string, error) {
	const query = `SELECT id, password FROM "user" WHERE name = $1`
	var (
		id   int
		hash string
	)
	err := r.db.QueryRowContext(ctx, query, name).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrNotFound
		}
		return 0, "", err
	}
	return id, hash, nil
}

// FindIDByName returns the id for a name. It is the best-effort
// duplicate pre-check before insert; the unique constraint is what
// actually guarantees uniqueness under races.
func (r *UserRepository) FindIDByName(ctx context.Context, name string) (int, error) {
	const query = `SELECT id FROM "user" WHERE name = $1`
	var id int
	err := r.db.QueryRowContext(ctx, query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// Insert creates a user and returns the generated id. A unique-constraint
// violation on name is mapped to ErrDuplicateName.
func (r *UserRepository) Insert(ctx context.Context, name, passwordHash string, email *string) (int, error) {
	const query = `
		INSERT INTO "user" (name, password, email)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int
	if err := r.db.QueryRowContext(ctx, query, name, passwordHash, email).Scan(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return 0, ErrDuplicateName
		}
		return 0, err
	}
	return id, nil
}

// List returns all users ordered by id. Password hashes are not selected.
func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM "user"
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []types.User{}
	for rows.Next() {
		var user types.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByID removes a user. Deletion is permanent.
func (r *UserRepository) DeleteByID(ctx context.Context, id int) error {
	const query = `DELETE FROM "user" WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEmailByID sets the email for a user. Email is the only mutable
// field.
func (r *UserRepository) UpdateEmailByID(ctx context.Context, id int, email string) error {
	const query = `UPDATE "user" SET email = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, email, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
