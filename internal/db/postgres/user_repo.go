package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Inkwell/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) error {
	query := `
		INSERT INTO users (
			id, username, email, password_hash,
			name, bio, avatar, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.Name, user.Bio, user.Avatar, user.CreatedAt, user.UpdatedAt,
	)

	if err != nil {
		// The unique indexes on username and email are the authority on
		// duplicates; a concurrent registration loses here, not at a
		// pre-check.
		if strings.Contains(err.Error(), "duplicate key") {
			return users.ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *postgresUserRepo) getBy(ctx context.Context, column, value string) (*users.User, error) {
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash,
		       name, bio, avatar, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var user users.User

	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Name, &user.Bio, &user.Avatar, &user.CreatedAt, &user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return &user, nil
}

func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) error {
	query := `
		UPDATE users
		SET name = $2, bio = $3, avatar = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Bio, user.Avatar, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}
