package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Inkwell/internal/core/posts"
	"Inkwell/internal/core/users"
)

const postColumns = `
	p.id, p.title, p.content, p.tags, p.cover_image, p.author_id,
	p.likes_count, p.comments_count, p.created_at, p.updated_at,
	u.id, u.username, u.name, u.avatar
`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (
			id, title, content, tags, cover_image, author_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		post.ID, post.Title, post.Content, pq.Array(post.Tags),
		post.CoverImage, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, postColumns)

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepo) List(ctx context.Context, tag, authorID string, limit, offset int) ([]*posts.Post, int, error) {
	where := "TRUE"
	args := []interface{}{}

	if tag != "" {
		args = append(args, tag)
		where = fmt.Sprintf("$%d = ANY(p.tags)", len(args))
	}
	if authorID != "" {
		args = append(args, authorID)
		where += fmt.Sprintf(" AND p.author_id = $%d", len(args))
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts p WHERE %s`, where)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var result []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, total, nil
}

func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, tags = $4, cover_image = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, pq.Array(post.Tags),
		post.CoverImage, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	// Comments and likes are removed by ON DELETE CASCADE
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// AddLike inserts the (post, user) membership and bumps the counter only
// when the insert actually added a row, in one transaction. The unique
// constraint, not an application-level check, is what makes a double like
// impossible under concurrency.
func (r *postgresPostRepo) AddLike(ctx context.Context, postID, userID string) (int, bool, error) {
	return r.changeLike(ctx, postID, userID, true)
}

// RemoveLike deletes the membership and drops the counter only when a row
// was actually removed, symmetric to AddLike.
func (r *postgresPostRepo) RemoveLike(ctx context.Context, postID, userID string) (int, bool, error) {
	return r.changeLike(ctx, postID, userID, false)
}

func (r *postgresPostRepo) changeLike(ctx context.Context, postID, userID string, add bool) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result sql.Result
	if add {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, userID)
	} else {
		result, err = tx.ExecContext(ctx, `
			DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2
		`, postID, userID)
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to change like membership: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("failed to check like result: %w", err)
	}

	var count int
	if rowsAffected == 0 {
		// Membership did not change: leave the counter untouched
		err = tx.QueryRowContext(ctx, `SELECT likes_count FROM posts WHERE id = $1`, postID).Scan(&count)
	} else {
		delta := 1
		if !add {
			delta = -1
		}
		err = tx.QueryRowContext(ctx, `
			UPDATE posts SET likes_count = likes_count + $2
			WHERE id = $1
			RETURNING likes_count
		`, postID, delta).Scan(&count)
	}
	if err == sql.ErrNoRows {
		return 0, false, posts.ErrPostNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to update likes count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit like: %w", err)
	}

	return count, rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var author users.Profile
	var tags pq.StringArray

	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &tags, &post.CoverImage,
		&post.AuthorID, &post.LikesCount, &post.CommentsCount,
		&post.CreatedAt, &post.UpdatedAt,
		&author.ID, &author.Username, &author.Name, &author.Avatar,
	)
	if err != nil {
		return nil, err
	}

	post.Tags = []string(tags)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Author = &author

	return &post, nil
}
