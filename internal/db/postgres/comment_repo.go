package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/users"
)

const commentColumns = `
	c.id, c.content, c.post_id, c.author_id, c.parent_id,
	c.likes_count, c.created_at, c.updated_at,
	u.id, u.username, u.name, u.avatar
`

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts the comment and increments the owning post's comment
// counter in the same transaction, so the counter moves exactly once per
// durable comment.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO comments (
			id, content, post_id, author_id, parent_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		comment.ID, comment.Content, comment.PostID, comment.AuthorID,
		comment.ParentID, comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1
	`, comment.PostID)
	if err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, commentColumns)

	comment, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepo) ListTopLevel(ctx context.Context, postID string, limit, offset int) ([]*comments.Comment, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM comments WHERE post_id = $1 AND parent_id IS NULL
	`, postID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1 AND c.parent_id IS NULL
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, commentColumns)

	items, err := r.queryComments(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *postgresCommentRepo) ListReplies(ctx context.Context, parentIDs []string) ([]*comments.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.parent_id = ANY($1)
		ORDER BY c.created_at DESC
	`, commentColumns)

	return r.queryComments(ctx, query, pq.Array(parentIDs))
}

func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID string) ([]*comments.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
	`, commentColumns)

	return r.queryComments(ctx, query, postID)
}

func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1
	`, comment.ID, comment.Content, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// Delete removes the comment together with its replies and decrements the
// post's comment counter by the number of rows removed, all in one
// transaction.
func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var postID string
	err = tx.QueryRowContext(ctx, `SELECT post_id FROM comments WHERE id = $1`, id).Scan(&postID)
	if err == sql.ErrNoRows {
		return comments.ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to resolve comment's post: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM comments WHERE id = $1 OR parent_id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE posts SET comments_count = comments_count - $2 WHERE id = $1
	`, postID, removed)
	if err != nil {
		return fmt.Errorf("failed to decrement comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment delete: %w", err)
	}

	return nil
}

func (r *postgresCommentRepo) AddLike(ctx context.Context, commentID, userID string) (int, bool, error) {
	return r.changeLike(ctx, commentID, userID, true)
}

func (r *postgresCommentRepo) RemoveLike(ctx context.Context, commentID, userID string) (int, bool, error) {
	return r.changeLike(ctx, commentID, userID, false)
}

func (r *postgresCommentRepo) changeLike(ctx context.Context, commentID, userID string, add bool) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result sql.Result
	if add {
		result, err = tx.ExecContext(ctx, `
			INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, commentID, userID)
	} else {
		result, err = tx.ExecContext(ctx, `
			DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2
		`, commentID, userID)
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
		err = tx.QueryRowContext(ctx, `SELECT likes_count FROM comments WHERE id = $1`, commentID).Scan(&count)
	} else {
		delta := 1
		if !add {
			delta = -1
		}
		err = tx.QueryRowContext(ctx, `
			UPDATE comments SET likes_count = likes_count + $2
			WHERE id = $1
			RETURNING likes_count
		`, commentID, delta).Scan(&count)
	}
	if err == sql.ErrNoRows {
		return 0, false, comments.ErrCommentNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to update likes count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit like: %w", err)
	}

	return count, rowsAffected > 0, nil
}

func (r *postgresCommentRepo) queryComments(ctx context.Context, query string, args ...interface{}) ([]*comments.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var result []*comments.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return result, nil
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	var comment comments.Comment
	var author users.Profile

	err := row.Scan(
		&comment.ID, &comment.Content, &comment.PostID, &comment.AuthorID,
		&comment.ParentID, &comment.LikesCount,
		&comment.CreatedAt, &comment.UpdatedAt,
		&author.ID, &author.Username, &author.Name, &author.Avatar,
	)
	if err != nil {
		return nil, err
	}

	comment.Author = &author

	return &comment, nil
}
