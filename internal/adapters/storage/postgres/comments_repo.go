package postgres

import (
	"context"
	"database/sql"
	"strings"

	"faunagram/internal/domain/comments"
)

type CommentsRepo struct {
	db *sql.DB
}

func NewCommentsRepo(db *sql.DB) *CommentsRepo {
	return &CommentsRepo{db: db}
}

func (r *CommentsRepo) Create(ctx context.Context, c comments.Comment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (
			id, body, commentable_type, commentable_id, user_id, username, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Body,
		string(c.CommentableType),
		c.CommentableID,
		c.UserID,
		toNullString(c.Username),
		c.CreatedAt,
	)
	return err
}

func (r *CommentsRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return comments.Comment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, body, commentable_type, commentable_id, user_id, username, created_at
		FROM comments
		WHERE id = $1
	`, id)

	return scanComment(row)
}

// List arma el WHERE según el filtro: tipo y/o commentable puntual.
func (r *CommentsRepo) List(ctx context.Context, f comments.Filter) ([]comments.Comment, error) {
	query := `
		SELECT id, body, commentable_type, commentable_id, user_id, username, created_at
		FROM comments
		WHERE ($1 = '' OR commentable_type = $1)
		  AND ($2 = '' OR commentable_id = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, string(f.CommentableType), f.CommentableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]comments.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *CommentsRepo) CountByTarget(ctx context.Context, t comments.TargetType, targetID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM comments
		WHERE commentable_type = $1 AND commentable_id = $2
	`, string(t), targetID).Scan(&n)
	return n, err
}

// Update solo persiste el body; el resto del comment es inmutable.
func (r *CommentsRepo) Update(ctx context.Context, c comments.Comment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE comments
		SET body = $2
		WHERE id = $1
	`,
		c.ID,
		c.Body,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanComment(row rowScanner) (comments.Comment, error) {
	var c comments.Comment
	var ctype string
	var username sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.Body,
		&ctype,
		&c.CommentableID,
		&c.UserID,
		&username,
		&c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return comments.Comment{}, ErrNotFound
		}
		return comments.Comment{}, err
	}

	c.CommentableType = comments.TargetType(ctype)
	if username.Valid {
		c.Username = username.String
	}

	return c, nil
}
