// Package comments provides the PostgreSQL-backed comment repository.
// Comments form a tree through ParentCommentID.
package comments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/google/uuid"
)

var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (id, post_id, user_id, parent_comment_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	created := *comment
	created.ID = newID()

	err := r.db.QueryRowContext(ctx, query, created.ID, created.PostID, created.UserID,
		created.ParentCommentID, created.Content).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
