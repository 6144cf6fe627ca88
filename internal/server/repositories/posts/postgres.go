// Package posts provides the PostgreSQL-backed post repository.
package posts

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

// Create inserts post under a fresh id and fills in the stored timestamps.
func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	created := *post
	created.ID = newID()

	err := r.db.QueryRowContext(ctx, query, created.ID, created.UserID, created.Content).
		Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
