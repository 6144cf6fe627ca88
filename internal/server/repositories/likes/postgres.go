// Package likes provides the PostgreSQL-backed like repository.
package likes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsplatform/internal/common"
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

func (r *PostgresRepository) Create(ctx context.Context, like *models.Like) (*models.Like, error) {
	query := `
		INSERT INTO likes (id, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	created := *like
	created.ID = newID()

	err := r.db.QueryRowContext(ctx, query, created.ID, created.UserID, created.PostID).Scan(&created.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, dbx.ConstraintName(err))
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
