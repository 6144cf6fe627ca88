package comments

import (
	"context"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	Count(ctx context.Context) (int64, error)
}
