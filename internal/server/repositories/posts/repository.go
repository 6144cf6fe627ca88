package posts

import (
	"context"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	Count(ctx context.Context) (int64, error)
}
