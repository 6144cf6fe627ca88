package follows

import (
	"context"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

// Repository stores follow edges. Create returns common.ErrorAlreadyExists
// when the pair is already present.
type Repository interface {
	Create(ctx context.Context, follow *models.Follow) (*models.Follow, error)
	Count(ctx context.Context) (int64, error)
}
