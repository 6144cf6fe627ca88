package likes

import (
	"context"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

// Repository stores likes. A user can like a post once; a second Create
// returns common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, like *models.Like) (*models.Like, error)
	Count(ctx context.Context) (int64, error)
}
