package users

import (
	"context"

	"github.com/dmitrijs2005/snsplatform/internal/server/models"
)

// Repository is the persistence contract for users. Lookups and mutations
// of a missing id return common.ErrorNotFound; Create returns
// common.ErrorAlreadyExists when the email or username is taken.
type Repository interface {
	List(ctx context.Context, offset, limit int) ([]*models.PublicUserWithCount, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*models.UserWithCount, error)
	Create(ctx context.Context, user *models.NewUser) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
