package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/comments"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/follows"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/likes"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/posts"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	mu sync.Mutex

	listOut  []*models.PublicUserWithCount
	listErr  error
	countN   int64
	countErr error

	getOut *models.UserWithCount
	getErr error

	createOut *models.User
	createErr error

	updateOut *models.User
	updateErr error

	deleteErr error

	// recorded inputs
	listOffset, listLimit int
	listCalls             int
	gotID                 string
	gotNew                *models.NewUser
	gotPatch              *models.UserPatch
	updateCalls           int
}

func (f *fakeUsersRepo) List(ctx context.Context, offset, limit int) ([]*models.PublicUserWithCount, error) {
	f.mu.Lock()
	f.listOffset, f.listLimit = offset, limit
	f.listCalls++
	f.mu.Unlock()
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) Count(ctx context.Context) (int64, error) {
	return f.countN, f.countErr
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.UserWithCount, error) {
	f.gotID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.NewUser) (*models.User, error) {
	f.gotNew = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	f.gotID = id
	f.gotPatch = &patch
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Posts(db dbx.DBTX) posts.Repository           { return nil }
func (m *fakeRepoManager) Follows(db dbx.DBTX) follows.Repository       { return nil }
func (m *fakeRepoManager) Likes(db dbx.DBTX) likes.Repository           { return nil }
func (m *fakeRepoManager) Comments(db dbx.DBTX) comments.Repository     { return nil }

const validID = "6f1c1f4e-8d9a-4f55-9a51-0b3c2a7d9e10"

func strPtr(s string) *string { return &s }
