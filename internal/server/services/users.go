// Package services contains server-side business logic. This file implements
// UserService: paging, validation and partial updates of user profiles.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/snsplatform/internal/common"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	msgRequiredFields     = "Required fields missing: email, username, displayName"
	msgUserIDRequired     = "ID is required"
	msgDisplayNameCleared = "displayName cannot be empty"
)

// UserService implements the user resource on top of the repositories.
// Errors are common.ErrorNotFound, common.ErrorAlreadyExists, a
// *common.ValidationError, or an opaque internal error.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// List returns one page of users, newest first. The page and the total
// count are fetched concurrently; if either fails nothing is returned.
func (s *UserService) List(ctx context.Context, page, limit int) (*models.UserPage, error) {
	page, limit = normalizePage(page, limit)
	repo := s.repomanager.Users(s.db)

	var (
		users []*models.PublicUserWithCount
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	if offset, ok := pageOffset(page, limit); ok {
		g.Go(func() error {
			var err error
			users, err = repo.List(gctx, offset, limit)
			return err
		})
	}
	g.Go(func() error {
		var err error
		total, err = repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	if users == nil {
		users = []*models.PublicUserWithCount{}
	}

	return &models.UserPage{
		Data:       users,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.UserWithCount, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Create validates and stores a new user. Blank bio and profile image URL
// are stored as NULL.
func (s *UserService) Create(ctx context.Context, in *models.NewUser) (*models.User, error) {
	user := &models.NewUser{
		Email:           strings.TrimSpace(in.Email),
		Username:        strings.TrimSpace(in.Username),
		DisplayName:     strings.TrimSpace(in.DisplayName),
		Bio:             blankToNil(in.Bio),
		ProfileImageURL: blankToNil(in.ProfileImageURL),
	}
	if user.Email == "" || user.Username == "" || user.DisplayName == "" {
		return nil, common.NewValidationError(msgRequiredFields)
	}

	return s.repomanager.Users(s.db).Create(ctx, user)
}

// Update applies patch to the user. Absent fields are left alone; bio and
// profileImageUrl are cleared by null or "". displayName cannot be cleared.
// An empty patch returns the stored user untouched.
func (s *UserService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}

	if patch.DisplayName.Set {
		if patch.DisplayName.Value == nil {
			return nil, common.NewValidationError(msgDisplayNameCleared)
		}
		name := strings.TrimSpace(*patch.DisplayName.Value)
		if name == "" {
			return nil, common.NewValidationError(msgDisplayNameCleared)
		}
		patch.DisplayName = models.Some(name)
	}
	patch.Bio = blankToNull(patch.Bio)
	patch.ProfileImageURL = blankToNull(patch.ProfileImageURL)

	repo := s.repomanager.Users(s.db)
	if patch.IsEmpty() {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &current.User, nil
	}

	return repo.Update(ctx, id, patch)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	id, err := checkID(id)
	if err != nil {
		return err
	}
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

// checkID rejects a blank id and reports a malformed one as not found,
// since no stored user can have it.
func checkID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", common.NewValidationError(msgUserIDRequired)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", common.ErrorNotFound
	}
	return parsed.String(), nil
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func blankToNull(o models.Optional[string]) models.Optional[string] {
	if o.Set && o.Value != nil && *o.Value == "" {
		return models.Null[string]()
	}
	return o
}
