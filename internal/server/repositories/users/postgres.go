// Package users provides the PostgreSQL-backed user repository.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/snsplatform/internal/common"
	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/google/uuid"
)

const userColumns = `id, email, username, display_name, bio, profile_image_url, created_at, updated_at`

// newID is a seam for tests.
var newID = uuid.NewString

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns at most limit users starting at offset, newest first, each
// with its post/follower/following counts. Email is never selected.
func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]*models.PublicUserWithCount, error) {
	query := `
		SELECT u.id, u.username, u.display_name, u.bio, u.profile_image_url, u.created_at, u.updated_at,
			(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id),
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = u.id),
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id)
		FROM users u
		ORDER BY u.created_at DESC, u.id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.PublicUserWithCount, 0, limit)
	for rows.Next() {
		u := &models.PublicUserWithCount{}
		if err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.Bio, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt,
			&u.Count.Posts, &u.Count.Followers, &u.Count.Following); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.UserWithCount, error) {
	query := `
		SELECT u.id, u.email, u.username, u.display_name, u.bio, u.profile_image_url, u.created_at, u.updated_at,
			(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id),
			(SELECT COUNT(*) FROM follows f WHERE f.following_id = u.id),
			(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id)
		FROM users u
		WHERE u.id = $1
	`
	u := &models.UserWithCount{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Username, &u.DisplayName, &u.Bio,
		&u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt, &u.Count.Posts, &u.Count.Followers, &u.Count.Following)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.NewUser) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, username, display_name, bio, profile_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	created := &models.User{
		ID:              newID(),
		Email:           user.Email,
		Username:        user.Username,
		DisplayName:     user.DisplayName,
		Bio:             user.Bio,
		ProfileImageURL: user.ProfileImageURL,
	}

	err := r.db.QueryRowContext(ctx, query, created.ID, created.Email, created.Username, created.DisplayName,
		created.Bio, created.ProfileImageURL).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, dbx.ConstraintName(err))
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return created, nil
}

// Update writes the fields set in patch and refreshes updated_at.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var sets []string
	var args []any
	set := func(column string, value *string) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.DisplayName.Set {
		set("display_name", patch.DisplayName.Value)
	}
	if patch.Bio.Set {
		set("bio", patch.Bio.Value)
	}
	if patch.ProfileImageURL.Set {
		set("profile_image_url", patch.ProfileImageURL.Value)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Email, &u.Username, &u.DisplayName,
		&u.Bio, &u.ProfileImageURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
