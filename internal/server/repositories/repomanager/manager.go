package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/comments"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/follows"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/likes"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/posts"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so the same code runs inside and outside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Follows(db dbx.DBTX) follows.Repository
	Likes(db dbx.DBTX) likes.Repository
	Comments(db dbx.DBTX) comments.Repository
}
