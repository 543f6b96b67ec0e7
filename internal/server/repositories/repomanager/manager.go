// Package repomanager defines the factory that vends repository
// implementations bound to a shared database handle or transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/nsavelyev/viewtube/internal/dbx"
	"github.com/nsavelyev/viewtube/internal/server/repositories/likes"
	"github.com/nsavelyev/viewtube/internal/server/repositories/tweets"
	"github.com/nsavelyev/viewtube/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tweets(db dbx.DBTX) tweets.Repository
	Likes(db dbx.DBTX) likes.Repository
}
