package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/server/repositories/users"
	"github.com/dmitrijs2005/spende/internal/server/repositories/wallets"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Wallets(db dbx.DBTX) wallets.Repository
}
