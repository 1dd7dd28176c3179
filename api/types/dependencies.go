package types

import (
	"github.com/geekflex/geekflex-api/internal/database"
	"github.com/geekflex/geekflex-api/internal/services/contents"
	"github.com/geekflex/geekflex-api/internal/services/reconcile"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	ContentService   contents.ContentService
	SearchClient     SearchClient
	ReconcileService reconcile.ReconcileService
}
