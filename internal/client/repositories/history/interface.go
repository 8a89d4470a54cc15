package history

import (
	"context"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
)

// Repository records jokes that were shown to the user.
type Repository interface {
	// Add stores a record. Records with the same API id may repeat.
	Add(ctx context.Context, r *models.HistoryRecord) error

	// Seen reports whether a joke with this API id was recorded before.
	Seen(ctx context.Context, apiID int) (bool, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]models.HistoryRecord, error)
}
