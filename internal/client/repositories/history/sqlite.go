package history

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jokecli/internal/client/models"
	"github.com/dmitrijs2005/jokecli/internal/dbx"
)

// SQLiteRepository implements Repository on the jokes_seen table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, rec *models.HistoryRecord) error {
	query := `INSERT INTO jokes_seen (id, api_id, category, kind, text, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.APIID, rec.Category, string(rec.Kind), rec.Text, rec.FetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Seen(ctx context.Context, apiID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM jokes_seen WHERE api_id = ?)`
	var seen bool
	if err := r.db.QueryRowContext(ctx, query, apiID).Scan(&seen); err != nil {
		return false, fmt.Errorf("query row scan failed: %w", err)
	}
	return seen, nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	query := `SELECT id, api_id, category, kind, text, fetched_at
			FROM jokes_seen ORDER BY fetched_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select history: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryRecord
	for rows.Next() {
		var (
			item models.HistoryRecord
			kind string
		)
		if err := rows.Scan(&item.ID, &item.APIID, &item.Category, &kind, &item.Text, &item.FetchedAt); err != nil {
			return nil, err
		}
		item.Kind = models.JokeKind(kind)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
