package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/vitalog/internal/db"
	"github.com/alexanderramin/vitalog/internal/domain"
)

// SQLiteAdviceCache implements AdviceCache using a SQLite database.
type SQLiteAdviceCache struct {
	db db.DBTX
}

// NewSQLiteAdviceCache creates a new SQLiteAdviceCache.
func NewSQLiteAdviceCache(dbtx db.DBTX) *SQLiteAdviceCache {
	return &SQLiteAdviceCache{db: dbtx}
}

func (c *SQLiteAdviceCache) Get(ctx context.Context, d domain.Domain, recordID string) (*domain.Advice, error) {
	query := `SELECT domain, record_id, source, narrative, actions, urgent, created_at
		FROM advice_cache WHERE domain = ? AND record_id = ?`
	row := c.db.QueryRowContext(ctx, query, string(d), recordID)

	var a domain.Advice
	var domainStr, sourceStr, actionsStr, urgentStr, createdAtStr string
	err := row.Scan(&domainStr, &a.RecordID, &sourceStr, &a.Narrative, &actionsStr, &urgentStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cached advice: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning cached advice: %w", err)
	}

	a.Domain = domain.Domain(domainStr)
	a.Source = domain.AdviceSource(sourceStr)
	if err := json.Unmarshal([]byte(actionsStr), &a.Actions); err != nil {
		return nil, fmt.Errorf("parsing cached actions: %w", err)
	}
	if err := json.Unmarshal([]byte(urgentStr), &a.Urgent); err != nil {
		return nil, fmt.Errorf("parsing cached warnings: %w", err)
	}
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &a, nil
}

func (c *SQLiteAdviceCache) Put(ctx context.Context, a *domain.Advice) error {
	actions, err := json.Marshal(a.Actions)
	if err != nil {
		return fmt.Errorf("encoding actions: %w", err)
	}
	urgent, err := json.Marshal(a.Urgent)
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	query := `INSERT INTO advice_cache (domain, record_id, source, narrative, actions, urgent, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(domain, record_id) DO UPDATE SET
			source = excluded.source,
			narrative = excluded.narrative,
			actions = excluded.actions,
			urgent = excluded.urgent,
			created_at = excluded.created_at`
	_, err = c.db.ExecContext(ctx, query,
		string(a.Domain),
		a.RecordID,
		string(a.Source),
		a.Narrative,
		string(actions),
		string(urgent),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("caching advice: %w", err)
	}
	return nil
}
