package topic

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"sentiment-analysis/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS topics (
	topic_id   TEXT PRIMARY KEY,
	topic_name TEXT NOT NULL DEFAULT '',
	keywords   TEXT NOT NULL DEFAULT '[]'
);
`

// sqliteRepository persists topics in a local SQLite file. Keywords are
// stored as a JSON array in a single column.
type sqliteRepository struct {
	l  log.Logger
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the topic database at path.
func NewSQLite(l log.Logger, path string) (Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open topic db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init topic schema: %w", err)
	}
	return &sqliteRepository{l: l, db: db}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, id string) (*Topic, error) {
	var (
		t   Topic
		raw string
	)
	row := r.db.QueryRowContext(ctx, `SELECT topic_id, topic_name, keywords FROM topics WHERE topic_id = ?`, id)
	if err := row.Scan(&t.ID, &t.Name, &raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query topic %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(raw), &t.Keywords); err != nil {
		// A corrupt keywords column should not hide the topic row.
		r.l.Warnf(ctx, "topic.sqlite.Get: corrupt keywords for %q: %v", id, err)
		t.Keywords = nil
	}
	return &t, nil
}

func (r *sqliteRepository) Upsert(ctx context.Context, t Topic) error {
	raw, err := json.Marshal(t.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO topics (topic_id, topic_name, keywords) VALUES (?, ?, ?)
		ON CONFLICT(topic_id) DO UPDATE SET topic_name = excluded.topic_name, keywords = excluded.keywords`,
		t.ID, t.Name, string(raw))
	if err != nil {
		return fmt.Errorf("upsert topic %q: %w", t.ID, err)
	}
	return nil
}
