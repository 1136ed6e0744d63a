// Package sqlite caches inventory runs in a local SQLite database so
// generation can reuse the latest audit listing without another drive walk.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/oakfield-labs/sitemapper-cli/internal/core/domain"
	"github.com/oakfield-labs/sitemapper-cli/internal/core/ports/driven"
)

const dbFileName = "inventory.db"

const bootstrapDDL = `
CREATE TABLE IF NOT EXISTS inventory_runs (
	id           TEXT PRIMARY KEY,
	generated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_files (
	run_id       TEXT NOT NULL REFERENCES inventory_runs(id) ON DELETE CASCADE,
	file_id      TEXT NOT NULL,
	current_name TEXT NOT NULL,
	new_name     TEXT NOT NULL,
	size_mb      REAL NOT NULL,
	location     TEXT NOT NULL,
	modified     TEXT NOT NULL,
	mime_type    TEXT NOT NULL,
	md5          TEXT NOT NULL,
	PRIMARY KEY (run_id, file_id)
);

CREATE INDEX IF NOT EXISTS idx_inventory_files_run ON inventory_files(run_id);
`

type Store struct {
	db *sql.DB
}

var _ driven.InventoryStore = (*Store)(nil)

// NewStore opens (creating if needed) the inventory cache under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", filepath.Join(dataDir, dbFileName))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open inventory cache: %w", err)
	}

	if _, err := db.Exec(bootstrapDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap inventory cache: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) SaveRun(doc domain.InventoryDocument) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO inventory_runs (id, generated_at) VALUES (?, ?)`,
		doc.RunID, doc.GeneratedAt,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO inventory_files
			(run_id, file_id, current_name, new_name, size_mb, location, modified, mime_type, md5)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range doc.Files {
		if _, err := stmt.Exec(
			doc.RunID, entry.ID, entry.CurrentName, entry.NewName,
			entry.SizeMB, entry.Location, entry.Modified, entry.MIMEType, entry.MD5,
		); err != nil {
			return fmt.Errorf("insert file %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *Store) LatestRun() (*domain.InventoryDocument, error) {
	var runID, generatedAt string
	err := s.db.QueryRow(
		`SELECT id, generated_at FROM inventory_runs ORDER BY generated_at DESC, id DESC LIMIT 1`,
	).Scan(&runID, &generatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoInventory
	}
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT file_id, current_name, new_name, size_mb, location, modified, mime_type, md5
		FROM inventory_files
		WHERE run_id = ?
		ORDER BY location, current_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	doc := &domain.InventoryDocument{
		Description:  domain.InventoryDescription,
		Instructions: domain.InventoryInstructions,
		RunID:        runID,
		GeneratedAt:  generatedAt,
	}
	for rows.Next() {
		var entry domain.InventoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.CurrentName, &entry.NewName, &entry.SizeMB,
			&entry.Location, &entry.Modified, &entry.MIMEType, &entry.MD5,
		); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		doc.Files = append(doc.Files, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file rows: %w", err)
	}

	return doc, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
