// Package watchlater persists the user's watch-later list in a local SQLite
// database. Entries are keyed by (id, media_type) and toggled on and off;
// there is no server sync and no size bound.
package watchlater

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	defaultCacheSize  = -20000 // 20MB
	busyTimeout       = 5000   // milliseconds
	walAutoCheckpoint = 1000   // pages
	maxOpenConns      = 5
	maxIdleConns      = 2
)

// Item is one watch-later entry
type Item struct {
	ID        int       `json:"id"`
	MediaType string    `json:"type"`
	Title     string    `json:"title"`
	Poster    string    `json:"poster"`
	AddedAt   time.Time `json:"addedAt"`
}

// Store is the SQLite-backed watch-later list
type Store struct {
	db       *sql.DB
	upsertPS *sql.Stmt
	hasPS    *sql.Stmt
	allPS    *sql.Stmt
	deletePS *sql.Stmt
}

// Open opens (creating if needed) the watch-later database at dbPath
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	// SQLite needs forward slashes in URI paths on Windows
	path := dbPath
	if runtime.GOOS == "windows" {
		path = strings.ReplaceAll(path, "\\", "/")
	}
	dsn := fmt.Sprintf(
		"file:%s?_journal_mode=WAL&_synchronous=NORMAL&_wal_autocheckpoint=%d&"+
			"_busy_timeout=%d&_cache_size=%d&_mode=rwc",
		path, walAutoCheckpoint, busyTimeout, defaultCacheSize,
	)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open watch-later database")
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.prepare(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func initSchema(db *sql.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS watch_later (
		id         INTEGER NOT NULL,
		media_type TEXT    NOT NULL CHECK(media_type IN ('movie','tv')),
		title      TEXT    NOT NULL,
		poster     TEXT,
		added_at   INTEGER NOT NULL,
		PRIMARY KEY (id, media_type)
	);`
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "schema creation failed")
	}

	if _, err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_watch_later_added ON watch_later(added_at DESC)`,
	); err != nil {
		return errors.Wrap(err, "index creation failed")
	}
	return nil
}

func (s *Store) prepare() error {
	var err error

	s.upsertPS, err = s.db.Prepare(`INSERT INTO watch_later (
		id, media_type, title, poster, added_at
	) VALUES (?,?,?,?,?)
	ON CONFLICT(id, media_type) DO UPDATE SET
		title = excluded.title,
		poster = excluded.poster`)
	if err != nil {
		return errors.Wrap(err, "upsert preparation failed")
	}

	s.hasPS, err = s.db.Prepare(
		`SELECT 1 FROM watch_later WHERE id = ? AND media_type = ?`)
	if err != nil {
		return errors.Wrap(err, "has preparation failed")
	}

	s.allPS, err = s.db.Prepare(`SELECT id, media_type, title, poster, added_at
		FROM watch_later ORDER BY added_at DESC`)
	if err != nil {
		return errors.Wrap(err, "all preparation failed")
	}

	s.deletePS, err = s.db.Prepare(
		`DELETE FROM watch_later WHERE id = ? AND media_type = ?`)
	if err != nil {
		return errors.Wrap(err, "delete preparation failed")
	}

	return nil
}

// Add inserts or refreshes an entry. The original AddedAt is kept for an
// existing entry.
func (s *Store) Add(item Item) error {
	if item.ID <= 0 {
		return errors.New("invalid content id")
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	_, err := s.upsertPS.Exec(item.ID, item.MediaType, item.Title, item.Poster, item.AddedAt.Unix())
	return err
}

// Remove deletes an entry; removing a missing entry is not an error
func (s *Store) Remove(id int, mediaType string) error {
	_, err := s.deletePS.Exec(id, mediaType)
	return err
}

// Contains reports whether an entry exists
func (s *Store) Contains(id int, mediaType string) (bool, error) {
	var one int
	err := s.hasPS.QueryRow(id, mediaType).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query failed")
	}
	return true, nil
}

// Toggle adds the item when absent and removes it when present. Returns
// true when the item ended up added.
func (s *Store) Toggle(item Item) (bool, error) {
	present, err := s.Contains(item.ID, item.MediaType)
	if err != nil {
		return false, err
	}
	if present {
		return false, s.Remove(item.ID, item.MediaType)
	}
	return true, s.Add(item)
}

// All returns every entry, most recently added first
func (s *Store) All() ([]Item, error) {
	rows, err := s.allPS.Query()
	if err != nil {
		return nil, errors.Wrap(err, "query failed")
	}
	defer func() { _ = rows.Close() }()

	var items []Item
	for rows.Next() {
		var item Item
		var ts int64
		if err := rows.Scan(&item.ID, &item.MediaType, &item.Title, &item.Poster, &ts); err != nil {
			return nil, errors.Wrap(err, "row scan failed")
		}
		item.AddedAt = time.Unix(ts, 0)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows iteration failed")
	}
	return items, nil
}

// Clear removes every entry
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM watch_later`)
	return err
}

// Close releases the prepared statements and the database handle
func (s *Store) Close() error {
	var finalErr error
	for _, stmt := range []*sql.Stmt{s.upsertPS, s.hasPS, s.allPS, s.deletePS} {
		if stmt != nil {
			if err := stmt.Close(); err != nil {
				finalErr = err
			}
		}
	}
	if err := s.db.Close(); err != nil {
		finalErr = err
	}
	return finalErr
}
