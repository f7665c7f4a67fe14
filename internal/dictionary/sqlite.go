// internal/dictionary/sqlite.go
//
// SQLite-backed dictionary.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded sql/*.sql migrations (idempotent, recorded in _migrations).
//   - Bulk importing word lists and answering spelling lookups.

package dictionary

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

const memoryDSN = ":memory:"

// SQLiteOracle looks words up in the words(language, word) table.
type SQLiteOracle struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the dictionary database at dsn
// and applies pending migrations. Use ":memory:" for a throwaway database.
func OpenSQLite(dsn string) (*SQLiteOracle, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteOracle{db: db}, nil
}

// Close releases the database handle.
func (o *SQLiteOracle) Close() error { return o.db.Close() }

func openDB(dsn string) (*sql.DB, error) {
	if dsn == memoryDSN {
		db, err := sql.Open("sqlite3", memoryDSN)
		if err != nil {
			return nil, err
		}
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
		return db, nil
	}

	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded sql/*.sql files in lexical order, skipping any
// already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import inserts words for lang, ignoring duplicates. It returns the number
// of new rows.
func (o *SQLiteOracle) Import(ctx context.Context, lang string, words []string) (int, error) {
	lang = NormalizeLanguage(lang)
	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(language, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	n := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, lang, w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if k, _ := res.RowsAffected(); k > 0 {
			n++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}

// Count returns the number of words stored for lang.
func (o *SQLiteOracle) Count(ctx context.Context, lang string) (int, error) {
	var n int
	err := o.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE language=?`, NormalizeLanguage(lang),
	).Scan(&n)
	return n, err
}

// HasLanguage reports whether any word is stored for lang.
func (o *SQLiteOracle) HasLanguage(ctx context.Context, lang string) (bool, error) {
	var ok bool
	err := o.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM words WHERE language=? LIMIT 1)`, NormalizeLanguage(lang),
	).Scan(&ok)
	return ok, err
}

func (o *SQLiteOracle) CheckSpelling(ctx context.Context, text, lang string) (*Range, error) {
	lang = NormalizeLanguage(lang)
	ok, err := o.HasLanguage(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("check language: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return firstUnknown(text, func(w string) (bool, error) {
		var one int
		err := o.db.QueryRowContext(ctx,
			`SELECT 1 FROM words WHERE language=? AND word=?`, lang, w,
		).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("lookup %q: %w", w, err)
		}
		return true, nil
	})
}
