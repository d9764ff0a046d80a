package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/unitconv/pkg/types"
)

// WriteSnapshot writes snap to a new SQLite database at path. The database
// is built in a temp file beside path and renamed over it, so an existing
// file survives a failed write. All rows are inserted in one transaction.
func WriteSnapshot(ctx context.Context, path string, snap types.Snapshot) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*.db.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := writeDatabase(ctx, tmpName, snap); err != nil {
		removeDatabase(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		removeDatabase(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// removeDatabase deletes a database file and any journal SQLite left beside it.
func removeDatabase(path string) {
	for _, suffix := range []string{"", "-journal", "-wal", "-shm"} {
		os.Remove(path + suffix)
	}
}

func writeDatabase(ctx context.Context, path string, snap types.Snapshot) error {
	db, err := open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	snapID := snap.ID
	if snapID == "" {
		snapID = generateUUID()
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (snapshot_id, version, generated_at) VALUES (?, ?, ?)",
		snapID, snap.Version, snap.GeneratedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	for _, cat := range snap.Categories {
		catID := generateUUID()
		_, err := tx.ExecContext(ctx,
			"INSERT INTO categories (category_id, snapshot_id, name, ordinal, kind) VALUES (?, ?, ?, ?, ?)",
			catID, snapID, cat.Name, cat.Ordinal, cat.Kind,
		)
		if err != nil {
			return fmt.Errorf("inserting category %s: %w", cat.Name, err)
		}

		for _, u := range cat.Units {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO units (unit_id, category_id, name, ordinal, factor, scale, offset_value) VALUES (?, ?, ?, ?, ?, ?, ?)",
				generateUUID(), catID, u.Name, u.Ordinal, nullFloat(u.Factor), nullFloat(u.Scale), nullFloat(u.Offset),
			)
			if err != nil {
				return fmt.Errorf("inserting unit %s for %s: %w", u.Name, cat.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot transaction: %w", err)
	}
	return nil
}

// ReadSnapshot loads the snapshot stored at path by WriteSnapshot.
func ReadSnapshot(ctx context.Context, path string) (types.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return types.Snapshot{}, fmt.Errorf("stat database: %w", err)
	}

	db, err := open(ctx, path)
	if err != nil {
		return types.Snapshot{}, err
	}
	defer db.Close()

	var snap types.Snapshot
	var generatedAt string
	err = db.QueryRowContext(ctx,
		"SELECT snapshot_id, version, generated_at FROM snapshots LIMIT 1",
	).Scan(&snap.ID, &snap.Version, &generatedAt)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	snap.GeneratedAt, err = time.Parse(time.RFC3339Nano, generatedAt)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("parsing generated_at: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		"SELECT category_id, name, ordinal, kind FROM categories WHERE snapshot_id = ? ORDER BY ordinal",
		snap.ID,
	)
	if err != nil {
		return types.Snapshot{}, fmt.Errorf("querying categories: %w", err)
	}
	var catIDs []string
	for rows.Next() {
		var id string
		var rec types.CategoryRecord
		if err := rows.Scan(&id, &rec.Name, &rec.Ordinal, &rec.Kind); err != nil {
			rows.Close()
			return types.Snapshot{}, fmt.Errorf("scanning category: %w", err)
		}
		catIDs = append(catIDs, id)
		snap.Categories = append(snap.Categories, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return types.Snapshot{}, fmt.Errorf("iterating categories: %w", err)
	}
	rows.Close()

	for i, id := range catIDs {
		units, err := readUnits(ctx, db, id)
		if err != nil {
			return types.Snapshot{}, fmt.Errorf("reading units of %s: %w", snap.Categories[i].Name, err)
		}
		snap.Categories[i].Units = units
	}
	return snap, nil
}

func readUnits(ctx context.Context, db *sql.DB, categoryID string) ([]types.UnitRecord, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name, ordinal, factor, scale, offset_value FROM units WHERE category_id = ? ORDER BY ordinal",
		categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []types.UnitRecord
	for rows.Next() {
		var u types.UnitRecord
		var factor, scale, offset sql.NullFloat64
		if err := rows.Scan(&u.Name, &u.Ordinal, &factor, &scale, &offset); err != nil {
			return nil, err
		}
		u.Factor = floatPtr(factor)
		u.Scale = floatPtr(scale)
		u.Offset = floatPtr(offset)
		units = append(units, u)
	}
	return units, rows.Err()
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
