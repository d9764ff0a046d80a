// Package sqlite writes catalog snapshots to SQLite database files and reads
// them back.
package sqlite

// Schema DDL for snapshot databases.
const (
	createSnapshots = `CREATE TABLE snapshots (
    snapshot_id TEXT PRIMARY KEY,
    version TEXT NOT NULL,
    generated_at TEXT NOT NULL
);`

	createCategories = `CREATE TABLE categories (
    category_id TEXT PRIMARY KEY,
    snapshot_id TEXT NOT NULL,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    kind TEXT NOT NULL,
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id)
);`

	createUnits = `CREATE TABLE units (
    unit_id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL,
    name TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    factor REAL,
    scale REAL,
    offset_value REAL,
    FOREIGN KEY (category_id) REFERENCES categories(category_id)
);`
)

// Index DDL for lookups by name.
const (
	idxCategoriesName = `CREATE UNIQUE INDEX idx_categories_name ON categories(snapshot_id, name);`
	idxUnitsName      = `CREATE UNIQUE INDEX idx_units_name ON units(category_id, name);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSnapshots,
	createCategories,
	createUnits,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCategoriesName,
	idxUnitsName,
}
