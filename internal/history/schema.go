package history

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at INTEGER NOT NULL,
			command TEXT NOT NULL,
			method TEXT NOT NULL,
			carrier_path TEXT NOT NULL,
			secret_path TEXT,
			output_path TEXT NOT NULL,
			carrier_width INTEGER NOT NULL,
			carrier_height INTEGER NOT NULL,
			payload_slots INTEGER NOT NULL DEFAULT 0,
			resized INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
