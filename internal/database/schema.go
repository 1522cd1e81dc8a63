package database

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type columnPatch struct {
	table  string
	column string
	ddl    string
}

// Columns added after the first release. Each is applied only when missing.
var columnPatches = []columnPatch{
	{"games", "status", `ALTER TABLE games ADD COLUMN status TEXT NOT NULL DEFAULT 'Not Started'`},
	{"games", "rating", `ALTER TABLE games ADD COLUMN rating INTEGER`},
}

// EnsureSchema creates the games and platforms tables and applies missing
// column patches. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	pk := primaryKeyDDL(db.Dialector.Name())

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id ` + pk + `,
			name TEXT NOT NULL,
			year INTEGER NOT NULL,
			platform INTEGER NOT NULL,
			genre TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS platforms (
			id ` + pk + `,
			name TEXT NOT NULL,
			year INTEGER NOT NULL
		)`,
	}
	for i, stmt := range stmts {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("execute schema statement %d: %w", i+1, err)
		}
	}

	for _, p := range columnPatches {
		if tx.Migrator().HasColumn(p.table, p.column) {
			continue
		}
		if err := tx.Exec(p.ddl).Error; err != nil {
			return fmt.Errorf("add column %s.%s: %w", p.table, p.column, err)
		}
		log.Printf("schema patched: table=%s column=%s", p.table, p.column)
	}
	return nil
}

// Reset empties both tables and restarts their id sequences.
func Reset(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		return tx.Exec(`TRUNCATE TABLE games, platforms RESTART IDENTITY`).Error
	}
	for _, stmt := range []string{
		`DELETE FROM games`,
		`DELETE FROM platforms`,
		`DELETE FROM sqlite_sequence WHERE name IN ('games', 'platforms')`,
	} {
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func primaryKeyDDL(dialect string) string {
	if dialect == "postgres" {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}
