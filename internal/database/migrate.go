package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"dsa-catalog/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const upSuffix = ".up.sql"

// Migrations returns the migration files shipped with the binary, or the
// files in dir when it is set.
func Migrations(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embeddedMigrations, "migrations")
}

// Migration is one *.up.sql file split into executable statements.
type Migration struct {
	Version    string
	Statements []string
}

// LoadMigrations reads every *.up.sql file in fsys in lexical order.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), upSuffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version:    strings.TrimSuffix(name, upSuffix),
			Statements: SplitStatements(string(content)),
		})
	}
	return migrations, nil
}

// SplitStatements splits a script on semicolons that end a line. go-ora
// executes one statement per call and rejects a trailing semicolon.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			if stmt != "" {
				stmts = append(stmts, stmt)
			}
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}

const (
	createMigrationsTable = `CREATE TABLE schema_migrations (
    version     VARCHAR2(255) PRIMARY KEY,
    applied_at  TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL
)`
	migrationsTableExists = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	migrationApplied      = `SELECT COUNT(*) FROM schema_migrations WHERE version = :1`
	recordMigration       = `INSERT INTO schema_migrations (version) VALUES (:1)`
)

// RunMigrations applies every migration not yet recorded in schema_migrations
// and returns the versions it applied. Oracle DDL auto-commits, so a failing
// migration is not rolled back; the version is only recorded on success.
func RunMigrations(ctx context.Context, db *sqlx.DB, migrations []Migration) ([]string, error) {
	log := logger.Get()

	var exists int
	if err := db.GetContext(ctx, &exists, migrationsTableExists); err != nil {
		return nil, fmt.Errorf("could not check schema_migrations table: %w", err)
	}
	if exists == 0 {
		if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
			return nil, fmt.Errorf("could not create schema_migrations table: %w", err)
		}
		log.Info("Created schema_migrations table")
	}

	var applied []string
	for _, m := range migrations {
		var count int
		if err := db.GetContext(ctx, &count, migrationApplied, m.Version); err != nil {
			return applied, fmt.Errorf("could not check migration %s: %w", m.Version, err)
		}
		if count > 0 {
			log.Debug("Skipping applied migration", zap.String("version", m.Version))
			continue
		}

		for i, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("could not execute statement %d of migration %s: %w", i+1, m.Version, err)
			}
		}
		if _, err := db.ExecContext(ctx, recordMigration, m.Version); err != nil {
			return applied, fmt.Errorf("could not record migration %s: %w", m.Version, err)
		}

		log.Info("Executed migration", zap.String("version", m.Version), zap.Int("statements", len(m.Statements)))
		applied = append(applied, m.Version)
	}

	log.Info("Migrations completed successfully", zap.Int("applied", len(applied)))
	return applied, nil
}
