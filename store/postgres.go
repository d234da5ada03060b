package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Postgres sinks hierarchy leaves and embedding vectors into two tables
// ("hierarchy_leaves", "vectors") it creates on first use. Each run is
// tagged with a caller-supplied run ID so multiple runs can share the
// database.
type Postgres struct {
	db    *sql.DB
	runID string
}

// OpenPostgres connects to connStr and ensures the sink's tables exist.
func OpenPostgres(ctx context.Context, connStr, runID string) (*Postgres, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("store: opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("store: connecting to postgres: %w", err)
	}

	p := &Postgres{db: db, runID: runID}
	if err := p.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hierarchy_leaves (
			run_id TEXT NOT NULL,
			depth INTEGER NOT NULL,
			original_id BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS vectors (
			run_id TEXT NOT NULL,
			original_id BIGINT NOT NULL,
			dim INTEGER NOT NULL,
			components DOUBLE PRECISION[] NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migrating: %w", err)
		}
	}
	return nil
}

// PutLeaf records one leaf record's original IDs at depth.
func (p *Postgres) PutLeaf(ctx context.Context, depth int, originalIDs []int) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: beginning tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO hierarchy_leaves (run_id, depth, original_id) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("store: preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range originalIDs {
		if _, err := stmt.ExecContext(ctx, p.runID, depth, id); err != nil {
			return fmt.Errorf("store: inserting leaf row: %w", err)
		}
	}
	return tx.Commit()
}

// PutVector records one node's embedding vector.
func (p *Postgres) PutVector(ctx context.Context, originalID int, vec []float64) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO vectors (run_id, original_id, dim, components) VALUES ($1, $2, $3, $4)`,
		p.runID, originalID, len(vec), floatSliceToArray(vec))
	if err != nil {
		return fmt.Errorf("store: inserting vector row: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

func floatSliceToArray(vec []float64) string {
	s := "{"
	for i, v := range vec {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%g", v)
	}
	return s + "}"
}
