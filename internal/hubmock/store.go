// Package hubmock is a compact in-process HubSpot API fake backed by SQLite.
// It implements enough of the CRM v3 surface for integration tests: object
// CRUD and listing, a search subset, batch endpoints, associations,
// pipelines, and owners, all speaking HubSpot's wire and error formats.
package hubmock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store holds the fake portal's state.
type Store struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE objects (
		id TEXT PRIMARY KEY,
		object_type TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		archived INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE properties (
		object_id TEXT NOT NULL,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		PRIMARY KEY (object_id, name)
	)`,
	`CREATE TABLE associations (
		from_type TEXT NOT NULL,
		from_id TEXT NOT NULL,
		to_type TEXT NOT NULL,
		to_id TEXT NOT NULL,
		type_id INTEGER NOT NULL,
		PRIMARY KEY (from_type, from_id, to_type, to_id, type_id)
	)`,
	`CREATE TABLE pipelines (
		id TEXT PRIMARY KEY,
		object_type TEXT NOT NULL,
		label TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE stages (
		id TEXT PRIMARY KEY,
		pipeline_id TEXT NOT NULL,
		label TEXT NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		metadata_probability TEXT NOT NULL DEFAULT '',
		metadata_is_closed TEXT NOT NULL DEFAULT '',
		metadata_is_won TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE owners (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL
	)`,
}

// NewStore opens an in-memory SQLite database and creates the schema.
func NewStore() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Single connection: a private in-memory database lives and dies with
	// its connection, so the pool must never open a second one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	s := &Store{db: db}
	if err := s.seed(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// seed gives every fake portal one owner and a default deal pipeline, which
// is the minimum the connection test and pipeline listing need.
func (s *Store) seed() error {
	if _, err := s.db.Exec(
		`INSERT INTO owners (id, email, first_name, last_name) VALUES (?, ?, ?, ?)`,
		"1", "owner@example.com", "Default", "Owner",
	); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO pipelines (id, object_type, label, display_order) VALUES (?, ?, ?, 0)`,
		"default", "deals", "Sales Pipeline",
	); err != nil {
		return fmt.Errorf("seed pipeline: %w", err)
	}
	stages := []struct {
		id, label   string
		order       int
		prob        string
		closed, won string
	}{
		{"appointmentscheduled", "Appointment Scheduled", 0, "0.2", "false", "false"},
		{"closedwon", "Closed Won", 1, "1.0", "true", "true"},
		{"closedlost", "Closed Lost", 2, "0.0", "true", "false"},
	}
	for _, st := range stages {
		if _, err := s.db.Exec(
			`INSERT INTO stages (id, pipeline_id, label, display_order, metadata_probability, metadata_is_closed, metadata_is_won)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			st.id, "default", st.label, st.order, st.prob, st.closed, st.won,
		); err != nil {
			return fmt.Errorf("seed stage %s: %w", st.id, err)
		}
	}
	return nil
}

// object is a stored CRM object with its full property map.
type object struct {
	ID         string
	Properties map[string]string
	CreatedAt  string
	UpdatedAt  string
	Archived   bool
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// CreateObject inserts an object with a fresh UUID and returns it.
func (s *Store) CreateObject(ctx context.Context, objectType string, props map[string]string) (*object, error) {
	id := uuid.NewString()
	ts := now()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO objects (id, object_type, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, objectType, ts, ts,
	); err != nil {
		return nil, fmt.Errorf("insert object: %w", err)
	}
	if err := s.setProperties(ctx, id, props); err != nil {
		return nil, err
	}
	return s.GetObject(ctx, objectType, id)
}

func (s *Store) setProperties(ctx context.Context, id string, props map[string]string) error {
	for name, value := range props {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO properties (object_id, name, value) VALUES (?, ?, ?)
			 ON CONFLICT (object_id, name) DO UPDATE SET value = excluded.value`,
			id, name, value,
		); err != nil {
			return fmt.Errorf("set property %s: %w", name, err)
		}
	}
	return nil
}

// GetObject returns an unarchived object or nil when it does not exist.
func (s *Store) GetObject(ctx context.Context, objectType, id string) (*object, error) {
	var o object
	var archived int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, updated_at, archived FROM objects
		 WHERE id = ? AND object_type = ? AND archived = 0`,
		id, objectType,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt, &archived)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", id, err)
	}
	o.Archived = archived != 0
	o.Properties, err = s.getProperties(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) getProperties(ctx context.Context, id string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value FROM properties WHERE object_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get properties: %w", err)
	}
	defer rows.Close()

	props := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		props[name] = value
	}
	return props, rows.Err()
}

// ListObjects returns up to limit unarchived objects after the given cursor,
// ordered by creation time then ID. The second return value is the cursor for
// the next page, "" when this is the last one.
func (s *Store) ListObjects(ctx context.Context, objectType string, limit int, after string) ([]*object, string, error) {
	query := `SELECT id FROM objects WHERE object_type = ? AND archived = 0`
	args := []any{objectType}
	if after != "" {
		query += ` AND (created_at || id) > (SELECT created_at || id FROM objects WHERE id = ?)`
		args = append(args, after)
	}
	query += ` ORDER BY created_at, id LIMIT ?`
	args = append(args, limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list objects: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, "", fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	next := ""
	if len(ids) > limit {
		ids = ids[:limit]
		next = ids[len(ids)-1]
	}

	objs := make([]*object, 0, len(ids))
	for _, id := range ids {
		o, err := s.GetObject(ctx, objectType, id)
		if err != nil {
			return nil, "", err
		}
		objs = append(objs, o)
	}
	return objs, next, nil
}

// UpdateObject patches properties on an existing object. Returns nil when the
// object does not exist.
func (s *Store) UpdateObject(ctx context.Context, objectType, id string, props map[string]string) (*object, error) {
	existing, err := s.GetObject(ctx, objectType, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if err := s.setProperties(ctx, id, props); err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE objects SET updated_at = ? WHERE id = ?`, now(), id); err != nil {
		return nil, fmt.Errorf("touch object: %w", err)
	}
	return s.GetObject(ctx, objectType, id)
}

// ArchiveObject soft-deletes an object. Archiving an unknown or already
// archived object is a no-op, matching HubSpot's idempotent delete.
func (s *Store) ArchiveObject(ctx context.Context, objectType, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE objects SET archived = 1, updated_at = ? WHERE id = ? AND object_type = ?`,
		now(), id, objectType)
	if err != nil {
		return fmt.Errorf("archive object: %w", err)
	}
	return nil
}

// Associate records a link between two objects. Re-associating the same pair
// is a no-op.
func (s *Store) Associate(ctx context.Context, fromType, fromID, toType, toID string, typeID int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO associations (from_type, from_id, to_type, to_id, type_id)
		 VALUES (?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
		fromType, fromID, toType, toID, typeID)
	if err != nil {
		return fmt.Errorf("associate: %w", err)
	}
	return nil
}

// Disassociate removes a link. Unknown links are a no-op.
func (s *Store) Disassociate(ctx context.Context, fromType, fromID, toType, toID string, typeID int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM associations WHERE from_type = ? AND from_id = ? AND to_type = ? AND to_id = ? AND type_id = ?`,
		fromType, fromID, toType, toID, typeID)
	if err != nil {
		return fmt.Errorf("disassociate: %w", err)
	}
	return nil
}

// Associations lists the targets of a given type linked from an object.
func (s *Store) Associations(ctx context.Context, fromType, fromID, toType string) ([]struct{ ID, Label string }, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT to_id, type_id FROM associations
		 WHERE from_type = ? AND from_id = ? AND to_type = ? ORDER BY to_id`,
		fromType, fromID, toType)
	if err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}
	defer rows.Close()

	var out []struct{ ID, Label string }
	for rows.Next() {
		var toID string
		var typeID int
		if err := rows.Scan(&toID, &typeID); err != nil {
			return nil, fmt.Errorf("scan association: %w", err)
		}
		out = append(out, struct{ ID, Label string }{toID, fmt.Sprintf("HUBSPOT_DEFINED:%d", typeID)})
	}
	return out, rows.Err()
}
