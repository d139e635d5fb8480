// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists assignment drafts in a SQLite database. There is at
// most one draft per course and assignment; saving again replaces its content.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/assignment-engine/pkg/types"
)

const (
	dbFile            = "drafts.db"
	defaultMaxResults = 50

	// timeLayout has a fixed width so stored timestamps sort lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// ErrNotFound is returned when no draft matches a lookup.
var ErrNotFound = errors.New("draft not found")

// Store manages the drafts database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int

	// now is the clock used for timestamps.
	now func() time.Time
}

// ListOptions filters List and the exports. Zero values match everything.
type ListOptions struct {
	CourseID   int64
	Submitted  *bool
	MaxResults int
}

// New opens or creates the database at DataDir/drafts.db and creates the
// schema if it does not exist.
func New(cfg types.StoreConfig) (*Store, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dataDir:    cfg.DataDir,
		maxResults: maxResults,
		now:        func() time.Time { return time.Now().UTC() },
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS drafts (
			id TEXT PRIMARY KEY,
			course_id INTEGER NOT NULL,
			assignment_id INTEGER NOT NULL,
			assignment_type TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			submitted INTEGER NOT NULL DEFAULT 0,
			UNIQUE (course_id, assignment_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_course_id ON drafts(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save inserts a draft for the course and assignment, or replaces the
// content and type of the existing one. The ID, creation time, and
// submitted flag of an existing draft are preserved. It returns the stored
// record.
func (s *Store) Save(ctx context.Context, courseID, assignmentID int64, t types.AssignmentType, content string) (*types.StoredDraft, error) {
	ts := s.now().Format(timeLayout)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, course_id, assignment_id, assignment_type, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (course_id, assignment_id) DO UPDATE SET
			assignment_type = excluded.assignment_type,
			content = excluded.content,
			updated_at = excluded.updated_at`,
		uuid.NewString(), courseID, assignmentID, string(t), content, ts, ts)
	if err != nil {
		return nil, fmt.Errorf("saving draft for course %d assignment %d: %w", courseID, assignmentID, err)
	}
	return s.GetByAssignment(ctx, courseID, assignmentID)
}

const selectColumns = `SELECT id, course_id, assignment_id, assignment_type, content, created_at, updated_at, submitted FROM drafts`

// Get returns the draft with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*types.StoredDraft, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	d, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("getting draft %s: %w", id, err)
	}
	return d, nil
}

// GetByAssignment returns the draft for a course and assignment.
func (s *Store) GetByAssignment(ctx context.Context, courseID, assignmentID int64) (*types.StoredDraft, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE course_id = ? AND assignment_id = ?`, courseID, assignmentID)
	d, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("getting draft for course %d assignment %d: %w", courseID, assignmentID, err)
	}
	return d, nil
}

// List returns drafts matching opts, most recently updated first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.StoredDraft, error) {
	var (
		conditions []string
		args       []any
	)
	if opts.CourseID != 0 {
		conditions = append(conditions, "course_id = ?")
		args = append(args, opts.CourseID)
	}
	if opts.Submitted != nil {
		conditions = append(conditions, "submitted = ?")
		args = append(args, *opts.Submitted)
	}

	query := selectColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}
	query += " ORDER BY updated_at DESC, id LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	drafts := []types.StoredDraft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("listing drafts: %w", err)
		}
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

// MarkSubmitted flags the draft as handed in and returns it.
func (s *Store) MarkSubmitted(ctx context.Context, id string) (*types.StoredDraft, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE drafts SET submitted = 1, updated_at = ? WHERE id = ?`,
		s.now().Format(timeLayout), id)
	if err != nil {
		return nil, fmt.Errorf("submitting draft %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("submitting draft %s: %w", id, ErrNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes the draft with the given ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("deleting draft %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(sc scanner) (*types.StoredDraft, error) {
	var (
		d                    types.StoredDraft
		typ                  string
		createdAt, updatedAt string
	)
	err := sc.Scan(&d.ID, &d.CourseID, &d.AssignmentID, &typ, &d.Content, &createdAt, &updatedAt, &d.Submitted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.AssignmentType = types.AssignmentType(typ)
	if d.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
