// Package db provides the SQLite read-cache for fetched task lists.
// The cache lets `coworkers list` render without a round trip and is
// invalidated whenever a mutation goes through.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

// cacheTTL is how long a fetched task list stays fresh.
const cacheTTL = 5 * time.Minute

// Cache is a SQLite-backed read cache of task lists.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (or creates) the cache database and runs migrations.
func New(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	c := &Cache{db: db, now: time.Now}
	if err := c.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// PutTasks replaces the cached task list for one (group, list, date) key.
func (c *Cache) PutTasks(ctx context.Context, groupID, taskListID int64, date time.Time, tasks []*task.Task) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	day := date.Format("2006-01-02")
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM task_cache WHERE group_id = ? AND task_list_id = ? AND date = ?`,
		groupID, taskListID, day,
	); err != nil {
		return fmt.Errorf("clearing stale rows: %w", err)
	}

	query := `
		INSERT INTO task_cache (
			id, group_id, task_list_id, date, name, description, done,
			recurring_id, frequency_type, start_date, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	fetchedAt := c.now().Format(time.RFC3339)
	for _, t := range tasks {
		var (
			recurringID   sql.NullInt64
			frequencyType sql.NullString
			startDate     sql.NullString
		)
		if rec := t.Recurring; rec != nil {
			recurringID = sql.NullInt64{Int64: rec.ID, Valid: true}
			frequencyType = sql.NullString{String: string(rec.FrequencyType), Valid: true}
			startDate = sql.NullString{String: rec.StartDate.Format(time.RFC3339), Valid: true}
		}

		if _, err := tx.ExecContext(ctx, query,
			t.ID, groupID, taskListID, day, t.Name, t.Description, t.Done,
			recurringID, frequencyType, startDate, fetchedAt,
		); err != nil {
			return fmt.Errorf("inserting task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetTasks returns the cached task list for one (group, list, date) key.
// The second return value is false when nothing fresh is cached.
func (c *Cache) GetTasks(ctx context.Context, groupID, taskListID int64, date time.Time) ([]*task.Task, bool, error) {
	query := `
		SELECT id, name, description, done, recurring_id, frequency_type, start_date, fetched_at
		FROM task_cache
		WHERE group_id = ? AND task_list_id = ? AND date = ?
		ORDER BY id
	`

	rows, err := c.db.QueryContext(ctx, query, groupID, taskListID, date.Format("2006-01-02"))
	if err != nil {
		return nil, false, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		var (
			t             task.Task
			recurringID   sql.NullInt64
			frequencyType sql.NullString
			startDate     sql.NullString
			fetchedAtRaw  string
		)
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Done,
			&recurringID, &frequencyType, &startDate, &fetchedAtRaw,
		); err != nil {
			return nil, false, fmt.Errorf("scanning cached task: %w", err)
		}

		fetchedAt, err := time.Parse(time.RFC3339, fetchedAtRaw)
		if err != nil {
			return nil, false, fmt.Errorf("parsing fetched at: %w", err)
		}
		if c.now().Sub(fetchedAt) > cacheTTL {
			return nil, false, nil
		}

		if recurringID.Valid {
			rec := &task.Recurring{
				ID:            recurringID.Int64,
				FrequencyType: schedule.Frequency(frequencyType.String),
			}
			if startDate.Valid {
				rec.StartDate, err = time.Parse(time.RFC3339, startDate.String)
				if err != nil {
					return nil, false, fmt.Errorf("parsing start date: %w", err)
				}
			}
			t.Recurring = rec
		}

		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("reading cache rows: %w", err)
	}

	if tasks == nil {
		return nil, false, nil
	}
	return tasks, true, nil
}

// InvalidateAll drops every cached task list. Called after any successful
// mutation so the next list renders fresh server state.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM task_cache`); err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
