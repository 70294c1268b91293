package db

import "fmt"

// migrate runs database migrations.
func (c *Cache) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS task_cache (
			id             INTEGER NOT NULL,
			group_id       INTEGER NOT NULL,
			task_list_id   INTEGER NOT NULL,
			date           DATE NOT NULL,
			name           TEXT NOT NULL,
			description    TEXT NOT NULL,
			done           INTEGER NOT NULL DEFAULT 0,
			recurring_id   INTEGER,
			frequency_type TEXT CHECK(frequency_type IN ('ONCE', 'DAILY', 'WEEKLY', 'MONTHLY')),
			start_date     DATETIME,
			fetched_at     DATETIME NOT NULL,
			PRIMARY KEY (group_id, task_list_id, date, id)
		);

		CREATE INDEX IF NOT EXISTS idx_task_cache_key ON task_cache(group_id, task_list_id, date);
	`

	if _, err := c.db.Exec(query); err != nil {
		return fmt.Errorf("creating task_cache table: %w", err)
	}

	return nil
}
