package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coworkers/internal/dateutil"
	"coworkers/internal/task"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date    string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of your task list",
		Long: `List the tasks of the configured task list for one day.

Results are served from the local cache when fresh; --refresh forces a
round trip to the backend.`,
		Example: `  coworkers list
  coworkers list --date=2025-03-01
  coworkers list --refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.requireBackend(); err != nil {
				return err
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			tasks, fromCache, err := a.loadTasks(context.Background(), day, refresh)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}

			printTasks(day, tasks, fromCache)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to list (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Skip the cache and fetch from the backend")

	return cmd
}

// loadTasks serves a day's tasks cache-first, falling back to the backend
// and refilling the cache on a miss.
func (a *App) loadTasks(ctx context.Context, day time.Time, refresh bool) ([]*task.Task, bool, error) {
	cache, err := a.openCache()
	if err != nil {
		return nil, false, err
	}

	groupID := a.config.Group.GroupID
	taskListID := a.config.Group.TaskListID

	if !refresh {
		cached, ok, err := cache.GetTasks(ctx, groupID, taskListID, day)
		if err == nil && ok {
			return cached, true, nil
		}
	}

	tasks, err := a.client().ListTasks(ctx, groupID, taskListID, day)
	if err != nil {
		return nil, false, err
	}

	if err := cache.PutTasks(ctx, groupID, taskListID, day, tasks); err != nil {
		// A cache write failure must not hide a successful fetch.
		fmt.Println(colorMuted.Sprintf("warning: caching tasks failed: %v", err))
	}

	return tasks, false, nil
}

func printTasks(day time.Time, tasks []*task.Task, fromCache bool) {
	header := fmt.Sprintf("=== %s ===", day.Format("2006-01-02"))
	if fromCache {
		header += colorMuted.Sprint(" (cached)")
	}
	fmt.Println(colorHeader.Sprint(header))

	if len(tasks) == 0 {
		fmt.Println("이 날짜에 할 일이 없습니다.")
		return
	}

	maxName := termWidth() / 2
	for _, t := range tasks {
		mark := "☐"
		style := colorOpen
		if t.Done {
			mark = "☑"
			style = colorDone
		}

		name := t.Name
		if len([]rune(name)) > maxName {
			name = string([]rune(name)[:maxName-1]) + "…"
		}

		line := fmt.Sprintf("  %s #%d %s", mark, t.ID, style.Sprint(name))
		if rec := t.Recurring; rec != nil && rec.FrequencyType != "" {
			line += " " + colorRecurring.Sprintf("[%s]", rec.FrequencyType.Label())
		}
		fmt.Println(line)
	}
}
