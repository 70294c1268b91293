package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coworkers/internal/dateutil"
	"coworkers/internal/draft"
	"coworkers/internal/schedule"
)

// frequencyFlagLabels maps CLI flag values to picker labels.
var frequencyFlagLabels = map[string]string{
	"once":    schedule.LabelOnce,
	"daily":   schedule.LabelDaily,
	"weekly":  schedule.LabelWeekly,
	"monthly": schedule.LabelMonthly,
}

func (a *App) addCmd() *cobra.Command {
	var (
		description string
		date        string
		timeOfDay   string
		frequency   string
		weekDays    string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new task",
		Long: `Add a new task to the configured task list.

The time is snapped to the nearest half-hour slot, the same way the
editor's time picker works.`,
		Example: `  coworkers add "청소" --desc="주말 청소" --date=2025-03-01 --time=09:00
  coworkers add "회의 준비" --desc="안건 정리" --date=tomorrow --time=14:00 --freq=weekly --days=1,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.requireBackend(); err != nil {
				return err
			}

			store, err := buildDraft(args[0], description, date, timeOfDay, frequency, weekDays)
			if err != nil {
				return err
			}

			cache, err := a.openCache()
			if err != nil {
				return err
			}

			target := draft.Target{
				GroupID:    a.config.Group.GroupID,
				TaskListID: a.config.Group.TaskListID,
			}
			ctl := draft.NewController(store, target, a.client(), termNotifier{}, noopOverlay{}, a.revalidator(cache))

			switch outcome := ctl.Submit(context.Background()); outcome {
			case draft.OutcomeCreated:
				d := store.Draft()
				fmt.Printf("할 일 추가됨: %s (%s, %s)\n",
					d.Name, store.DateLabel(), store.TimeLabel())
				return nil
			case draft.OutcomeBlocked:
				return validationError(store.Validate())
			default:
				return fmt.Errorf("creating task failed")
			}
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Task description (required)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, 'tomorrow', weekday name; default: today)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time of day (HH:MM, default: now)")
	cmd.Flags().StringVar(&frequency, "freq", "once", "Repeat: once, daily, weekly or monthly")
	cmd.Flags().StringVar(&weekDays, "days", "", "Weekdays for weekly repeat, 0=Sun..6=Sat (e.g. 1,3)")

	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

// buildDraft runs the CLI flags through the same draft store the editor uses.
func buildDraft(name, description, date, timeOfDay, frequency, weekDays string) (*draft.Store, error) {
	label, ok := frequencyFlagLabels[strings.ToLower(frequency)]
	if !ok {
		return nil, fmt.Errorf("unknown frequency %q (once, daily, weekly, monthly)", frequency)
	}

	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return nil, err
	}

	instant := time.Now()
	if timeOfDay != "" {
		h, m, err := parseClock(timeOfDay)
		if err != nil {
			return nil, err
		}
		instant = time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
	}

	store := draft.NewStore(instant)
	store.SetName(name)
	store.SetDescription(description)
	store.SetDate(day)
	store.StageFrequency(label)

	if weekDays != "" {
		if label != schedule.LabelWeekly {
			return nil, errors.New("--days only applies to --freq=weekly")
		}
		for _, part := range strings.Split(weekDays, ",") {
			idx, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || idx < 0 || idx > 6 {
				return nil, fmt.Errorf("invalid weekday %q (0=Sun..6=Sat)", part)
			}
			if !schedule.ContainsDay(store.Draft().WeekDays, idx) {
				store.ToggleWeekDay(idx)
			}
		}
	}

	return store, nil
}

// parseClock parses "HH:MM" into hour and minute.
func parseClock(s string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("time must be in HH:MM format, got %q", s)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// validationError turns derived field validity into a CLI error.
func validationError(v draft.Validation) error {
	switch {
	case v.NameMissing && v.DescriptionMissing:
		return errors.New("name and description cannot be empty")
	case v.NameMissing:
		return errors.New("name cannot be empty")
	default:
		return errors.New("description cannot be empty")
	}
}
