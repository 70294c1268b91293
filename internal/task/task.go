// Package task defines the core domain types for the coworkers client.
package task

import (
	"time"

	"coworkers/internal/schedule"
)

// Recurring is the repeating-schedule descriptor attached to a task.
type Recurring struct {
	ID            int64              `json:"id"`
	StartDate     time.Time          `json:"startDate"`
	FrequencyType schedule.Frequency `json:"frequencyType"`
	WeekDays      []int              `json:"weekDays,omitempty"`
	MonthDay      int                `json:"monthDay,omitempty"`
}

// Task represents one task as the backend returns it.
type Task struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Done        bool       `json:"done"`
	Date        time.Time  `json:"date"`
	Recurring   *Recurring `json:"recurring,omitempty"`
}

// IsRecurring returns true if the task carries a schedule descriptor.
func (t *Task) IsRecurring() bool {
	return t.Recurring != nil
}

// IsOnce returns true if the task repeats exactly once.
func (t *Task) IsOnce() bool {
	return t.Recurring != nil && t.Recurring.FrequencyType == schedule.FrequencyOnce
}
