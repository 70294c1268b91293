package draft

import (
	"context"
	"strings"
	"time"

	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

// User-facing notices.
const (
	MsgNoChanges    = "변경된 내용이 없습니다."
	MsgCreateFailed = "할 일 생성 실패"
	MsgEditFailed   = "할 일 수정 실패"
)

// CreatePayload is the body of a task creation request. WeekDays is sent
// only for weekly recurrences and MonthDay only for monthly ones.
type CreatePayload struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	StartDate     time.Time          `json:"startDate"`
	FrequencyType schedule.Frequency `json:"frequencyType"`
	WeekDays      []int              `json:"weekDays,omitempty"`
	MonthDay      int                `json:"monthDay,omitempty"`
}

// UpdatePayload is the body of a task edit request. Recurrence fields are
// never resent on edit.
type UpdatePayload struct {
	Done        bool   `json:"done"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TaskService persists tasks. Implemented by the API client.
type TaskService interface {
	CreateTask(ctx context.Context, groupID, taskListID int64, payload CreatePayload) (*task.Task, error)
	UpdateTask(ctx context.Context, groupID, taskListID, taskID int64, payload UpdatePayload) (*task.Task, error)
}

// Notifier surfaces fire-and-forget user feedback.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Overlay opens and closes named editor overlays.
type Overlay interface {
	Close(id string)
}

// Revalidator invalidates cached task-list views after a mutation.
type Revalidator interface {
	Invalidate()
}

// Validation is the derived, read-only validity of a draft. It is
// recomputed on every read and never latched.
type Validation struct {
	NameMissing        bool
	DescriptionMissing bool
}

// Valid returns true if no field is missing.
func (v Validation) Valid() bool {
	return !v.NameMissing && !v.DescriptionMissing
}

// Validate checks the current draft. Both name and description must be
// non-empty after trimming.
func (s *Store) Validate() Validation {
	return Validation{
		NameMissing:        strings.TrimSpace(s.draft.Name) == "",
		DescriptionMissing: strings.TrimSpace(s.draft.Description) == "",
	}
}

// IsUnchanged returns true in the edit flow when neither name nor
// description differs from the original task.
func (s *Store) IsUnchanged() bool {
	if s.original == nil {
		return false
	}
	return s.draft.Name == s.original.Name && s.draft.Description == s.original.Description
}

// Outcome is the terminal result of one Submit call.
type Outcome int

const (
	OutcomeCreated  Outcome = iota // create call succeeded
	OutcomeUpdated                 // edit call succeeded
	OutcomeNoChange                // edit with nothing changed, no call issued
	OutcomeBlocked                 // validation failed, no call issued
	OutcomeInFlight                // another submission is pending
	OutcomeFailed                  // the network call failed
)

// Target identifies where a submission lands.
type Target struct {
	GroupID    int64
	TaskListID int64
	ModalID    string // overlay to close on success
	Done       bool   // current done state, carried through edits
}

// Controller orchestrates validation, duplicate-submission suppression,
// the create-vs-edit branch and post-submit side effects for one Store.
type Controller struct {
	store  *Store
	target Target

	svc     TaskService
	notify  Notifier
	overlay Overlay
	views   Revalidator
}

// NewController wires a controller to its collaborators.
func NewController(store *Store, target Target, svc TaskService, notify Notifier, overlay Overlay, views Revalidator) *Controller {
	return &Controller{
		store:   store,
		target:  target,
		svc:     svc,
		notify:  notify,
		overlay: overlay,
		views:   views,
	}
}

// Store returns the store this controller drives.
func (c *Controller) Store() *Store {
	return c.store
}

// Submit runs the full submission lifecycle for the current draft.
// It never mutates the draft: a failed submission leaves everything in
// place so the user can retry.
func (c *Controller) Submit(ctx context.Context) Outcome {
	if c.store.Pending() {
		return OutcomeInFlight
	}

	if !c.store.Validate().Valid() {
		return OutcomeBlocked
	}

	if c.store.IsUnchanged() {
		c.notify.Info(MsgNoChanges)
		return OutcomeNoChange
	}

	if !c.store.BeginSubmit() {
		return OutcomeInFlight
	}
	defer c.store.EndSubmit()

	if c.store.IsEdit() {
		return c.submitEdit(ctx)
	}
	return c.submitCreate(ctx)
}

func (c *Controller) submitCreate(ctx context.Context) Outcome {
	payload := buildCreatePayload(c.store.Draft())

	_, err := c.svc.CreateTask(ctx, c.target.GroupID, c.target.TaskListID, payload)
	if err != nil {
		if !c.store.Discarded() {
			c.notify.Error(MsgCreateFailed)
		}
		return OutcomeFailed
	}

	c.finishSuccess()
	return OutcomeCreated
}

func (c *Controller) submitEdit(ctx context.Context) Outcome {
	payload := UpdatePayload{
		Done:        c.target.Done,
		Name:        c.store.Draft().Name,
		Description: c.store.Draft().Description,
	}

	_, err := c.svc.UpdateTask(ctx, c.target.GroupID, c.target.TaskListID, c.store.Original().ID, payload)
	if err != nil {
		if !c.store.Discarded() {
			c.notify.Error(MsgEditFailed)
		}
		return OutcomeFailed
	}

	c.finishSuccess()
	return OutcomeUpdated
}

// finishSuccess runs post-success side effects. Cached views are always
// invalidated because the server state did change, but the editor overlay
// is left alone when the store was discarded mid-flight.
func (c *Controller) finishSuccess() {
	c.views.Invalidate()
	if c.store.Discarded() {
		return
	}
	c.overlay.Close(c.target.ModalID)
}

// buildCreatePayload snapshots a draft into a creation request body.
// MonthDay is derived from the start date here, at submission time, so it
// can never drift from the picked date.
func buildCreatePayload(d Draft) CreatePayload {
	p := CreatePayload{
		Name:          d.Name,
		Description:   d.Description,
		StartDate:     d.StartDate,
		FrequencyType: d.FrequencyType,
	}

	switch d.FrequencyType {
	case schedule.FrequencyWeekly:
		p.WeekDays = d.WeekDays
	case schedule.FrequencyMonthly:
		p.MonthDay = schedule.MonthDay(d.StartDate)
	}

	return p
}
