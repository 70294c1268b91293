// Package tui provides the terminal task editor for the coworkers client.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"coworkers/internal/config"
	"coworkers/internal/draft"
	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

// Field identifies the focusable parts of the editor form.
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldDate
	FieldTime
	FieldFrequency
	FieldWeekDays
	FieldSubmit
)

// editorModalID names the editor overlay for the submission controller.
const editorModalID = "task-editor"

// Model is the task editor TUI model.
type Model struct {
	// Dependencies
	store *draft.Store
	ctl   *draft.Controller

	// Collaborator shims owned by the model
	notify  *statusNotifier
	overlay *modalOverlay

	// Form state
	focus     Field
	nameInput textinput.Model
	descInput textinput.Model
	freqIndex int // index into schedule.FrequencyLabels()
	dayCursor int // weekday under the cursor, 0..6

	// Picker state
	calendarCursor time.Time // date under the cursor in the calendar popover
	slotCursor     int       // catalog index under the cursor in the time popover

	// Feedback
	statusMsg   string
	statusLevel statusLevel
	showErrors  bool

	// Layout
	width  int
	height int
	styles Styles

	quitting bool
}

// New creates an editor model for the create flow.
func New(cfg *config.Config, svc draft.TaskService, views draft.Revalidator) Model {
	return newModel(cfg, svc, views, nil, time.Now())
}

// NewForTask creates an editor model hydrated from an existing task.
func NewForTask(cfg *config.Config, svc draft.TaskService, views draft.Revalidator, t *task.Task) Model {
	return newModel(cfg, svc, views, t, time.Now())
}

func newModel(cfg *config.Config, svc draft.TaskService, views draft.Revalidator, t *task.Task, now time.Time) Model {
	var store *draft.Store
	done := false
	if t != nil {
		store = draft.NewStoreForTask(t, now)
		done = t.Done
	} else {
		store = draft.NewStore(now)
	}

	notify := &statusNotifier{}
	overlay := &modalOverlay{}

	target := draft.Target{
		GroupID:    cfg.Group.GroupID,
		TaskListID: cfg.Group.TaskListID,
		ModalID:    editorModalID,
		Done:       done,
	}

	nameInput := textinput.New()
	nameInput.Placeholder = "할 일 제목"
	nameInput.CharLimit = 100
	nameInput.SetValue(store.Draft().Name)
	nameInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "할 일 설명"
	descInput.CharLimit = 200
	descInput.SetValue(store.Draft().Description)

	freqIndex := 0
	for i, label := range schedule.FrequencyLabels() {
		if schedule.ParseLabel(label) == store.Draft().FrequencyType {
			freqIndex = i
			break
		}
	}

	return Model{
		store:          store,
		ctl:            draft.NewController(store, target, svc, notify, overlay, views),
		notify:         notify,
		overlay:        overlay,
		focus:          FieldName,
		nameInput:      nameInput,
		descInput:      descInput,
		freqIndex:      freqIndex,
		calendarCursor: store.Draft().StartDate,
		styles:         DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// IsEdit returns true when the editor edits an existing task.
func (m Model) IsEdit() bool {
	return m.store.IsEdit()
}

// Store exposes the draft store, mainly for tests.
func (m Model) Store() *draft.Store {
	return m.store
}

// Run starts the editor for the create flow and blocks until it closes.
func Run(cfg *config.Config, svc draft.TaskService, views draft.Revalidator) error {
	p := tea.NewProgram(New(cfg, svc, views), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// statusLevel classifies the feedback line under the form.
type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
	statusSuccess
)

// statusNotifier records the latest notice so the update loop can render
// it after a submission message arrives. It implements draft.Notifier.
type statusNotifier struct {
	msg   string
	level statusLevel
}

func (n *statusNotifier) Success(msg string) { n.msg, n.level = msg, statusSuccess }
func (n *statusNotifier) Error(msg string)   { n.msg, n.level = msg, statusError }
func (n *statusNotifier) Info(msg string)    { n.msg, n.level = msg, statusInfo }

// take returns and clears the recorded notice.
func (n *statusNotifier) take() (string, statusLevel) {
	msg, level := n.msg, n.level
	n.msg, n.level = "", statusNone
	return msg, level
}

// modalOverlay records close requests from the controller.
// It implements draft.Overlay.
type modalOverlay struct {
	closed bool
}

func (o *modalOverlay) Close(id string) {
	if id == editorModalID {
		o.closed = true
	}
}
