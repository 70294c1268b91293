package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"coworkers/internal/api"
	"coworkers/internal/db"
	"coworkers/internal/draft"
	"coworkers/internal/schedule"
	"coworkers/internal/task"
)

// fakeBackend is an in-memory stand-in for the coworkers API.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*task.Task
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1, tasks: make(map[int64]*task.Task)}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /groups/11/task-lists/22/tasks", func(w http.ResponseWriter, r *http.Request) {
		var payload draft.CreatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		id := b.nextID
		b.nextID++
		created := &task.Task{
			ID:          id,
			Name:        payload.Name,
			Description: payload.Description,
			Date:        payload.StartDate,
			Recurring: &task.Recurring{
				ID:            id,
				StartDate:     payload.StartDate,
				FrequencyType: payload.FrequencyType,
				WeekDays:      payload.WeekDays,
				MonthDay:      payload.MonthDay,
			},
		}
		b.tasks[id] = created
		b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(created)
	})

	mux.HandleFunc("PATCH /groups/11/task-lists/22/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var payload draft.UpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		existing, ok := b.tasks[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		existing.Name = payload.Name
		existing.Description = payload.Description
		existing.Done = payload.Done
		_ = json.NewEncoder(w).Encode(existing)
	})

	mux.HandleFunc("GET /groups/11/task-lists/22/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		existing, ok := b.tasks[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(existing)
	})

	mux.HandleFunc("GET /groups/11/task-lists/22/tasks", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := []*task.Task{}
		for _, t := range b.tasks {
			out = append(out, t)
		}
		_ = json.NewEncoder(w).Encode(out)
	})

	return mux
}

type env struct {
	backend *fakeBackend
	client  *api.Client
	cache   *db.Cache
}

func newEnv(t *testing.T) *env {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	cache, err := db.New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })

	return &env{
		backend: backend,
		client:  api.NewClient(srv.URL, "test-token", 5*time.Second),
		cache:   cache,
	}
}

type recordingNotifier struct {
	infos, errors, successes []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

type recordingOverlay struct{ closed []string }

func (o *recordingOverlay) Close(id string) { o.closed = append(o.closed, id) }

// cacheRevalidator drops every cached list when a mutation lands.
type cacheRevalidator struct {
	t     *testing.T
	cache *db.Cache
}

func (r *cacheRevalidator) Invalidate() {
	if err := r.cache.InvalidateAll(context.Background()); err != nil {
		r.t.Errorf("invalidating cache: %v", err)
	}
}

func newController(t *testing.T, e *env, store *draft.Store, done bool) (*draft.Controller, *recordingNotifier, *recordingOverlay) {
	t.Helper()
	notifier := &recordingNotifier{}
	overlay := &recordingOverlay{}
	target := draft.Target{GroupID: 11, TaskListID: 22, ModalID: "task-editor", Done: done}
	views := &cacheRevalidator{t: t, cache: e.cache}
	return draft.NewController(store, target, e.client, notifier, overlay, views), notifier, overlay
}

func TestCreateThroughBackendAndCache(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 15, 0, 0, time.Local)

	store := draft.NewStore(now)
	store.SetName("스터디 준비")
	store.SetDescription("자료 정리")
	store.StageFrequency(schedule.LabelWeekly)
	store.ToggleWeekDay(1)
	store.ToggleWeekDay(3)

	ctl, _, overlay := newController(t, e, store, false)
	if got := ctl.Submit(ctx); got != draft.OutcomeCreated {
		t.Fatalf("Submit() = %v, want OutcomeCreated", got)
	}
	if len(overlay.closed) != 1 || overlay.closed[0] != "task-editor" {
		t.Fatalf("overlay closes = %v, want [task-editor]", overlay.closed)
	}

	created := e.backend.tasks[1]
	if created == nil {
		t.Fatalf("backend did not record the task")
	}
	if created.Recurring.FrequencyType != schedule.FrequencyWeekly {
		t.Fatalf("frequency = %q, want WEEKLY", created.Recurring.FrequencyType)
	}
	if len(created.Recurring.WeekDays) != 2 {
		t.Fatalf("week days = %v, want two entries", created.Recurring.WeekDays)
	}
	if created.Recurring.MonthDay != 0 {
		t.Fatalf("month day = %d, want omitted for weekly", created.Recurring.MonthDay)
	}

	// The list endpoint feeds the cache; a second read is served locally.
	date := store.Draft().StartDate
	tasks, err := e.client.ListTasks(ctx, 11, 22, date)
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	if err := e.cache.PutTasks(ctx, 11, 22, date, tasks); err != nil {
		t.Fatalf("caching tasks: %v", err)
	}
	cached, fresh, err := e.cache.GetTasks(ctx, 11, 22, date)
	if err != nil || !fresh {
		t.Fatalf("cache read fresh=%v err=%v", fresh, err)
	}
	if len(cached) != 1 || cached[0].Name != "스터디 준비" {
		t.Fatalf("cached tasks = %v", cached)
	}
}

func TestEditInvalidatesCache(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 15, 0, 0, time.Local)

	// Seed the backend and the cache through the normal create path.
	seed := draft.NewStore(now)
	seed.SetName("회의록 작성")
	seed.SetDescription("지난 회의")
	ctl, _, _ := newController(t, e, seed, false)
	if got := ctl.Submit(ctx); got != draft.OutcomeCreated {
		t.Fatalf("seed Submit() = %v, want OutcomeCreated", got)
	}

	date := seed.Draft().StartDate
	tasks, err := e.client.ListTasks(ctx, 11, 22, date)
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	if err := e.cache.PutTasks(ctx, 11, 22, date, tasks); err != nil {
		t.Fatalf("caching tasks: %v", err)
	}

	original, err := e.client.GetTask(ctx, 11, 22, 1)
	if err != nil {
		t.Fatalf("fetching task: %v", err)
	}

	store := draft.NewStoreForTask(original, now)
	store.SetName("회의록 작성 완료")
	editCtl, _, _ := newController(t, e, store, true)
	if got := editCtl.Submit(ctx); got != draft.OutcomeUpdated {
		t.Fatalf("Submit() = %v, want OutcomeUpdated", got)
	}

	if got := e.backend.tasks[1]; got.Name != "회의록 작성 완료" || !got.Done {
		t.Fatalf("backend task after edit = %+v", got)
	}

	if _, fresh, err := e.cache.GetTasks(ctx, 11, 22, date); err != nil {
		t.Fatalf("reading cache after edit: %v", err)
	} else if fresh {
		t.Fatalf("cache still fresh after edit")
	}
}

func TestNoChangeEditSkipsBackend(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 9, 15, 0, 0, time.Local)

	seed := draft.NewStore(now)
	seed.SetName("제출용 문서")
	seed.SetDescription("초안")
	ctl, _, _ := newController(t, e, seed, false)
	if got := ctl.Submit(ctx); got != draft.OutcomeCreated {
		t.Fatalf("seed Submit() = %v, want OutcomeCreated", got)
	}

	original, err := e.client.GetTask(ctx, 11, 22, 1)
	if err != nil {
		t.Fatalf("fetching task: %v", err)
	}

	store := draft.NewStoreForTask(original, now)
	editCtl, notifier, _ := newController(t, e, store, original.Done)
	if got := editCtl.Submit(ctx); got != draft.OutcomeNoChange {
		t.Fatalf("Submit() = %v, want OutcomeNoChange", got)
	}
	if len(notifier.infos) != 1 || notifier.infos[0] != draft.MsgNoChanges {
		t.Fatalf("info notices = %v, want [%q]", notifier.infos, draft.MsgNoChanges)
	}
	if got := e.backend.tasks[1].Name; got != "제출용 문서" {
		t.Fatalf("backend task changed by no-op edit: %q", got)
	}
}
