// Package api implements the HTTP client for the coworkers backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"coworkers/internal/draft"
	"coworkers/internal/task"
)

// Transport errors.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultRetryCount = 2
	defaultRetryWait  = 500 * time.Millisecond
)

// Client talks to the coworkers REST backend. It implements
// draft.TaskService.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryCount int
	retryWait  time.Duration
}

// NewClient creates an API client with a bearer token.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryCount: defaultRetryCount,
		retryWait:  defaultRetryWait,
	}
}

// CreateTask creates a task in the given task list.
func (c *Client) CreateTask(ctx context.Context, groupID, taskListID int64, payload draft.CreatePayload) (*task.Task, error) {
	url := fmt.Sprintf("%s/groups/%d/task-lists/%d/tasks", c.baseURL, groupID, taskListID)

	var created task.Task
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &created); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return &created, nil
}

// UpdateTask patches name, description and done state of an existing task.
func (c *Client) UpdateTask(ctx context.Context, groupID, taskListID, taskID int64, payload draft.UpdatePayload) (*task.Task, error) {
	url := fmt.Sprintf("%s/groups/%d/task-lists/%d/tasks/%d", c.baseURL, groupID, taskListID, taskID)

	var updated task.Task
	if err := c.doJSON(ctx, http.MethodPatch, url, payload, &updated); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return &updated, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, groupID, taskListID, taskID int64) (*task.Task, error) {
	url := fmt.Sprintf("%s/groups/%d/task-lists/%d/tasks/%d", c.baseURL, groupID, taskListID, taskID)

	var t task.Task
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &t); err != nil {
		return nil, fmt.Errorf("fetching task: %w", err)
	}
	return &t, nil
}

// ListTasks returns the tasks of a task list for one day.
func (c *Client) ListTasks(ctx context.Context, groupID, taskListID int64, date time.Time) ([]*task.Task, error) {
	url := fmt.Sprintf("%s/groups/%d/task-lists/%d/tasks?date=%s",
		c.baseURL, groupID, taskListID, date.Format("2006-01-02"))

	var tasks []*task.Task
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &tasks); err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// doJSON issues one JSON request, retrying transient failures. The body is
// marshaled once so every attempt sends identical bytes.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = data
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryWait):
			}
		}

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return fmt.Errorf("building request: %w", err)
		}

		req.Header.Set("Authorization", "Bearer "+c.token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("sending request: %w", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			continue
		case resp.StatusCode >= 400:
			resp.Body.Close()
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		if out == nil {
			resp.Body.Close()
			return nil
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	return lastErr
}
