package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPClient implements Client against the remote REST API.
type HTTPClient struct {
	base  string
	token string
	http  *http.Client
}

// NewHTTP builds a client for the given base URL (e.g.
// "https://ops.iberfoods.example/api"). The bearer token comes from config;
// there is no login flow in this tool.
func NewHTTP(base, token string) *HTTPClient {
	return &HTTPClient{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Error carries the HTTP status and the server's detail message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: server returned %d", e.Status)
	}
	return fmt.Sprintf("api: %s (%d)", e.Detail, e.Status)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// readDetail extracts {"detail": "..."} error bodies; anything else is used
// verbatim, truncated.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(data))
}

func (c *HTTPClient) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/calendar", nil, &events); err != nil {
		return nil, err
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, in EventInput) (Event, error) {
	var out Event
	err := c.do(ctx, http.MethodPost, "/calendar", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id string, in EventInput) (Event, error) {
	var out Event
	err := c.do(ctx, http.MethodPut, "/calendar/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/calendar/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) EventTypes(ctx context.Context) ([]EventType, error) {
	var types []EventType
	err := c.do(ctx, http.MethodGet, "/event-types", nil, &types)
	return types, err
}

func (c *HTTPClient) CreateEventType(ctx context.Context, in TypeInput) (EventType, error) {
	var out EventType
	err := c.do(ctx, http.MethodPost, "/event-types", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateEventType(ctx context.Context, id string, in TypeInput) (EventType, error) {
	var out EventType
	err := c.do(ctx, http.MethodPut, "/event-types/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteEventType(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/event-types/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) TaskTypes(ctx context.Context) ([]TaskType, error) {
	var types []TaskType
	err := c.do(ctx, http.MethodGet, "/task-types", nil, &types)
	return types, err
}

func (c *HTTPClient) CreateTaskType(ctx context.Context, in TypeInput) (TaskType, error) {
	var out TaskType
	err := c.do(ctx, http.MethodPost, "/task-types", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateTaskType(ctx context.Context, id string, in TypeInput) (TaskType, error) {
	var out TaskType
	err := c.do(ctx, http.MethodPut, "/task-types/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteTaskType(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/task-types/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := c.do(ctx, http.MethodGet, "/kanban", nil, &tasks)
	return tasks, err
}

func (c *HTTPClient) CreateTask(ctx context.Context, in TaskInput) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/kanban", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, in TaskUpdate) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, "/kanban/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/kanban/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

func (c *HTTPClient) LinkedEvents(ctx context.Context, orderID string) ([]Event, error) {
	var events []Event
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/linked-events", nil, &events)
	return events, err
}

func (c *HTTPClient) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

func (c *HTTPClient) CreateUser(ctx context.Context, in UserInput) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/users", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, in UserInput) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
