package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

// Resource names the collections a snapshot can hold. One key per remote
// collection; a snapshot is always written whole.
const (
	ResourceEvents     = "events"
	ResourceEventTypes = "event-types"
	ResourceTaskTypes  = "task-types"
	ResourceTasks      = "tasks"
	ResourceOrders     = "orders"
	ResourceUsers      = "users"
)

// ErrNoSnapshot is returned when a resource has never been cached.
var ErrNoSnapshot = errors.New("store: no snapshot for resource")

// Snapshots caches the most recent successful fetch of each resource so the
// calendar and board can render without the network. There is no coherency
// protocol: a snapshot is whatever the last online run saw.
type Snapshots struct {
	d *diskv.Diskv
}

// NewSnapshots opens (creating if needed) the snapshot cache at basePath.
func NewSnapshots(basePath string) *Snapshots {
	return &Snapshots{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// envelope wraps cached payloads with the time they were taken.
type envelope struct {
	TakenAt time.Time       `json:"taken_at"`
	Data    json.RawMessage `json:"data"`
}

// Put replaces the snapshot for resource with v.
func (s *Snapshots) Put(resource string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode snapshot %s: %w", resource, err)
	}
	env, err := json.Marshal(envelope{TakenAt: time.Now(), Data: data})
	if err != nil {
		return fmt.Errorf("store: wrap snapshot %s: %w", resource, err)
	}
	if err := s.d.Write(resource, env); err != nil {
		return fmt.Errorf("store: write snapshot %s: %w", resource, err)
	}
	return nil
}

// Get decodes the snapshot for resource into out and reports when it was
// taken.
func (s *Snapshots) Get(resource string, out any) (time.Time, error) {
	raw, err := s.d.Read(resource)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNoSnapshot, resource)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return time.Time{}, fmt.Errorf("store: decode snapshot %s: %w", resource, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return time.Time{}, fmt.Errorf("store: decode snapshot %s payload: %w", resource, err)
	}
	return env.TakenAt, nil
}

// BasePath exposes the cache directory for the watcher.
func (s *Snapshots) BasePath() string {
	return s.d.BasePath
}
