package app

import (
	"context"
	"errors"
	"testing"

	"github.com/antoniocanovasleon/iberfoods/pkg/api"
	"github.com/antoniocanovasleon/iberfoods/pkg/store"
)

// fakeClient counts calls and serves canned collections. Methods the tests
// never reach panic via the embedded nil interface.
type fakeClient struct {
	api.Client

	events []api.Event
	types  []api.EventType
	orders []api.Order
	tasks  []api.Task
	ttypes []api.TaskType
	users  []api.User

	eventFetches int
	taskFetches  int

	createdEvents []api.EventInput
	updatedTasks  map[string]api.TaskUpdate
	deletedEvents []string

	fail error
}

func (f *fakeClient) Events(ctx context.Context) ([]api.Event, error) {
	f.eventFetches++
	return f.events, f.fail
}

func (f *fakeClient) EventTypes(ctx context.Context) ([]api.EventType, error) {
	return f.types, f.fail
}

func (f *fakeClient) Orders(ctx context.Context) ([]api.Order, error) {
	return f.orders, f.fail
}

func (f *fakeClient) Tasks(ctx context.Context) ([]api.Task, error) {
	f.taskFetches++
	return f.tasks, f.fail
}

func (f *fakeClient) TaskTypes(ctx context.Context) ([]api.TaskType, error) {
	return f.ttypes, f.fail
}

func (f *fakeClient) Users(ctx context.Context) ([]api.User, error) {
	return f.users, f.fail
}

func (f *fakeClient) CreateEvent(ctx context.Context, in api.EventInput) (api.Event, error) {
	f.createdEvents = append(f.createdEvents, in)
	return api.Event{ID: "created"}, nil
}

func (f *fakeClient) DeleteEvent(ctx context.Context, id string) error {
	f.deletedEvents = append(f.deletedEvents, id)
	return nil
}

func (f *fakeClient) UpdateTask(ctx context.Context, id string, in api.TaskUpdate) (api.Task, error) {
	if f.updatedTasks == nil {
		f.updatedTasks = make(map[string]api.TaskUpdate)
	}
	f.updatedTasks[id] = in
	return api.Task{ID: id}, nil
}

func newService(t *testing.T, c *fakeClient) *Service {
	t.Helper()
	return &Service{
		Client:    c,
		Snapshots: store.NewSnapshots(t.TempDir()),
	}
}

func TestCalendarSnapshotsWhatItFetched(t *testing.T) {
	c := &fakeClient{
		events: []api.Event{{ID: "e-1", Title: "Feria Alimentaria"}},
		types:  []api.EventType{{ID: "fair", Name: "Feria", Color: "#22c55e"}},
		orders: []api.Order{{ID: "o-1", OrderNumber: "P-1001"}},
	}
	svc := newService(t, c)

	data, err := svc.Calendar(context.Background())
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(data.Events) != 1 || len(data.Types) != 1 || len(data.Orders) != 1 {
		t.Fatalf("unexpected data: %+v", data)
	}

	offline, taken, err := svc.CalendarOffline()
	if err != nil {
		t.Fatalf("offline after fetch: %v", err)
	}
	if taken.IsZero() {
		t.Error("snapshot time not recorded")
	}
	if len(offline.Events) != 1 || offline.Events[0].ID != "e-1" {
		t.Fatalf("snapshot does not match fetch: %+v", offline.Events)
	}
	if len(offline.Types) != 1 || offline.Types[0].ID != "fair" {
		t.Fatalf("type catalog not snapshotted: %+v", offline.Types)
	}
}

func TestCalendarOfflineWithoutSnapshot(t *testing.T) {
	svc := newService(t, &fakeClient{})
	if _, _, err := svc.CalendarOffline(); !errors.Is(err, store.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestCalendarFetchFailureLeavesSnapshotAlone(t *testing.T) {
	c := &fakeClient{events: []api.Event{{ID: "e-1"}}}
	svc := newService(t, c)
	if _, err := svc.Calendar(context.Background()); err != nil {
		t.Fatalf("first calendar: %v", err)
	}

	c.fail = errors.New("boom")
	if _, err := svc.Calendar(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}

	offline, _, err := svc.CalendarOffline()
	if err != nil {
		t.Fatalf("offline: %v", err)
	}
	if len(offline.Events) != 1 {
		t.Fatalf("failed fetch clobbered snapshot: %+v", offline.Events)
	}
}

func TestSaveEventCreatesThenReloads(t *testing.T) {
	c := &fakeClient{}
	svc := newService(t, c)

	if _, err := svc.SaveEvent(context.Background(), "", api.EventInput{Title: "Pedido Mercamadrid"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(c.createdEvents) != 1 {
		t.Fatalf("expected one create, got %d", len(c.createdEvents))
	}
	if c.eventFetches != 1 {
		t.Errorf("mutation must reload events, fetches=%d", c.eventFetches)
	}
}

func TestRemoveEventReloads(t *testing.T) {
	c := &fakeClient{}
	svc := newService(t, c)

	if _, err := svc.RemoveEvent(context.Background(), "e-9"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(c.deletedEvents) != 1 || c.deletedEvents[0] != "e-9" {
		t.Fatalf("delete not issued: %v", c.deletedEvents)
	}
	if c.eventFetches != 1 {
		t.Errorf("delete must reload events, fetches=%d", c.eventFetches)
	}
}

func TestMoveTaskSendsPartialUpdate(t *testing.T) {
	c := &fakeClient{}
	svc := newService(t, c)

	pos := 2
	if _, err := svc.MoveTask(context.Background(), "t-1", api.StatusDone, &pos); err != nil {
		t.Fatalf("move: %v", err)
	}

	up, ok := c.updatedTasks["t-1"]
	if !ok {
		t.Fatal("no update issued for t-1")
	}
	if up.Status == nil || *up.Status != api.StatusDone {
		t.Errorf("status not sent: %+v", up)
	}
	if up.Position == nil || *up.Position != 2 {
		t.Errorf("position not sent: %+v", up)
	}
	if up.Title != nil || up.Priority != nil {
		t.Errorf("move must not touch other fields: %+v", up)
	}
	if c.taskFetches != 1 {
		t.Errorf("move must reload board, fetches=%d", c.taskFetches)
	}
}

func TestMoveTaskRejectsUnknownStatus(t *testing.T) {
	c := &fakeClient{}
	svc := newService(t, c)

	if _, err := svc.MoveTask(context.Background(), "t-1", "archived", nil); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if len(c.updatedTasks) != 0 {
		t.Errorf("invalid move reached the API: %+v", c.updatedTasks)
	}
}
