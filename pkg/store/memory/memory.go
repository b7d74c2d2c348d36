package memory

import (
	"context"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

type backend struct{}

func (backend) Clients() store.Collection[club.Client] {
	return newCollection[club.Client]()
}

func (backend) Tasks() store.Collection[club.Task] {
	return newCollection[club.Task]()
}

func (backend) Schedule() store.Collection[club.ScheduleSlot] {
	return newCollection[club.ScheduleSlot]()
}

func (backend) Leads(string) store.Collection[club.Lead] {
	return newCollection[club.Lead]()
}

func (backend) LeadHistory() store.Collection[club.LeadLifecycleEvent] {
	return newCollection[club.LeadLifecycleEvent]()
}

func (backend) Attendance() store.Collection[club.AttendanceEntry] {
	return newCollection[club.AttendanceEntry]()
}

func (backend) Settings() store.Collection[club.Settings] {
	return newCollection[club.Settings]()
}

func (backend) Ping(context.Context) error  { return nil }
func (backend) Close(context.Context) error { return nil }

// New returns an empty store.
func New() *store.Store {
	return store.New(backend{})
}

// Open returns a store seeded with db.
func Open(ctx context.Context, db club.Database) (*store.Store, error) {
	s := New()
	if err := store.Seed(ctx, s, db); err != nil {
		return nil, err
	}
	return s, nil
}
