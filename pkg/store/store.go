package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

// Collection names shared by all backends.
const (
	CollectionClients       = "clients"
	CollectionTasks         = "tasks"
	CollectionSchedule      = "schedule"
	CollectionLeads         = "leads"
	CollectionArchivedLeads = "archivedLeads"
	CollectionLeadHistory   = "leadHistory"
	CollectionAttendance    = "attendance"
	CollectionSettings      = "settings"
)

// DocPtr is satisfied by pointers to stored document types.
type DocPtr[T any] interface {
	*T
	club.Document
}

// Collection is a set of documents of one type keyed by id.
type Collection[T any] interface {
	// Get returns ErrNotFound when no document has the id.
	Get(ctx context.Context, id string) (T, error)
	// List returns every document in insertion order.
	List(ctx context.Context) ([]T, error)
	// Put creates or replaces a document and returns it with its new revision.
	Put(ctx context.Context, doc T) (T, error)
	// Delete returns ErrNotFound when no document has the id.
	Delete(ctx context.Context, id string) error
}

// Store bundles the collections of one club.
type Store struct {
	Clients       Collection[club.Client]
	Tasks         Collection[club.Task]
	Schedule      Collection[club.ScheduleSlot]
	Leads         Collection[club.Lead]
	ArchivedLeads Collection[club.Lead]
	LeadHistory   Collection[club.LeadLifecycleEvent]
	Attendance    Collection[club.AttendanceEntry]
	Settings      Collection[club.Settings]

	ping  func(context.Context) error
	close func(context.Context) error
}

// Backend creates the typed collections of a Store. Go methods cannot be
// generic, so a backend exposes one constructor per document type.
type Backend interface {
	Clients() Collection[club.Client]
	Tasks() Collection[club.Task]
	Schedule() Collection[club.ScheduleSlot]
	Leads(name string) Collection[club.Lead]
	LeadHistory() Collection[club.LeadLifecycleEvent]
	Attendance() Collection[club.AttendanceEntry]
	Settings() Collection[club.Settings]
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New assembles a Store from a backend.
func New(b Backend) *Store {
	return &Store{
		Clients:       b.Clients(),
		Tasks:         b.Tasks(),
		Schedule:      b.Schedule(),
		Leads:         b.Leads(CollectionLeads),
		ArchivedLeads: b.Leads(CollectionArchivedLeads),
		LeadHistory:   b.LeadHistory(),
		Attendance:    b.Attendance(),
		Settings:      b.Settings(),
		ping:          b.Ping,
		close:         b.Close,
	}
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// LoadDatabase reads every collection of s into one snapshot. A missing
// settings document yields zero settings.
func LoadDatabase(ctx context.Context, s *Store) (club.Database, error) {
	var (
		db  club.Database
		err error
	)
	if db.Clients, err = s.Clients.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionClients, err)
	}
	if db.Tasks, err = s.Tasks.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionTasks, err)
	}
	if db.Schedule, err = s.Schedule.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionSchedule, err)
	}
	if db.Leads, err = s.Leads.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionLeads, err)
	}
	if db.ArchivedLeads, err = s.ArchivedLeads.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionArchivedLeads, err)
	}
	if db.LeadHistory, err = s.LeadHistory.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionLeadHistory, err)
	}
	if db.Attendance, err = s.Attendance.List(ctx); err != nil {
		return club.Database{}, fmt.Errorf("%s: %w", CollectionAttendance, err)
	}
	db.Settings, err = s.Settings.Get(ctx, club.SettingsID)
	switch {
	case errors.Is(err, ErrNotFound):
		db.Settings = club.Settings{ID: club.SettingsID}
	case err != nil:
		return club.Database{}, fmt.Errorf("%s: %w", CollectionSettings, err)
	}
	return db, nil
}

// Seed writes every document of db into s. Documents are written as new, so
// seeding fails with ErrRevisionConflict on ids that already exist.
func Seed(ctx context.Context, s *Store, db club.Database) error {
	var errs []error
	errs = append(errs, seed(ctx, s.Clients, db.Clients))
	errs = append(errs, seed(ctx, s.Tasks, db.Tasks))
	errs = append(errs, seed(ctx, s.Schedule, db.Schedule))
	errs = append(errs, seed(ctx, s.Leads, db.Leads))
	errs = append(errs, seed(ctx, s.ArchivedLeads, db.ArchivedLeads))
	errs = append(errs, seed(ctx, s.LeadHistory, db.LeadHistory))
	errs = append(errs, seed(ctx, s.Attendance, db.Attendance))
	settings := db.Settings
	settings.ID = club.SettingsID
	errs = append(errs, seed(ctx, s.Settings, []club.Settings{settings}))
	return errors.Join(errs...)
}

func seed[T any, PT DocPtr[T]](ctx context.Context, c Collection[T], docs []T) error {
	for _, d := range docs {
		PT(&d).SetDocRevision(0)
		if _, err := c.Put(ctx, d); err != nil {
			return fmt.Errorf("seed %s: %w", PT(&d).DocID(), err)
		}
	}
	return nil
}
