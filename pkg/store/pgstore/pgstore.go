package pgstore

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

type backend struct {
	pool *pgxpool.Pool
}

// Open connects, migrates the schema and returns the store.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*store.Store, error) {
	pool, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, pool, cfg, log); err != nil {
		pool.Close()
		return nil, err
	}
	log.InfoContext(ctx, "postgres store connected", logger.Component("pgstore"))
	return store.New(&backend{pool: pool}), nil
}

func newCollection[T any, PT store.DocPtr[T]](b *backend, name string) store.Collection[T] {
	return &collection[T, PT]{pool: b.pool, name: name}
}

func (b *backend) Clients() store.Collection[club.Client] {
	return newCollection[club.Client](b, store.CollectionClients)
}

func (b *backend) Tasks() store.Collection[club.Task] {
	return newCollection[club.Task](b, store.CollectionTasks)
}

func (b *backend) Schedule() store.Collection[club.ScheduleSlot] {
	return newCollection[club.ScheduleSlot](b, store.CollectionSchedule)
}

func (b *backend) Leads(name string) store.Collection[club.Lead] {
	return newCollection[club.Lead](b, name)
}

func (b *backend) LeadHistory() store.Collection[club.LeadLifecycleEvent] {
	return newCollection[club.LeadLifecycleEvent](b, store.CollectionLeadHistory)
}

func (b *backend) Attendance() store.Collection[club.AttendanceEntry] {
	return newCollection[club.AttendanceEntry](b, store.CollectionAttendance)
}

func (b *backend) Settings() store.Collection[club.Settings] {
	return newCollection[club.Settings](b, store.CollectionSettings)
}

func (b *backend) Ping(ctx context.Context) error {
	return Healthcheck(b.pool)(ctx)
}

func (b *backend) Close(context.Context) error {
	b.pool.Close()
	return nil
}
