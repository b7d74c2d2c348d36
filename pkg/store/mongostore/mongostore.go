package mongostore

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

const countersCollection = "counters"

type backend struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB and returns a store over cfg.Database.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*store.Store, error) {
	client, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "mongo store connected",
		logger.Component("mongostore"),
		slog.String("database", cfg.Database),
	)
	return store.New(&backend{client: client, db: client.Database(cfg.Database)}), nil
}

// nextSeq hands out insertion sequence numbers per collection from a
// counters document so List can return documents in insertion order.
func (b *backend) nextSeq(name string) func(context.Context) (int64, error) {
	counters := b.db.Collection(countersCollection)
	return func(ctx context.Context) (int64, error) {
		var out struct {
			Seq int64 `bson:"seq"`
		}
		err := counters.FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: name}},
			bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&out)
		return out.Seq, err
	}
}

func newCollection[T any, PT store.DocPtr[T]](b *backend, name string) store.Collection[T] {
	return &collection[T, PT]{coll: b.db.Collection(name), seq: b.nextSeq(name)}
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
	return Healthcheck(b.client)(ctx)
}

func (b *backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
