package mongostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/clubledger/pkg/store"
)

type record struct {
	ID       string   `bson:"_id"`
	Seq      int64    `bson:"seq"`
	Revision int64    `bson:"revision"`
	Doc      bson.Raw `bson:"doc"`
}

type collection[T any, PT store.DocPtr[T]] struct {
	coll *mongo.Collection
	seq  func(context.Context) (int64, error)
}

func toBSON(v any) (bson.Raw, error) {
	js, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(js, false, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return bson.Marshal(doc)
}

func (c *collection[T, PT]) decode(r record) (T, error) {
	var v T
	js, err := bson.MarshalExtJSON(r.Doc, false, false)
	if err != nil {
		return v, errors.Join(ErrInvalidDocument, err)
	}
	if err := json.Unmarshal(js, &v); err != nil {
		return v, errors.Join(ErrInvalidDocument, fmt.Errorf("%s/%s: %w", c.coll.Name(), r.ID, err))
	}
	PT(&v).SetDocRevision(r.Revision)
	return v, nil
}

func (c *collection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var r record
	err := c.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		var zero T
		return zero, store.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return c.decode(r)
}

func (c *collection[T, PT]) List(ctx context.Context) ([]T, error) {
	cur, err := c.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var records []record
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		v, err := c.decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *collection[T, PT]) Put(ctx context.Context, doc T) (T, error) {
	p := PT(&doc)
	id, rev := p.DocID(), p.DocRevision()
	if id == "" {
		return doc, store.ErrMissingID
	}

	p.SetDocRevision(rev + 1)
	raw, err := toBSON(doc)
	if err != nil {
		p.SetDocRevision(rev)
		return doc, err
	}

	if rev == 0 {
		seq, err := c.seq(ctx)
		if err != nil {
			p.SetDocRevision(rev)
			return doc, err
		}
		_, err = c.coll.InsertOne(ctx, record{ID: id, Seq: seq, Revision: 1, Doc: raw})
		if mongo.IsDuplicateKeyError(err) {
			p.SetDocRevision(rev)
			return doc, store.ErrRevisionConflict
		}
		if err != nil {
			p.SetDocRevision(rev)
			return doc, err
		}
		return doc, nil
	}

	res, err := c.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "revision", Value: rev}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "revision", Value: rev + 1},
			{Key: "doc", Value: raw},
		}}},
	)
	if err != nil {
		p.SetDocRevision(rev)
		return doc, err
	}
	if res.MatchedCount == 0 {
		p.SetDocRevision(rev)
		return doc, store.ErrRevisionConflict
	}
	return doc, nil
}

func (c *collection[T, PT]) Delete(ctx context.Context, id string) error {
	res, err := c.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
