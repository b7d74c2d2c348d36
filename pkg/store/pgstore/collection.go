package pgstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/clubledger/pkg/store"
)

const (
	getQuery    = `SELECT revision, doc FROM documents WHERE collection = $1 AND id = $2`
	listQuery   = `SELECT revision, doc FROM documents WHERE collection = $1 ORDER BY seq`
	insertQuery = `INSERT INTO documents (collection, id, revision, doc) VALUES ($1, $2, 1, $3)
		ON CONFLICT (collection, id) DO NOTHING`
	updateQuery = `UPDATE documents SET revision = revision + 1, doc = $4, updated_at = now()
		WHERE collection = $1 AND id = $2 AND revision = $3`
	deleteQuery = `DELETE FROM documents WHERE collection = $1 AND id = $2`
)

type collection[T any, PT store.DocPtr[T]] struct {
	pool *pgxpool.Pool
	name string
}

func (c *collection[T, PT]) decode(rev int64, data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s document: %w", c.name, err)
	}
	PT(&v).SetDocRevision(rev)
	return v, nil
}

func (c *collection[T, PT]) Get(ctx context.Context, id string) (T, error) {
	var (
		rev  int64
		data []byte
	)
	err := c.pool.QueryRow(ctx, getQuery, c.name, id).Scan(&rev, &data)
	if isNotFound(err) {
		var zero T
		return zero, store.ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return c.decode(rev, data)
}

func (c *collection[T, PT]) List(ctx context.Context) ([]T, error) {
	rows, err := c.pool.Query(ctx, listQuery, c.name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var (
			rev  int64
			data []byte
		)
		if err := rows.Scan(&rev, &data); err != nil {
			return nil, err
		}
		v, err := c.decode(rev, data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c *collection[T, PT]) Put(ctx context.Context, doc T) (T, error) {
	p := PT(&doc)
	id, rev := p.DocID(), p.DocRevision()
	if id == "" {
		return doc, store.ErrMissingID
	}

	p.SetDocRevision(rev + 1)
	data, err := json.Marshal(doc)
	if err != nil {
		p.SetDocRevision(rev)
		return doc, err
	}

	query, args := updateQuery, []any{c.name, id, rev, data}
	if rev == 0 {
		query, args = insertQuery, []any{c.name, id, data}
	}
	tag, err := c.pool.Exec(ctx, query, args...)
	if err != nil {
		p.SetDocRevision(rev)
		return doc, err
	}
	if tag.RowsAffected() == 0 {
		p.SetDocRevision(rev)
		return doc, store.ErrRevisionConflict
	}
	return doc, nil
}

func (c *collection[T, PT]) Delete(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, deleteQuery, c.name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
