// Package storage keeps rendered documents for the HTTP API.
//
// Two backends implement [Store]:
//   - [MemoryStore]: a map guarded by a mutex, for tests and single-process use
//   - [MongoStore]: a MongoDB collection, for deployments with several servers
//
// Records are addressed by a random UUID assigned in [NewRecord].
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/texweave/texweave/pkg/errors"
)

// Record is a stored rendering.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	Format    string    `json:"format" bson:"format"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	SourceSHA string    `json:"source_sha" bson:"source_sha"`
	TeX       string    `json:"tex" bson:"tex"`
	Nodes     int       `json:"nodes" bson:"nodes"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord returns a record with a fresh ID and creation time.
func NewRecord(format, title, sourceSHA, tex string, nodes int) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Format:    format,
		Title:     title,
		SourceSHA: sourceSHA,
		TeX:       tex,
		Nodes:     nodes,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for document storage backends.
type Store interface {
	// Put stores r, replacing any record with the same ID.
	Put(ctx context.Context, r *Record) error

	// Get returns the record with the given ID, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// Delete removes a record. A missing ID is a NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// List returns up to limit records, newest first. A limit of zero
	// returns all records.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Close releases the backend.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "document %s not found", id)
}

func validRecord(r *Record) error {
	if r == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "record is nil")
	}
	return errors.ValidateDocumentID(r.ID)
}
