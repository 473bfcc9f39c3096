package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by id-scoped operations that matched no document.
var ErrNotFound = errors.New("not found")

// listLimit caps every list query.
const listLimit = 1000

// Store is the persistence gateway over the document database. One instance
// is constructed at startup and injected into the handlers.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) enquiries() *mongo.Collection { return s.db.Collection("admission_enquiries") }
func (s *Store) messages() *mongo.Collection  { return s.db.Collection("contact_messages") }
func (s *Store) photos() *mongo.Collection    { return s.db.Collection("photos") }
func (s *Store) events() *mongo.Collection    { return s.db.Collection("events") }
