package store

import "github.com/ogzhncrt/dailydo/internal/model"

// Store is the persistence contract for the to-do document. Callers get the
// whole document, mutate it in memory and hand it back; there is no partial
// update. Implemented by jsonstore for disk and by in-memory doubles in tests.
type Store interface {
	Load() (model.Document, error)
	Save(model.Document) error
}
