// Package storage defines the Storage interface, the contract every
// persistence backend must satisfy.
//
// WHY AN INTERFACE?
// ─────────────────
// Package logic saves the whole tutor list after every successful command
// and loads it once at startup. It does not care whether the list lives in
// a SQLite file or a YAML document:
//
//   - Switching backends = set storage_format in the config. The factory
//     in cmd/tuthub picks the implementation.
//
//   - Writing tests = pass a fake that satisfies the interface.
package storage

import "github.com/tuthub/tuthub/internal/tutor"

// Storage persists the complete, ordered tutor list.
type Storage interface {
	// LoadTutors returns every stored tutor in list order. An empty store
	// yields an empty slice and no error. A record that fails validation
	// fails the whole load.
	LoadTutors() ([]tutor.Tutor, error)

	// SaveTutors replaces the stored list with tutors.
	SaveTutors(tutors []tutor.Tutor) error

	// Close releases the backend's resources.
	Close() error
}

// Backuper is implemented by backends that can copy the stored content
// aside, so a list that failed to load survives the next save.
type Backuper interface {
	// Backup writes a copy of the stored content next to the original and
	// returns its location. A store with nothing in it returns "" and no
	// error.
	Backup() (string, error)
}
