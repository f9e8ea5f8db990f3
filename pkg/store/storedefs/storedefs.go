// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingRevision is the error returned when a Revision or LastRevision
// query completes with no result.
var ErrNoMatchingRevision = errors.New("no matching revision")

// ErrNoScene is returned by Scene when there is no scene with the given name.
var ErrNoScene = errors.New("no such scene")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextRevisionSeq() (int, error)
	AddRevision(name, text string) (int, error)
	DelRevision(seq int) error
	Revision(seq int) (Revision, error)
	Revisions(from, upto int) ([]Revision, error)
	LastRevision(name string) (Revision, error)

	SetScene(name, text string) error
	Scene(name string) (string, error)
	DelScene(name string) error
	SceneNames() ([]string, error)
}

// Revision is a snapshot of a source file, taken when it was evaluated.
type Revision struct {
	// Name of the source.
	Name string
	Text string
	Seq  int
}
