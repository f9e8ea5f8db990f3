package store

import (
	"bytes"
	"encoding/binary"
	"errors"

	bolt "go.etcd.io/bbolt"

	. "src.tvk.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize revision table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRevision))
		return err
	}
}

var errBadRevision = errors.New("malformed revision record")

// NextRevisionSeq returns the sequence number the next revision will get.
func (s *dbStore) NextRevisionSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddRevision adds a snapshot of the named source.
func (s *dbStore) AddRevision(name, text string) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalRevision(name, text))
	})
	if err == nil {
		logger.Printf("added revision %d of %s", seq, name)
	}
	return int(seq), err
}

// DelRevision deletes the revision with the given sequence number.
func (s *dbStore) DelRevision(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Revision queries the revision with the given sequence number.
func (s *dbStore) Revision(seq int) (Revision, error) {
	var rev Revision
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingRevision
		}
		var err error
		rev, err = unmarshalRevision(seq, v)
		return err
	})
	return rev, err
}

// IterateRevisions iterates all the revisions in the given range, and calls
// the callback with each of them sequentially.
func (s *dbStore) IterateRevisions(from, upto int, f func(Revision)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			rev, err := unmarshalRevision(int(unmarshalSeq(k)), v)
			if err != nil {
				return err
			}
			f(rev)
		}
		return nil
	})
}

// Revisions returns all revisions within the given range.
func (s *dbStore) Revisions(from, upto int) ([]Revision, error) {
	var revs []Revision
	err := s.IterateRevisions(from, upto, func(rev Revision) {
		revs = append(revs, rev)
	})
	return revs, err
}

// LastRevision finds the last revision of the named source.
func (s *dbStore) LastRevision(name string) (Revision, error) {
	var rev Revision
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRevision))
		c := b.Cursor()
		prefix := append([]byte(name), 0)
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if bytes.HasPrefix(v, prefix) {
				var err error
				rev, err = unmarshalRevision(int(unmarshalSeq(k)), v)
				return err
			}
		}
		return ErrNoMatchingRevision
	})
	return rev, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// A revision is stored as the name, a NUL byte, and the text.
func marshalRevision(name, text string) []byte {
	v := make([]byte, 0, len(name)+1+len(text))
	v = append(v, name...)
	v = append(v, 0)
	return append(v, text...)
}

func unmarshalRevision(seq int, v []byte) (Revision, error) {
	i := bytes.IndexByte(v, 0)
	if i == -1 {
		return Revision{}, errBadRevision
	}
	return Revision{Name: string(v[:i]), Text: string(v[i+1:]), Seq: seq}, nil
}
