package store

import (
	bolt "go.etcd.io/bbolt"

	. "src.tvk.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize scene table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketScene))
		return err
	}
}

// Scene gets the source of a named scene.
func (s *dbStore) Scene(name string) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketScene))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoScene
		}
		text = string(v)
		return nil
	})
	return text, err
}

// SetScene sets the source of a named scene.
func (s *dbStore) SetScene(name, text string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketScene))
		return b.Put([]byte(name), []byte(text))
	})
}

// DelScene deletes a named scene.
func (s *dbStore) DelScene(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketScene))
		return b.Delete([]byte(name))
	})
}

// SceneNames returns the names of all scenes, in lexicographical order.
func (s *dbStore) SceneNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketScene))
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
