// Package index persists extracted module interfaces in a bbolt database so
// templates can be looked up by module name without re-reading sources.
//
// Bucket "modules" maps a module name to its JSON record. Bucket "files" maps
// a source path to the JSON list of module names it declared, which lets a
// re-indexed file drop modules it no longer declares.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/OpenTraceLab/vinst/pkg/verilog"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketModules = []byte("modules")
	bucketFiles   = []byte("files")
)

// ErrNotFound is returned by Get for a module that is not indexed.
var ErrNotFound = errors.New("index: module not found")

// Record is a stored module together with the file that declared it.
type Record struct {
	File   string          `json:"file"`
	Module *verilog.Module `json:"module"`
}

// Store is a module index backed by bbolt.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the index database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("index: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketModules, bucketFiles} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("index: init buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutFile replaces everything indexed from file with modules. A module name
// declared by another file is overwritten.
func (s *Store) PutFile(file string, modules []*verilog.Module) error {
	names := make([]string, 0, len(modules))
	records := make(map[string][]byte, len(modules))
	for _, m := range modules {
		data, err := json.Marshal(Record{File: file, Module: m})
		if err != nil {
			return fmt.Errorf("index: marshal %s: %w", m.Name, err)
		}
		names = append(names, m.Name)
		records[m.Name] = data
	}
	namesJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("index: marshal names: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := removeFile(tx, file); err != nil {
			return err
		}
		mb := tx.Bucket(bucketModules)
		for name, data := range records {
			if err := mb.Put([]byte(name), data); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketFiles).Put([]byte(file), namesJSON)
	})
}

// RemoveFile drops the modules indexed from file.
func (s *Store) RemoveFile(file string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return removeFile(tx, file)
	})
}

// removeFile deletes the file entry and those of its modules still owned by it.
func removeFile(tx *bolt.Tx, file string) error {
	fb := tx.Bucket(bucketFiles)
	v := fb.Get([]byte(file))
	if v == nil {
		return nil
	}
	var names []string
	if err := json.Unmarshal(v, &names); err != nil {
		return fmt.Errorf("index: corrupt file entry %s: %w", file, err)
	}
	mb := tx.Bucket(bucketModules)
	for _, name := range names {
		rec, err := decode(mb.Get([]byte(name)))
		if err != nil {
			return err
		}
		if rec != nil && rec.File == file {
			if err := mb.Delete([]byte(name)); err != nil {
				return err
			}
		}
	}
	return fb.Delete([]byte(file))
}

// Get returns the record of the named module.
func (s *Store) Get(name string) (*Record, error) {
	var rec *Record
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		rec, err = decode(tx.Bucket(bucketModules).Get([]byte(name)))
		return err
	})
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec, nil
}

// List returns all records sorted by module name.
func (s *Store) List() ([]*Record, error) {
	var out []*Record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketModules).ForEach(func(_, v []byte) error {
			rec, err := decode(v)
			if err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Module.Name < out[j].Module.Name
	})
	return out, nil
}

// decode unmarshals a stored record. The value is only valid inside the
// transaction, so it is fully decoded before returning.
func decode(v []byte) (*Record, error) {
	if v == nil {
		return nil, nil
	}
	var rec Record
	if err := json.Unmarshal(v, &rec); err != nil {
		return nil, fmt.Errorf("index: corrupt record: %w", err)
	}
	return &rec, nil
}
