// Package store persists keyed flags values in a bolt database.
package store

import (
	"os"
	"time"

	"bitflag"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrReadOnly = errors.New("store opened read-only")
	ErrEmptyKey = errors.New("empty key")
)

// Options represents the options that can be set when opening a store.
type Options struct {
	// Timeout is the amount of time to wait to obtain a file lock.
	// When set to zero it will wait indefinitely.
	Timeout time.Duration

	// Open the store in read-only mode. The file lock is shared and Put and
	// Delete return ErrReadOnly.
	ReadOnly bool

	// Encoding of new records. Text records keep flag names, so they
	// survive renumbering of the flag bits; binary records are smaller.
	Encoding Encoding

	// Compression of new records. Existing records are decoded whatever
	// algorithm they were written with.
	Compression CompressAlgorithm
}

var DefaultOptions = &Options{
	Timeout:     0,
	Encoding:    EncodingBinary,
	Compression: CompSnappy,
}

// Store holds the flags values of one kind, in the bucket named after the
// kind's descriptor.
type Store[B bitflag.Bits, K bitflag.Kind[B]] struct {
	db       *bolt.DB
	path     string
	bucket   []byte
	readOnly bool

	encoding    Encoding
	compression CompressAlgorithm
}

func Open[B bitflag.Bits, K bitflag.Kind[B]](path string, mode os.FileMode, options *Options) (*Store[B, K], error) {
	// Set default options if no options are provided.
	if options == nil {
		options = DefaultOptions
	}
	if _, _, err := options.Compression.codec(); err != nil {
		return nil, err
	}

	name := bitflag.DescriptorOf[B, K]().Name()
	if name == "" {
		return nil, errors.New("descriptor has no name to use as bucket")
	}

	// bolt creates a missing file even when read-only, then fails holding its lock
	if options.ReadOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
	}

	db, err := bolt.Open(path, mode, &bolt.Options{
		Timeout:  options.Timeout,
		ReadOnly: options.ReadOnly,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	s := &Store[B, K]{
		db:          db,
		path:        path,
		bucket:      []byte(name),
		readOnly:    options.ReadOnly,
		encoding:    options.Encoding,
		compression: options.Compression,
	}

	if !s.readOnly {
		err = db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(s.bucket)
			return err
		})
		if err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to create bucket %s", name)
		}
	}

	log.WithFields(log.Fields{
		"path":        path,
		"bucket":      name,
		"readOnly":    s.readOnly,
		"encoding":    s.encoding,
		"compression": s.compression,
	}).Debug("store opened")
	return s, nil
}

func (s *Store[B, K]) Path() string { return s.path }

func (s *Store[B, K]) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "store close")
	}
	return nil
}

func (s *Store[B, K]) Put(key string, f bitflag.Flags[B, K]) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if key == "" {
		return ErrEmptyKey
	}
	record, err := marshalRecord(f, s.encoding, s.compression)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %q", key)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), record)
	})
}

// Get returns the value stored under key. ok is false if there is none.
func (s *Store[B, K]) Get(key string) (f bitflag.Flags[B, K], ok bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return nil
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		ok = true
		f, err = unmarshalRecord[B, K](data)
		return errors.Wrapf(err, "failed to decode %q", key)
	})
	return f, ok, err
}

func (s *Store[B, K]) Delete(key string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// ForEach calls fn for every stored value in key order. Records that fail
// to decode are logged and skipped. An error from fn stops the iteration.
func (s *Store[B, K]) ForEach(fn func(key string, f bitflag.Flags[B, K]) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(s.bucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			f, err := unmarshalRecord[B, K](v)
			if err != nil {
				log.WithFields(log.Fields{
					"bucket": string(s.bucket),
					"key":    string(k),
				}).WithError(err).Warn("skipping undecodable record")
				return nil
			}
			return fn(string(k), f)
		})
	})
}
