// Package localstore is the persistent record store: a collection of named
// logical tables, each held as one JSON document. It is the single source of
// truth for every service; typed repositories in this package gate all access.
package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/swipehome/api/internal/domain"
)

// Blob is the minimal contract for table-blob storage. An absent table is not
// an error: Get reports it through the boolean.
type Blob interface {
	Get(ctx context.Context, table string) ([]byte, bool, error)
	Put(ctx context.Context, table string, data []byte) error
	Delete(ctx context.Context, table string) error
}

// FileStore persists each table as <dir>/<table>.json. Writes go through a
// temp file and rename, so a table is either fully replaced or untouched.
// A per-table mutex serializes concurrent callers on the same table.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *FileStore) lock(table string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[table]
	if !ok {
		l = &sync.Mutex{}
		s.locks[table] = l
	}
	return l
}

func (s *FileStore) path(table string) string {
	return filepath.Join(s.dir, table+".json")
}

func (s *FileStore) Get(ctx context.Context, table string) ([]byte, bool, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, false, err
	}
	l := s.lock(table)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(table))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read table %s: %w", table, err)
	}
	return data, true, nil
}

func (s *FileStore) Put(ctx context.Context, table string, data []byte) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	l := s.lock(table)
	l.Lock()
	defer l.Unlock()

	tmp, err := os.CreateTemp(s.dir, table+".*.tmp")
	if err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := os.Rename(tmp.Name(), s.path(table)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, table string) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	l := s.lock(table)
	l.Lock()
	defer l.Unlock()

	if err := os.Remove(s.path(table)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete table %s: %w", table, err)
	}
	return nil
}

// ctxErr turns context cancellation into the bounded-wait failure the spec
// requires instead of letting callers block on storage indefinitely.
func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store access aborted: %w", domain.ErrUnavailable)
	}
	return nil
}
