// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the frame header of a zstd stream. Files starting with it are
// decompressed on load regardless of the Compress option, so toggling the
// option never strands existing data.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// FileOptions configures a FileStore.
type FileOptions struct {
	// Path is the file holding the namespace. Parent directories are created.
	Path string
	// Compress writes the file zstd-compressed.
	Compress bool
}

// FileStore is a Store persisted as a single JSON object on disk. Every
// mutation rewrites the whole file through a temp file and rename, so a
// crash leaves either the old or the new contents.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	compress bool
	values   map[string]string
	closed   bool
}

// OpenFileStore loads the namespace at opts.Path, starting empty when the
// file does not exist yet.
func OpenFileStore(opts FileOptions) (*FileStore, error) {
	if opts.Path == "" {
		return nil, errors.New("kv: file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o750); err != nil {
		return nil, fmt.Errorf("kv: create dir: %w", err)
	}
	s := &FileStore{path: opts.Path, compress: opts.Compress, values: make(map[string]string)}
	data, err := os.ReadFile(opts.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("kv: read %s: %w", opts.Path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("kv: create zstd reader: %w", err)
		}
		data, err = dec.DecodeAll(data, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("kv: decompress %s: %w", opts.Path, err)
		}
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("kv: decode %s: %w", opts.Path, err)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store. The value is visible to readers only once the file
// has been written.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flushLocked(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Remove implements Store.
func (s *FileStore) Remove(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	removed := make(map[string]string)
	for _, k := range keys {
		if v, ok := s.values[k]; ok {
			removed[k] = v
			delete(s.values, k)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := s.flushLocked(); err != nil {
		for k, v := range removed {
			s.values[k] = v
		}
		return err
	}
	return nil
}

// Keys implements Store.
func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return sortedKeys(s.values), nil
}

// Close implements Store. Data is already durable; Close only marks the
// store unusable.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *FileStore) flushLocked() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("kv: encode: %w", err)
	}
	if s.compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("kv: create zstd writer: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		_ = enc.Close()
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("kv: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("kv: replace %s: %w", s.path, err)
	}
	return nil
}
