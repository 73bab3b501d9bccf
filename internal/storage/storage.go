// Package storage keeps attachment bytes on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "condo-maintenance-backend/internal/errors"

	"github.com/google/uuid"
)

// Bucket stores blobs under opaque keys
type Bucket interface {
	Put(key string, r io.Reader, maxBytes int64) (int64, error)
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
}

// LocalBucket is a Bucket rooted at a directory
type LocalBucket struct {
	root string
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// NewLocalBucket creates the root directory when missing
func NewLocalBucket(root string) (*LocalBucket, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalBucket{root: root}, nil
}

// ObjectKey builds condominium/entity/id-name with a sanitized file name
func ObjectKey(condominiumID uuid.UUID, entityType string, id uuid.UUID, fileName string) string {
	name := unsafeChars.ReplaceAllString(filepath.Base(fileName), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "arquivo"
	}
	return condominiumID.String() + "/" + entityType + "/" + id.String() + "-" + name
}

func (b *LocalBucket) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(b.root, filepath.FromSlash(clean)), nil
}

// Put writes at most maxBytes; larger inputs fail with ErrFileTooLarge and leave nothing behind
func (b *LocalBucket) Put(key string, r io.Reader, maxBytes int64) (int64, error) {
	p, err := b.path(key)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(r, maxBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, err
	}
	if n > maxBytes {
		return 0, apperrors.ErrFileTooLarge
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return 0, err
	}
	return n, nil
}

func (b *LocalBucket) Open(key string) (io.ReadCloser, error) {
	p, err := b.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.ErrAttachmentNotFound
	}
	return f, err
}

// Delete is idempotent
func (b *LocalBucket) Delete(key string) error {
	p, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
