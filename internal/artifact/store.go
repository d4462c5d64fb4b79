package artifact

import (
	"context"
	"errors"
)

// Store persists a finished report under a name.
type Store interface {
	Put(ctx context.Context, name string, content []byte) error
}

var ErrNotFound = errors.New("artifact not found")

// Tee writes to every store in order and stops at the first failure.
type Tee []Store

func (t Tee) Put(ctx context.Context, name string, content []byte) error {
	for _, s := range t {
		if s == nil {
			continue
		}
		if err := s.Put(ctx, name, content); err != nil {
			return err
		}
	}
	return nil
}
