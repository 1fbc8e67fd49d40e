package store

import (
	"errors"

	"evalsnap/internal/platform/logger"
	"evalsnap/internal/platform/store/duck"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by the engine tracer
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithTracer receives every engine statement regardless of LogSQL
func WithTracer(t duck.QueryTracer) Option {
	return func(s *Store) error {
		if t == nil {
			return errors.New("store: nil tracer")
		}
		s.tracer = t
		return nil
	}
}
