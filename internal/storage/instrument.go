// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedFarag1/go-clean-code/internal/metrics"
	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// InstrumentedStore wraps another Store and records a Prometheus observation
// per operation. ErrNotFound counts as a successful lookup, not a failure.
type InstrumentedStore struct {
	next    Store
	backend string
}

// Instrument wraps next with per-operation metrics labelled by backend name.
func Instrument(next Store, backend string) *InstrumentedStore {
	return &InstrumentedStore{next: next, backend: backend}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.ObserveStorageOp(s.backend, op, err, time.Since(start))
}

func (s *InstrumentedStore) Put(ctx context.Context, employee staff.Employee) error {
	start := time.Now()
	err := s.next.Put(ctx, employee)
	s.observe("put", start, err)
	return err
}

func (s *InstrumentedStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	start := time.Now()
	e, err := s.next.Get(ctx, id)
	s.observe("get", start, err)
	return e, err
}

func (s *InstrumentedStore) List(ctx context.Context) ([]staff.Employee, error) {
	start := time.Now()
	out, err := s.next.List(ctx)
	s.observe("list", start, err)
	return out, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}
