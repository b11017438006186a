// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name   string
	result CheckResult
}

func (c stubChecker) Name() string                        { return c.name }
func (c stubChecker) Check(_ context.Context) CheckResult { return c.result }

func TestHealth_AlwaysAlive(t *testing.T) {
	m := NewManager("v1")
	m.Register(stubChecker{name: "broken", result: CheckResult{Status: StatusUnhealthy}})

	resp := m.Health(context.Background())
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.True(t, resp.Ready)
	assert.Equal(t, "v1", resp.Version)
}

func TestReady_NoCheckers(t *testing.T) {
	resp := NewManager("v1").Ready(context.Background())
	assert.True(t, resp.Ready)
	assert.Equal(t, StatusHealthy, resp.Status)
}

func TestReady_Aggregation(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []Checker
		wantReady  bool
		wantStatus Status
	}{
		{
			name: "all healthy",
			checkers: []Checker{
				stubChecker{name: "a", result: CheckResult{Status: StatusHealthy}},
				stubChecker{name: "b", result: CheckResult{Status: StatusHealthy}},
			},
			wantReady:  true,
			wantStatus: StatusHealthy,
		},
		{
			name: "degraded component degrades but stays ready",
			checkers: []Checker{
				stubChecker{name: "a", result: CheckResult{Status: StatusHealthy}},
				stubChecker{name: "b", result: CheckResult{Status: StatusDegraded}},
			},
			wantReady:  true,
			wantStatus: StatusDegraded,
		},
		{
			name: "unhealthy component blocks readiness",
			checkers: []Checker{
				stubChecker{name: "a", result: CheckResult{Status: StatusDegraded}},
				stubChecker{name: "b", result: CheckResult{Status: StatusUnhealthy}},
			},
			wantReady:  false,
			wantStatus: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager("v1")
			for _, c := range tt.checkers {
				m.Register(c)
			}
			resp := m.Ready(context.Background())
			assert.Equal(t, tt.wantReady, resp.Ready)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Len(t, resp.Checks, len(tt.checkers))
		})
	}
}

func TestStoreChecker(t *testing.T) {
	ok := NewStoreChecker("storage", func(_ context.Context) error { return nil })
	result := ok.Check(context.Background())
	require.Equal(t, StatusHealthy, result.Status)

	down := NewStoreChecker("storage", func(_ context.Context) error {
		return errors.New("connection refused")
	})
	result = down.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, result.Status)
	assert.Contains(t, result.Error, "connection refused")
}
