// SPDX-License-Identifier: MIT

// Package health provides liveness and readiness checks for the service.
// Liveness always reports the process alive; readiness aggregates the
// registered component checkers.
package health

import (
	"context"
	"time"
)

// Status represents the overall health/readiness status.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the result of a component health check.
type CheckResult struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Checker defines the interface for component health checks.
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// Response is the payload served on the health and readiness endpoints.
type Response struct {
	Status    Status                 `json:"status"`
	Ready     bool                   `json:"ready"`
	Version   string                 `json:"version,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// Manager aggregates component checkers.
type Manager struct {
	version  string
	checkers []Checker
}

// NewManager creates a health check manager.
func NewManager(version string) *Manager {
	return &Manager{version: version}
}

// Register adds a checker to the manager.
func (m *Manager) Register(checker Checker) {
	m.checkers = append(m.checkers, checker)
}

// Health performs the liveness check. The process being able to answer is the
// check; component state never fails liveness.
func (m *Manager) Health(ctx context.Context) Response {
	return Response{
		Status:    StatusHealthy,
		Ready:     true,
		Version:   m.version,
		Timestamp: time.Now(),
	}
}

// Ready runs every registered checker and aggregates the results. Any
// unhealthy component makes the service not ready.
func (m *Manager) Ready(ctx context.Context) Response {
	resp := Response{
		Status:    StatusHealthy,
		Ready:     true,
		Version:   m.version,
		Timestamp: time.Now(),
	}
	if len(m.checkers) == 0 {
		return resp
	}

	resp.Checks = make(map[string]CheckResult, len(m.checkers))
	hasDegraded := false
	for _, checker := range m.checkers {
		result := checker.Check(ctx)
		resp.Checks[checker.Name()] = result
		switch result.Status {
		case StatusUnhealthy:
			resp.Ready = false
			resp.Status = StatusUnhealthy
		case StatusDegraded:
			hasDegraded = true
		}
	}
	if resp.Status == StatusHealthy && hasDegraded {
		resp.Status = StatusDegraded
	}
	return resp
}

// StoreChecker verifies the storage backend answers a ping within the timeout.
type StoreChecker struct {
	name    string
	timeout time.Duration
	ping    func(ctx context.Context) error
}

// NewStoreChecker creates a checker for a storage backend.
func NewStoreChecker(name string, ping func(ctx context.Context) error) *StoreChecker {
	return &StoreChecker{
		name:    name,
		timeout: 2 * time.Second,
		ping:    ping,
	}
}

func (c *StoreChecker) Name() string { return c.name }

func (c *StoreChecker) Check(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.ping(ctx); err != nil {
		return CheckResult{
			Status: StatusUnhealthy,
			Error:  err.Error(),
		}
	}
	return CheckResult{
		Status:  StatusHealthy,
		Message: "storage reachable",
	}
}
