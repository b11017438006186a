// SPDX-License-Identifier: MIT

package staff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AhmedFarag1/go-clean-code/internal/log"
	"github.com/AhmedFarag1/go-clean-code/internal/validation"
)

const (
	// MonthsPerYear converts a monthly salary into annual pay.
	MonthsPerYear = 12
	// bonusRate is applied to annual pay once an employee has served a full year.
	bonusRate = 0.10
	// bonusTenure is the minimum tenure before the yearly bonus applies.
	bonusTenure = 365 * 24 * time.Hour
)

// Store is the persistence dependency of the service. It is satisfied by
// every backend in internal/storage; the service never knows which one.
type Store interface {
	Put(ctx context.Context, employee Employee) error
	Get(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}

// Clock abstracts time.Now so payroll and validation are deterministic in tests.
type Clock func() time.Time

// Service implements the employee business operations.
type Service struct {
	store  Store
	clock  Clock
	logger zerolog.Logger
}

// NewService constructs a Service around the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		clock:  time.Now,
		logger: log.WithComponent("staff"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option customises Service construction.
type Option func(*Service)

// WithClock overrides the service clock.
func WithClock(clock Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithLogger overrides the service logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// CreateRequest carries the fields needed to register an employee.
type CreateRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Position string    `json:"position"`
	Salary   float64   `json:"salary"`
	HiredAt  time.Time `json:"hired_at"`
}

// Create validates the request, assigns an ID and persists the record.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Employee, error) {
	now := s.clock()
	err := validation.Employee(validation.EmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
		Salary:   req.Salary,
		HiredAt:  req.HiredAt,
	}, now)
	if err != nil {
		return Employee{}, err
	}

	employee := Employee{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Position:  strings.TrimSpace(req.Position),
		Salary:    req.Salary,
		HiredAt:   req.HiredAt,
		CreatedAt: now,
	}
	if err := s.store.Put(ctx, employee); err != nil {
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}

	logger := log.WithContext(ctx, s.logger)
	logger.Info().
		Str(log.FieldEvent, "employee.created").
		Str(log.FieldEmployeeID, employee.ID).
		Str("position", employee.Position).
		Msg("employee created")
	return employee, nil
}

// Get returns a single employee by ID.
func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.store.Get(ctx, id)
}

// List returns all employees sorted by ID.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

// Delete removes an employee by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger := log.WithContext(ctx, s.logger)
	logger.Info().
		Str(log.FieldEvent, "employee.deleted").
		Str(log.FieldEmployeeID, id).
		Msg("employee deleted")
	return nil
}

// Payroll computes the yearly pay statement for an employee. Annual pay is
// twelve monthly salaries; the bonus applies only after a full year of tenure.
func (s *Service) Payroll(ctx context.Context, id string) (Payroll, error) {
	employee, err := s.store.Get(ctx, id)
	if err != nil {
		return Payroll{}, err
	}

	now := s.clock()
	annual := employee.Salary * MonthsPerYear
	var bonus float64
	if employee.Tenure(now) >= bonusTenure {
		bonus = annual * bonusRate
	}

	return Payroll{
		EmployeeID:   employee.ID,
		MonthlyPay:   employee.Salary,
		AnnualPay:    annual,
		Bonus:        bonus,
		TotalPay:     annual + bonus,
		TenureMonths: tenureMonths(employee.HiredAt, now),
	}, nil
}

func tenureMonths(hiredAt, now time.Time) int {
	if now.Before(hiredAt) {
		return 0
	}
	months := (now.Year()-hiredAt.Year())*12 + int(now.Month()) - int(hiredAt.Month())
	if now.Day() < hiredAt.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
