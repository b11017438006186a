// SPDX-License-Identifier: MIT

// Package staff holds the employee domain model and the service layer that
// operates on it. The service owns business rules only; persistence is
// delegated to a storage.Store and transport concerns live in internal/api.
package staff

import (
	"time"
)

// Employee is the core domain record. It carries data only; payroll
// arithmetic and report rendering live in separate types so that each has a
// single reason to change.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	Salary    float64   `json:"salary"` // gross monthly salary
	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Tenure returns the employment duration as of now.
func (e Employee) Tenure(now time.Time) time.Duration {
	if now.Before(e.HiredAt) {
		return 0
	}
	return now.Sub(e.HiredAt)
}

// Payroll is the computed yearly pay statement for a single employee.
type Payroll struct {
	EmployeeID   string  `json:"employee_id"`
	MonthlyPay   float64 `json:"monthly_pay"`
	AnnualPay    float64 `json:"annual_pay"`
	Bonus        float64 `json:"bonus"`
	TotalPay     float64 `json:"total_pay"`
	TenureMonths int     `json:"tenure_months"`
}
