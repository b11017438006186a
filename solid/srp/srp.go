// SPDX-License-Identifier: MIT

// Package srp demonstrates the single-responsibility principle.
//
// Employee is pure data. Turning that data into a payslip and persisting a
// report are different jobs that change for different reasons, so each lives
// in its own type. A change to the payslip layout never touches the code
// that writes reports, and vice versa.
package srp

import (
	"fmt"
	"io"
)

// monthsPerYear converts a monthly salary into annual pay.
const monthsPerYear = 12

// Employee carries employee data and nothing else.
type Employee struct {
	Name   string
	Salary float64 // gross monthly salary
}

// AnnualPay is the one derived value the record itself owns.
func (e Employee) AnnualPay() float64 {
	return e.Salary * monthsPerYear
}

// PayslipRenderer formats payslips. Presentation is its single responsibility.
type PayslipRenderer struct {
	Currency string
}

// Render returns the payslip line for one employee.
func (r PayslipRenderer) Render(e Employee) string {
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%s: %.2f %s/month (%.2f %s/year)",
		e.Name, e.Salary, currency, e.AnnualPay(), currency)
}

// ReportWriter persists rendered payslips. I/O is its single responsibility.
type ReportWriter struct {
	Out      io.Writer
	Renderer PayslipRenderer
}

// Write renders each employee and writes one line per record.
func (w ReportWriter) Write(employees []Employee) error {
	for _, e := range employees {
		if _, err := fmt.Fprintln(w.Out, w.Renderer.Render(e)); err != nil {
			return fmt.Errorf("write payslip for %s: %w", e.Name, err)
		}
	}
	return nil
}
