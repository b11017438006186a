// SPDX-License-Identifier: MIT

package srp_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedFarag1/go-clean-code/solid/srp"
)

func TestEmployee_AnnualPay(t *testing.T) {
	e := srp.Employee{Name: "Ada", Salary: 5000}
	assert.Equal(t, 60000.0, e.AnnualPay())
}

func TestPayslipRenderer(t *testing.T) {
	r := srp.PayslipRenderer{Currency: "EUR"}
	got := r.Render(srp.Employee{Name: "Ada", Salary: 5000})
	assert.Equal(t, "Ada: 5000.00 EUR/month (60000.00 EUR/year)", got)
}

func TestPayslipRenderer_DefaultCurrency(t *testing.T) {
	got := srp.PayslipRenderer{}.Render(srp.Employee{Name: "Ada", Salary: 1})
	assert.Contains(t, got, "USD")
}

func TestReportWriter(t *testing.T) {
	var buf bytes.Buffer
	w := srp.ReportWriter{Out: &buf, Renderer: srp.PayslipRenderer{Currency: "EUR"}}

	employees := []srp.Employee{
		{Name: "Ada", Salary: 5000},
		{Name: "Grace", Salary: 9000},
	}
	require.NoError(t, w.Write(employees))

	assert.Equal(t,
		"Ada: 5000.00 EUR/month (60000.00 EUR/year)\n"+
			"Grace: 9000.00 EUR/month (108000.00 EUR/year)\n",
		buf.String())
}

func ExampleEmployee_AnnualPay() {
	e := srp.Employee{Name: "Ada", Salary: 5000}
	fmt.Println(e.AnnualPay())
	// Output: 60000
}

func ExampleReportWriter_Write() {
	w := srp.ReportWriter{Out: os.Stdout, Renderer: srp.PayslipRenderer{Currency: "EUR"}}
	_ = w.Write([]srp.Employee{{Name: "Ada", Salary: 5000}})
	// Output: Ada: 5000.00 EUR/month (60000.00 EUR/year)
}
