package money

import (
	"math"
	"testing"
)

type line struct {
	price    float64
	quantity int
}

func (l line) UnitPrice() float64 { return l.price }
func (l line) Units() int         { return l.quantity }

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "$0.00"},
		{amount: 10, want: "$10.00"},
		{amount: 99.99, want: "$99.99"},
		{amount: 1234.56, want: "$1,234.56"},
		{amount: 9.5, want: "$9.50"},
		{amount: 0.99, want: "$0.99"},
		{amount: 999999.99, want: "$999,999.99"},
		{amount: 1000000, want: "$1,000,000.00"},
		{amount: 19.999, want: "$20.00"},
		{amount: 0.125, want: "$0.13"},
		{amount: 2.675, want: "$2.68"},
		{amount: 1.005, want: "$1.01"},
		{amount: 2.674999, want: "$2.67"},
		{amount: -10, want: "-$10.00"},
		{amount: -99.99, want: "-$99.99"},
		{amount: -0.001, want: "$0.00"},
	}
	for _, tc := range tests {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   float64
	}{
		{amount: 3.98, want: 3.98},
		{amount: 2.675, want: 2.68},
		{amount: 1.005, want: 1.01},
		{amount: -1.005, want: -1.01},
		{amount: 0.004, want: 0},
		{amount: 19.995, want: 20},
		{amount: 1e20 + 0.5, want: 1e20 + 0.5},
	}
	for _, tc := range tests {
		if got := Round(tc.amount); got != tc.want {
			t.Fatalf("Round(%v) = %v, want %v", tc.amount, got, tc.want)
		}
	}
	if got := Round(math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("Round(+Inf) = %v", got)
	}
}

func TestCalculateTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []line
		want  float64
	}{
		{name: "single item", lines: []line{{price: 10, quantity: 2}}, want: 20},
		{name: "multiple items", lines: []line{{price: 10, quantity: 2}, {price: 15, quantity: 3}, {price: 20, quantity: 1}}, want: 85},
		{name: "empty", lines: nil, want: 0},
		{name: "zero price", lines: []line{{price: 0, quantity: 5}, {price: 10, quantity: 1}}, want: 10},
		{name: "large quantity", lines: []line{{price: 1, quantity: 1000}}, want: 1000},
		{name: "decimals", lines: []line{{price: 9.99, quantity: 2}, {price: 5.50, quantity: 3}}, want: 36.48},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CalculateTotal(tc.lines); math.Abs(got-tc.want) > 0.005 {
				t.Fatalf("CalculateTotal() = %v, want %v", got, tc.want)
			}
		})
	}
}
