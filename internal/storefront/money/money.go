// Package money formats and sums storefront prices.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Round rounds amount to whole cents, halves away from zero. Rounding is
// applied to the nominal decimal value, the shortest decimal that reads
// back as amount, so 2.675 rounds to 2.68 and 1.005 to 1.01 even though
// their binary values sit just below the half.
func Round(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	whole, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(amount), 'f', -1, 64), ".")
	if len(frac) <= 2 {
		return amount
	}
	cents, err := strconv.ParseFloat(whole+frac[:2], 64)
	if err != nil {
		return math.Round(amount*100) / 100
	}
	if frac[2] >= '5' {
		cents++
	}
	return math.Copysign(cents/100, amount)
}

// FormatPrice renders amount as US dollars with two decimals and digit
// grouping: 1234.56 -> "$1,234.56", -10 -> "-$10.00".
func FormatPrice(amount float64) string {
	rounded := Round(amount)
	if rounded == 0 {
		rounded = 0
	}
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	p := message.NewPrinter(language.AmericanEnglish)
	return sign + "$" + p.Sprint(number.Decimal(rounded, number.Scale(2)))
}

// Line is one priced quantity.
type Line interface {
	UnitPrice() float64
	Units() int
}

// CalculateTotal sums price times quantity over lines.
func CalculateTotal[L Line](lines []L) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.UnitPrice() * float64(line.Units())
	}
	return total
}
