// Package sale holds the storewide sale percentage set from the admin page.
package sale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrNotANumber is returned by ParsePercent for input that is not a finite
// number.
var ErrNotANumber = errors.New("not a number")

// State is the sale panel state.
type State int

const (
	// StateNoSale means the percent is zero or negative.
	StateNoSale State = iota
	// StateActive means the percent is positive.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "sale_active"
	}
	return "no_sale"
}

// Snapshot is a consistent read of the panel.
type Snapshot struct {
	State   State
	Percent float64
	Input   string
	Error   string
	Message string
}

// Panel is the process-wide sale setting.
type Panel struct {
	mu      sync.Mutex
	percent float64
	input   string
	err     string
}

// NewPanel returns a panel with no sale and an input of "0".
func NewPanel() *Panel {
	return &Panel{input: "0"}
}

// Submit applies raw as the new percent. Input that is not a number leaves
// the percent unchanged and records an error echoing raw.
func (p *Panel) Submit(raw string) error {
	value, parseErr := ParsePercent(raw)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = raw
	if parseErr != nil {
		p.err = InvalidInputMessage(raw)
		return parseErr
	}
	p.percent = value
	p.err = ""
	return nil
}

// End stops the sale and resets the input to "0".
func (p *Panel) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.percent = 0
	p.input = "0"
	p.err = ""
}

// Snapshot returns the current panel values.
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		State:   stateFor(p.percent),
		Percent: p.percent,
		Input:   p.input,
		Error:   p.err,
		Message: Message(p.percent),
	}
}

// Message is the banner text for percent.
func (p *Panel) Message() string {
	return p.Snapshot().Message
}

// Active reports whether a sale is running.
func (p *Panel) Active() bool {
	return p.Snapshot().State == StateActive
}

// Message renders the banner text for percent.
func Message(percent float64) string {
	if stateFor(percent) != StateActive {
		return "No sale active."
	}
	return fmt.Sprintf("All products are %s%% off!", formatPercent(percent))
}

// formatPercent prints the shortest form of v, switching to exponent
// notation ("1e+21", "1.5e-7") outside [1e-6, 1e21) like browser number
// formatting does.
func formatPercent(v float64) string {
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// InvalidInputMessage is the error shown for rejected input.
func InvalidInputMessage(raw string) string {
	return "Invalid input\n\"" + raw + "\"\nPlease enter a valid number."
}

func stateFor(percent float64) State {
	if percent > 0 {
		return StateActive
	}
	return StateNoSale
}

// ParsePercent reads raw the way a browser number coercion would:
// surrounding whitespace is ignored, blank input is zero, decimal and
// exponent forms and unsigned 0x/0o/0b integers are accepted. Anything
// that is not a finite number is rejected, including "Infinity" and values
// such as "1e400" that overflow to it.
func ParsePercent(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	if strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
			}
			return float64(n), nil
		}
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "p") {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return value, nil
}
