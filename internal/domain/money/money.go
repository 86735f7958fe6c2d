// Package money holds the single-currency (CAD) amount type used by pricing and billing.
//
// Amounts keep full decimal precision through arithmetic. Rounding to cents happens
// only where a value leaves the engine (Round, Format, JSON).
package money

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

// maxExponent bounds the decimal exponent a parsed value may carry. Rounding a value
// like 1e400000000 would materialize the full integer.
const maxExponent = 20

// MaxAmount is the largest magnitude accepted from input, for prices and quantities alike.
var MaxAmount = decimal.New(1, 12)

var (
	ErrUnparsable = errors.New("amount is not a valid currency value")
	ErrOutOfRange = errors.New("amount is out of range")
)

// Money is an exact decimal amount. The zero value is $0.00.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{}

func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

func FromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

// FromString parses a plain decimal literal such as "175" or "24.70".
func FromString(s string) (Money, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Zero, err
	}
	return Money{amount: d}, nil
}

// ParseDecimal reads a plain decimal literal, refusing exponents beyond ±maxExponent
// and magnitudes above MaxAmount.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrUnparsable
	}
	// Exponent first: comparing against MaxAmount rescales.
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, ErrOutOfRange
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, ErrOutOfRange
	}
	return d, nil
}

// MustFromString is FromString for literals known to be valid (catalog tables, tests).
func MustFromString(s string) Money {
	return Money{amount: decimal.RequireFromString(s)}
}

func Add(a, b Money) Money {
	return Money{amount: a.amount.Add(b.amount)}
}

func Sum(items ...Money) Money {
	total := decimal.Zero
	for _, m := range items {
		total = total.Add(m.amount)
	}
	return Money{amount: total}
}

func Multiply(m Money, factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Round rounds half-up to cents. For the non-negative amounts the engine deals in,
// decimal's half-away-from-zero is the same rule.
func Round(m Money) Money {
	return Money{amount: m.amount.Round(Places)}
}

// Format renders m as "$1,234.50".
func Format(m Money) string {
	fixed := m.amount.Round(Places).StringFixed(Places)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Parse reads a displayed amount back into Money. It accepts currency markers
// ("$", "CA$", "CAD"), thousands separators and surrounding whitespace.
func Parse(display string) (Money, error) {
	s := strings.TrimSpace(display)
	s = strings.ReplaceAll(s, "CAD", "")
	s = strings.ReplaceAll(s, "CA$", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return Zero, ErrUnparsable
	}
	d, err := ParseDecimal(s)
	if err != nil {
		return Zero, err
	}
	return Money{amount: d}, nil
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) IsZero() bool { return m.amount.IsZero() }

func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) Equal(o Money) bool { return m.amount.Equal(o.amount) }

func (m Money) Cmp(o Money) int { return m.amount.Cmp(o.amount) }

// String is the canonical 2dp amount without currency markers ("214.70").
func (m Money) String() string {
	return m.amount.Round(Places).StringFixed(Places)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a JSON number, a plain decimal string or a displayed amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Zero
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
