package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrOverflow       = errors.New("money amount overflows")
)

// Money is a non-negative amount held in integer cents.
type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MustMoney is for constants and tests.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse reads a decimal amount such as "80", "80.5" or "80.00".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return Money{}, ErrInvalidAmount
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || f < 0 {
		return Money{}, ErrInvalidAmount
	}
	if w > (math.MaxInt64-f)/100 {
		return Money{}, ErrOverflow
	}
	return Money{cents: w*100 + f}, nil
}

// digitsOnly rejects the signs strconv would otherwise accept.
func digitsOnly(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, ErrOverflow
	}
	return Money{cents: m.cents + other.cents}, nil
}

func (m Money) Multiply(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.cents > math.MaxInt64/n {
		return Money{}, ErrOverflow
	}
	return Money{cents: m.cents * n}, nil
}

// String renders two decimal places, e.g. "264.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
