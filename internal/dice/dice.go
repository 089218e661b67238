package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression is returned when a dice string cannot be parsed
var ErrInvalidExpression = errors.New("invalid dice string")

// Expression is a parsed dice string such as "2d6+1" or a flat "1"
type Expression struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus"`
}

// Parse parses dice notation: "XdY", "XdY+Z", "XdY-Z" or a flat integer
func Parse(diceString string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(diceString))
	if s == "" {
		return Expression{}, ErrInvalidExpression
	}

	dice := s
	bonus := 0
	if i := strings.LastIndexAny(s, "+-"); i > 0 {
		b, err := strconv.Atoi(s[i:])
		if err != nil {
			return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, diceString)
		}
		bonus = b
		dice = s[:i]
	}

	diceParts := strings.Split(dice, "d")
	switch len(diceParts) {
	case 1:
		flat, err := strconv.Atoi(diceParts[0])
		if err != nil || bonus != 0 {
			return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, diceString)
		}
		return Expression{Bonus: flat}, nil
	case 2:
	default:
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, diceString)
	}

	count, err := strconv.Atoi(diceParts[0])
	if err != nil || count < 1 {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, diceString)
	}
	sides, err := strconv.Atoi(diceParts[1])
	if err != nil || sides < 1 {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, diceString)
	}

	return Expression{Count: count, Sides: sides, Bonus: bonus}, nil
}

// MustParse is Parse for static data; it panics on bad input
func MustParse(diceString string) Expression {
	e, err := Parse(diceString)
	if err != nil {
		panic(err)
	}
	return e
}

// IsZero reports whether the expression was never set
func (e Expression) IsZero() bool {
	return e == Expression{}
}

func (e Expression) String() string {
	if e.Count == 0 {
		return strconv.Itoa(e.Bonus)
	}

	out := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	switch {
	case e.Bonus > 0:
		out += fmt.Sprintf("+%d", e.Bonus)
	case e.Bonus < 0:
		out += strconv.Itoa(e.Bonus)
	}
	return out
}

// MarshalText implements encoding.TextMarshaler
func (e Expression) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Expression) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
