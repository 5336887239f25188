package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var errNotAnObject = errors.New("request body must be a JSON object")

// stringField checks that v is a string, trims surrounding whitespace and
// enforces non-emptiness and the given character limit.
func stringField(v any, field string, maxLen int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field '%s' must be a string", field)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("field '%s' cannot be empty", field)
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", fmt.Errorf("field '%s' is too long", field)
	}
	return s, nil
}

// intField checks that v is an integer. JSON numbers are accepted only if
// their textual form is a plain signed digit run, so floats like 5.0 are
// rejected; strings are accepted under the same rule after trimming.
// Everything else, booleans included, is rejected.
func intField(v any, field string) (int64, error) {
	errInvalid := fmt.Errorf("field '%s' must be an integer", field)

	switch n := v.(type) {
	case json.Number:
		return parseSignedDigits(string(n), errInvalid)
	case string:
		return parseSignedDigits(strings.TrimSpace(n), errInvalid)
	}
	return 0, errInvalid
}

// parseSignedDigits parses an optionally minus-signed run of decimal digits.
func parseSignedDigits(s string, errInvalid error) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, errInvalid
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, errInvalid
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errInvalid
	}
	return n, nil
}

// decimalField checks that v is a number, parsing its exact textual form
// as a decimal so no binary floating-point rounding is introduced.
func decimalField(v any, field string) (decimal.Decimal, error) {
	errInvalid := fmt.Errorf("field '%s' must be a number", field)

	var text string
	switch n := v.(type) {
	case json.Number:
		text = string(n)
	case string:
		text = strings.TrimSpace(n)
	default:
		return decimal.Decimal{}, errInvalid
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, errInvalid
	}
	return d, nil
}
