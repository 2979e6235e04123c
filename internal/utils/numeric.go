package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/shopspring/decimal"
)

// NumericPolicy decides what happens to a numeric field that cannot be parsed.
type NumericPolicy string

const (
	// NumericPolicyZero treats unparsable input as zero and reports a warning.
	NumericPolicyZero NumericPolicy = "zero"
	// NumericPolicyReject fails the whole operation with MalformedNumericFieldError.
	NumericPolicyReject NumericPolicy = "reject"
)

// ParseNumericPolicy maps a config value to a policy, defaulting to zero.
func ParseNumericPolicy(s string) (NumericPolicy, error) {
	switch NumericPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", NumericPolicyZero:
		return NumericPolicyZero, nil
	case NumericPolicyReject:
		return NumericPolicyReject, nil
	default:
		return NumericPolicyZero, fmt.Errorf("unknown numeric policy %q", s)
	}
}

// MalformedNumericFieldError names the field whose value could not be read as a number.
type MalformedNumericFieldError struct {
	Field string
	Value string
}

func (e *MalformedNumericFieldError) Error() string {
	return fmt.Sprintf("%s: field %s has non-numeric value %q", apperrors.ErrValidation.Error(), e.Field, e.Value)
}

func (e *MalformedNumericFieldError) Unwrap() error {
	return apperrors.ErrValidation
}

// NumericParser turns loosely typed numeric input into decimals under a fixed policy.
// Warnings collects the fields that were coerced to zero.
type NumericParser struct {
	Policy   NumericPolicy
	Warnings []*MalformedNumericFieldError
}

// NewNumericParser returns a parser applying policy.
func NewNumericParser(policy NumericPolicy) *NumericParser {
	return &NumericParser{Policy: policy}
}

// Parse reads raw as a decimal. Empty input is zero under either policy.
func (p *NumericParser) Parse(field, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err == nil {
		return d, nil
	}

	malformed := &MalformedNumericFieldError{Field: field, Value: raw}
	if p.Policy == NumericPolicyReject {
		return decimal.Zero, malformed
	}
	p.Warnings = append(p.Warnings, malformed)
	return decimal.Zero, nil
}

// NumericField holds the raw text of a JSON number, numeric string, or null,
// so the parse decision can be made by a NumericParser instead of the decoder.
type NumericField string

// UnmarshalJSON accepts numbers, strings and null.
func (n *NumericField) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericField(s)
		return nil
	}
	*n = NumericField(raw)
	return nil
}

// MarshalJSON writes the field back as a JSON string.
func (n NumericField) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

// NumericFieldOf formats a decimal as a NumericField.
func NumericFieldOf(d decimal.Decimal) NumericField {
	return NumericField(d.String())
}
