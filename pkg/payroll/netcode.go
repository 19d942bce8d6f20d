package payroll

import (
	"fmt"
	"strconv"
	"strings"
)

// NetCode classifies a payroll line within the gross-to-net calculation.
type NetCode int

// Gross-to-net codes used by the downstream payroll system.
const (
	// NetCodeUnset indicates no classification is available.
	NetCodeUnset NetCode = 0
	// NetCodeEarnings is an earnings line.
	NetCodeEarnings NetCode = 1
	// NetCodeEmployeeDeduction is an employee-side deduction amount.
	NetCodeEmployeeDeduction NetCode = 3
	// NetCodeEmployerDeduction is an employer-side deduction amount.
	NetCodeEmployerDeduction NetCode = 4
)

// String returns the wire representation of the code. Unset codes render as
// an empty string so exports leave the column blank.
func (c NetCode) String() string {
	if c == NetCodeUnset {
		return ""
	}
	return strconv.Itoa(int(c))
}

// IsValid reports whether the code is one of the known classifications.
func (c NetCode) IsValid() bool {
	switch c {
	case NetCodeUnset, NetCodeEarnings, NetCodeEmployeeDeduction, NetCodeEmployerDeduction:
		return true
	default:
		return false
	}
}

// ParseNetCode parses a wire value into a NetCode. Empty input is NetCodeUnset.
func ParseNetCode(s string) (NetCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NetCodeUnset, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return NetCodeUnset, fmt.Errorf("invalid gross-to-net code %q: %w", s, err)
	}
	code := NetCode(n)
	if !code.IsValid() {
		return NetCodeUnset, fmt.Errorf("unknown gross-to-net code %d", n)
	}
	return code, nil
}

// MarshalJSON renders the code as its wire string ("1", "3", "4", or "").
func (c NetCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON accepts both string and numeric representations.
func (c *NetCode) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*c = NetCodeUnset
		return nil
	}
	code, err := ParseNetCode(s)
	if err != nil {
		return err
	}
	*c = code
	return nil
}
