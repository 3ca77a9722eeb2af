package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Dashboard clients read money as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount is a money value that tolerates the loose numeric forms a store or
// client can hand back: numeric, text, float, integer or NULL. Anything that
// does not parse as a number becomes zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromString parses s, yielding zero when s is not numeric.
func AmountFromString(s string) Amount {
	return CoerceAmount(s)
}

func AmountFromFloat(f float64) Amount {
	return CoerceAmount(f)
}

// CoerceAmount converts any scalar into an Amount.
func CoerceAmount(value interface{}) Amount {
	switch v := value.(type) {
	case nil:
		return Amount{}
	case Amount:
		return v
	case decimal.Decimal:
		return Amount{Decimal: v}
	case string:
		return parseAmount(v)
	case []byte:
		return parseAmount(string(v))
	case json.Number:
		return parseAmount(v.String())
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Amount{}
		}
		return Amount{Decimal: decimal.NewFromFloat(v)}
	case float32:
		return CoerceAmount(float64(v))
	case int:
		return Amount{Decimal: decimal.NewFromInt(int64(v))}
	case int32:
		return Amount{Decimal: decimal.NewFromInt32(v)}
	case int64:
		return Amount{Decimal: decimal.NewFromInt(v)}
	case uint32:
		return Amount{Decimal: decimal.NewFromInt(int64(v))}
	case uint64:
		return Amount{Decimal: decimal.NewFromUint64(v)}
	default:
		return Amount{}
	}
}

func parseAmount(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return Amount{Decimal: d}
}

// Scan implements sql.Scanner. It never fails.
func (a *Amount) Scan(value interface{}) error {
	*a = CoerceAmount(value)
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.String(), nil
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		*a = Amount{}
		return nil
	}
	*a = CoerceAmount(raw)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}
