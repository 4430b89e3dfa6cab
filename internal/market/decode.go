package market

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// MistPerSui is the number of smallest-unit MIST in one SUI.
const MistPerSui = 1_000_000_000

// DecodeField converts a raw on-chain field value into a display string.
// Contracts are inconsistent about text encoding: some store native strings,
// others store the UTF-8 bytes as a vector of integers. Anything else, or a
// byte sequence that is not valid UTF-8, decodes to the empty string.
func DecodeField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		if utf8.Valid(v) {
			return string(v)
		}
		return ""
	case []any:
		buf := make([]byte, 0, len(v))
		for _, item := range v {
			b, ok := byteValue(item)
			if !ok {
				return ""
			}
			buf = append(buf, b)
		}
		if utf8.Valid(buf) {
			return string(buf)
		}
		return ""
	default:
		return ""
	}
}

func byteValue(item any) (byte, bool) {
	var n float64
	switch v := item.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint64:
		n = float64(v)
	default:
		return 0, false
	}
	if n < 0 || n > 255 || n != math.Trunc(n) {
		return 0, false
	}
	return byte(n), true
}

// FromMist converts a native integer amount into decimal SUI.
func FromMist(mist uint64) float64 {
	return float64(mist) / MistPerSui
}

// ToMist converts a decimal SUI amount into the native integer unit.
// The amount must be a non-negative finite number; callers validating user
// input should reject non-positive prices before reaching the chain.
func ToMist(sui float64) (uint64, error) {
	if math.IsNaN(sui) || math.IsInf(sui, 0) {
		return 0, fmt.Errorf("amount is not finite")
	}
	if sui < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return uint64(math.Floor(sui*MistPerSui + 0.5)), nil
}

// FormatSui renders a SUI amount with four decimal places.
func FormatSui(sui float64) string {
	return fmt.Sprintf("%.4f", sui)
}

// FormatPrice renders the short price string attached to feed entries.
func FormatPrice(sui float64) string {
	return fmt.Sprintf("%.3f SUI", sui)
}
