package sanitizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotInteger = errors.New("value is not an integer")
	ErrOutOfRange = errors.New("value is out of integer range")
)

// CoerceInt interprets v as an integer. Integral numeric text (surrounding
// whitespace and a leading sign allowed) and any Go integer type convert
// directly. Floating point numbers, as produced by JSON and BSON decoders,
// truncate toward zero.
func CoerceInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return intFromInt64(n)
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return intFromInt64(int64(n))
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return intFromInt64(int64(n))
	case uint64:
		if n > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return intFromInt64(int64(n))
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return intFromInt64(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, n.String())
		}
		return intFromFloat(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, ErrOutOfRange
			}
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, v)
	}
}

func intFromInt64(n int64) (int, error) {
	if n > math.MaxInt || n < math.MinInt {
		return 0, ErrOutOfRange
	}
	return int(n), nil
}

func intFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	f = math.Trunc(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrOutOfRange
	}
	return intFromInt64(int64(f))
}
