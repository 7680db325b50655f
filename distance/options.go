package distance

import (
	"fmt"
)

// Options holds metric-specific keyword options, e.g. {"p": 3} for minkowski.
//
// Numeric values may be any Go integer or float type. Vectors and matrices
// may be []float64, [][]float64 or the []any lists produced by YAML and JSON
// decoders.
type Options map[string]any

// Float returns the option as a float64, or def when absent.
func (o Options) Float(key string, def float64) (float64, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	return f, nil
}

// Floats returns the option as a vector, or nil when absent.
func (o Options) Floats(key string) ([]float64, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	return toFloats(v)
}

// Matrix returns the option as a row-major matrix, or nil when absent.
func (o Options) Matrix(key string) ([][]float64, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch m := v.(type) {
	case [][]float64:
		return m, nil
	case []any:
		out := make([][]float64, len(m))
		for i, row := range m {
			r, err := toFloats(row)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a matrix, got %T", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toFloats(v any) ([]float64, error) {
	switch s := v.(type) {
	case []float64:
		return s, nil
	case []float32:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, nil
	case []int:
		out := make([]float64, len(s))
		for i, f := range s {
			out[i] = float64(f)
		}
		return out, nil
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, fmt.Errorf("element %d: expected a number, got %T", i, e)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a vector, got %T", v)
	}
}
