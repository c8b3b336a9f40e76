package record

import (
	"cmp"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	linq "github.com/deadlyengineer/some-linq-with-go"
)

// ErrDecode is returned when the input is not a YAML or JSON list of mappings.
var ErrDecode = errors.New("failed to decode records")

// Record is a single mapping of field names to values.
type Record map[string]any

// Decode reads a YAML or JSON list of records from r.
func Decode(r io.Reader) (linq.Sequence[Record], error) {
	decoder := yaml.NewDecoder(r)

	var records []Record

	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return linq.Empty[Record](), nil
		}

		return linq.Sequence[Record]{}, errors.Mark(errors.Wrap(err, "decode YAML"), ErrDecode)
	}

	return linq.FromSlice(records), nil
}

// Encode writes v to w as YAML.
func Encode(w io.Writer, v any) error {
	payload, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode YAML")
	}

	_, err = w.Write(payload)

	return err
}

// Field returns the value of field in r, or nil if r has no such field.
func (r Record) Field(field string) any {
	return r[field]
}

// Project returns a new record containing only the given fields of r.
// Missing fields are set to nil.
func (r Record) Project(fields []string) Record {
	result := make(Record, len(fields))

	for _, field := range fields {
		result[field] = r[field]
	}

	return result
}

// Equal returns true if a and b have the same fields, and all their values compare equal.
func Equal(a Record, b Record) bool {
	if len(a) != len(b) {
		return false
	}

	for field, value := range a {
		other, ok := b[field]
		if !ok || Compare(value, other) != 0 {
			return false
		}
	}

	return true
}

// ValuesEqual returns true if a and b compare equal.
func ValuesEqual(a any, b any) bool {
	return Compare(a, b) == 0
}

// Compare compares two field values. Values of different kinds sort in the order
// nil, booleans, numbers, strings, everything else. Numbers compare numerically regardless of their
// Go type, and values of other types compare by their formatted representation.
func Compare(a any, b any) int {
	rankA, rankB := rank(a), rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch rankA {
	case rankNil:
		return 0

	case rankBool:
		return compareBool(a.(bool), b.(bool))

	case rankNumber:
		return cmp.Compare(toFloat(a), toFloat(b))

	case rankString:
		return cmp.Compare(a.(string), b.(string))

	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return rankNumber
	case string:
		return rankString
	default:
		return rankOther
	}
}

func toFloat(v any) float64 {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func compareBool(a bool, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
