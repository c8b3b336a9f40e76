package linq

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind is a primitive kind that elements can be cast to, or filtered by.
type Kind int

const (
	// KindNumber is represented by float64.
	KindNumber Kind = iota

	// KindBoolean is represented by bool.
	KindBoolean

	// KindString is represented by string.
	KindString

	// KindBigInt is represented by *big.Int.
	KindBigInt
)

// KindFuncs holds the functions backing one Kind.
type KindFuncs struct {
	// Convert converts v to the kind's representation.
	Convert func(v any) (any, error)

	// Is returns true if v already is of the kind.
	Is func(v any) bool
}

// KindTable maps kinds to their functions.
type KindTable map[Kind]KindFuncs

// DefaultKinds is the KindTable used by Cast and OfType.
var DefaultKinds = KindTable{
	KindNumber: {
		Convert: toNumber,
		Is:      isNumber,
	},
	KindBoolean: {
		Convert: toBoolean,
		Is: func(v any) bool {
			_, ok := v.(bool)
			return ok
		},
	},
	KindString: {
		Convert: toString,
		Is: func(v any) bool {
			_, ok := v.(string)
			return ok
		},
	},
	KindBigInt: {
		Convert: toBigInt,
		Is: func(v any) bool {
			_, ok := v.(*big.Int)
			return ok
		},
	},
}

// errUnsupportedKind is the conversion failure for kinds missing from a KindTable.
var errUnsupportedKind = errors.New("unsupported kind")

// Cast returns a sequence that converts each element of s to kind, using DefaultKinds.
// If an element cannot be converted, pulling it panics with a *CastError.
func Cast[T any](s Sequence[T], kind Kind) Sequence[any] {
	return CastWith(s, kind, DefaultKinds)
}

// CastWith is like Cast, but uses the conversions of table.
func CastWith[T any](s Sequence[T], kind Kind, table KindTable) Sequence[any] {
	funcs, ok := table[kind]

	return Select(s, func(elem T) any {
		if !ok {
			panic(&CastError{Value: elem, Kind: kind, Err: errUnsupportedKind})
		}

		v, err := funcs.Convert(elem)
		if err != nil {
			panic(&CastError{Value: elem, Kind: kind, Err: err})
		}

		return v
	})
}

// OfType returns a sequence that produces the elements of s that are of kind, using DefaultKinds.
func OfType[T any](s Sequence[T], kind Kind) Sequence[any] {
	return OfTypeWith(s, kind, DefaultKinds)
}

// OfTypeWith is like OfType, but uses the type tests of table.
// If kind is missing from table, no elements match.
func OfTypeWith[T any](s Sequence[T], kind Kind, table KindTable) Sequence[any] {
	funcs, ok := table[kind]

	return Select(s.Where(func(elem T) bool {
		return ok && funcs.Is(elem)
	}), func(elem T) any {
		return elem
	})
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindBigInt:
		return "bigint"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func isNumber(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// toNumber converts v to float64. Values without a numeric reading become NaN.
func toNumber(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return float64(0), nil
	case bool:
		if v {
			return float64(1), nil
		}

		return float64(0), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return float64(0), nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), nil
		}

		return f, nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	case rv.CanFloat():
		return rv.Float(), nil
	default:
		return math.NaN(), nil
	}
}

// toBoolean converts v to bool by truthiness: zero numbers, NaN, empty strings, and nil are false.
func toBoolean(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return v != "", nil
	case *big.Int:
		return v.Sign() != 0, nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.CanInt():
		return rv.Int() != 0, nil
	case rv.CanUint():
		return rv.Uint() != 0, nil
	case rv.CanFloat():
		f := rv.Float()
		return f != 0 && !math.IsNaN(f), nil
	default:
		return true, nil
	}
}

func toString(v any) (any, error) {
	if v == nil {
		return "null", nil
	}

	return fmt.Sprint(v), nil
}

// toBigInt converts v to *big.Int. Fractional numbers and unparsable strings cannot be converted.
func toBigInt(v any) (any, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return big.NewInt(1), nil
		}

		return big.NewInt(0), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return big.NewInt(0), nil
		}

		i, ok := new(big.Int).SetString(s, 0)
		if !ok {
			return nil, errors.Newf("invalid integer literal %q", v)
		}

		return i, nil
	case *big.Int:
		return new(big.Int).Set(v), nil
	}

	if v == nil {
		return nil, errors.New("nil has no integer value")
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.CanInt():
		return big.NewInt(rv.Int()), nil
	case rv.CanUint():
		return new(big.Int).SetUint64(rv.Uint()), nil
	case rv.CanFloat():
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, errors.Newf("%v is not an integer", f)
		}

		i, _ := big.NewFloat(f).Int(nil)

		return i, nil
	default:
		return nil, errors.Newf("%T has no integer value", v)
	}
}
