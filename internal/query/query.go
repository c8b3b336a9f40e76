package query

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	linq "github.com/deadlyengineer/some-linq-with-go"
	"github.com/deadlyengineer/some-linq-with-go/internal/record"
)

var (
	ErrInvalidCondition = errors.New("condition must be in format field<op>value")
	ErrUnknownOperator  = errors.New("unknown operator")
	ErrEmptyField       = errors.New("field name cannot be empty")
	ErrNegativeSkip     = errors.New("skip cannot be negative")
	ErrNegativeTake     = errors.New("take cannot be negative")
	ErrConflictingModes = errors.New("count and group-by cannot be combined")
	ErrGroupNotSelected = errors.New("group-by field must be selected")
)

// Operator compares a record field against a condition value.
type Operator string

const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
)

// operators, longest first.
var operators = []Operator{OpNotEqual, OpLessOrEqual, OpGreaterOrEqual, OpEqual, OpLess, OpGreater}

// matches reports whether a comparison result satisfies the operator.
func (o Operator) matches(c int) bool {
	switch o {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpLessOrEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterOrEqual:
		return c >= 0
	default:
		return false
	}
}

func (o Operator) valid() bool {
	for _, op := range operators {
		if o == op {
			return true
		}
	}

	return false
}

// Condition keeps the records whose Field compares to Value according to Op.
type Condition struct {
	Field string   `yaml:"field"`
	Op    Operator `yaml:"op"`
	Value any      `yaml:"value"`
}

// ParseCondition parses a condition such as "age>=30" or "name=ada". The operator is the first one
// found in s. The value is decoded as a YAML scalar, so numbers and booleans compare as such.
func ParseCondition(s string) (Condition, error) {
	at, found := -1, Operator("")

	// longer operators come first, so they win ties
	for _, op := range operators {
		i := strings.Index(s, string(op))
		if i >= 0 && (at < 0 || i < at) {
			at, found = i, op
		}
	}

	if at < 0 {
		return Condition{}, errors.Wrapf(ErrInvalidCondition, "got: %s", s)
	}

	field := strings.TrimSpace(s[:at])
	if field == "" {
		return Condition{}, ErrEmptyField
	}

	return Condition{Field: field, Op: found, Value: scalar(s[at+len(found):])}, nil
}

// scalar decodes raw as a YAML scalar, falling back to the raw string.
func scalar(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}

	switch value.(type) {
	case nil, bool, string, int, int64, uint64, float64:
		return value
	default:
		return raw
	}
}

// SortKey orders records by Field.
type SortKey struct {
	Field      string `yaml:"field"`
	Descending bool   `yaml:"descending"`
}

// ParseSortKey parses "field" as an ascending key and "-field" as a descending one.
func ParseSortKey(s string) (SortKey, error) {
	descending := strings.HasPrefix(s, "-")
	field := strings.TrimSpace(strings.TrimPrefix(s, "-"))

	if field == "" {
		return SortKey{}, ErrEmptyField
	}

	return SortKey{Field: field, Descending: descending}, nil
}

// Query describes a pipeline over records. Stages run in the order
// Where, OrderBy, Select, Distinct, Skip, Take, then GroupBy or Count.
type Query struct {
	Where    []Condition `yaml:"where"`
	OrderBy  []SortKey   `yaml:"orderBy"`
	Select   []string    `yaml:"select"`
	Distinct bool        `yaml:"distinct"`
	Skip     int         `yaml:"skip"`
	Take     *int        `yaml:"take"`
	GroupBy  string      `yaml:"groupBy"`
	Count    bool        `yaml:"count"`
}

// Validate returns an error if q cannot be run.
func (q *Query) Validate() error {
	for _, cond := range q.Where {
		if cond.Field == "" {
			return errors.Wrap(ErrEmptyField, "where")
		}

		if !cond.Op.valid() {
			return errors.Wrapf(ErrUnknownOperator, "where %s: %q", cond.Field, cond.Op)
		}
	}

	for _, key := range q.OrderBy {
		if key.Field == "" {
			return errors.Wrap(ErrEmptyField, "order-by")
		}
	}

	if q.Skip < 0 {
		return ErrNegativeSkip
	}

	if q.Take != nil && *q.Take < 0 {
		return ErrNegativeTake
	}

	if q.Count && q.GroupBy != "" {
		return ErrConflictingModes
	}

	if q.GroupBy != "" && len(q.Select) > 0 && !linq.FromSlice(q.Select).Contains(q.GroupBy) {
		return errors.Wrapf(ErrGroupNotSelected, "group-by %s", q.GroupBy)
	}

	return nil
}

// Run applies q to records. The result is an int when Count is set, and a slice of records otherwise.
// With GroupBy, each result record holds the group key under the GroupBy field and the group size under "count".
func (q *Query) Run(records linq.Sequence[record.Record], logger *zap.Logger) (any, error) {
	if err := q.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid query")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	rows := records.Trace(logger, "source")

	for _, cond := range q.Where {
		rows = rows.Where(cond.match)
	}

	rows = q.order(rows)

	if len(q.Select) > 0 {
		rows = linq.Select(rows, func(r record.Record) record.Record {
			return r.Project(q.Select)
		})
	}

	if q.Distinct {
		rows = rows.Distinct(record.Equal)
	}

	rows = rows.Skip(q.Skip)

	if q.Take != nil {
		rows = rows.Take(*q.Take)
	}

	rows = rows.Trace(logger, "result")

	switch {
	case q.Count:
		return rows.Count(), nil

	case q.GroupBy != "":
		// groups traverse their source once per group
		rows = linq.FromSlice(rows.ToSlice())

		return linq.GroupByResult(rows, func(r record.Record) any {
			return r.Field(q.GroupBy)
		}, func(r record.Record) record.Record {
			return r
		}, func(key any, members linq.Sequence[record.Record]) record.Record {
			return record.Record{q.GroupBy: key, "count": members.Count()}
		}, record.ValuesEqual).ToSlice(), nil

	default:
		return rows.ToSlice(), nil
	}
}

func (q *Query) order(rows linq.Sequence[record.Record]) linq.Sequence[record.Record] {
	if len(q.OrderBy) == 0 {
		return rows
	}

	first := q.OrderBy[0]

	var ordered linq.OrderedSequence[any, record.Record]
	if first.Descending {
		ordered = linq.OrderByDescendingFunc(rows, fieldOf(first.Field), record.Compare)
	} else {
		ordered = linq.OrderByFunc(rows, fieldOf(first.Field), record.Compare)
	}

	for _, key := range q.OrderBy[1:] {
		if key.Descending {
			ordered = linq.ThenByDescendingFunc(ordered, fieldOf(key.Field), record.Compare)
		} else {
			ordered = linq.ThenByFunc(ordered, fieldOf(key.Field), record.Compare)
		}
	}

	return ordered.Sequence
}

func (c Condition) match(r record.Record) bool {
	return c.Op.matches(record.Compare(r.Field(c.Field), c.Value))
}

func fieldOf(field string) func(r record.Record) any {
	return func(r record.Record) any {
		return r.Field(field)
	}
}
