package query_test

import (
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	linq "github.com/deadlyengineer/some-linq-with-go"
	"github.com/deadlyengineer/some-linq-with-go/internal/query"
	"github.com/deadlyengineer/some-linq-with-go/internal/record"
)

const people = `
- {name: ada, team: red, age: 36}
- {name: alan, team: blue, age: 41}
- {name: grace, team: red, age: 85}
- {name: edsger, team: blue, age: 72}
- {name: barbara, team: red, age: 36}
`

func decode() linq.Sequence[record.Record] {
	records, err := record.Decode(strings.NewReader(people))
	Expect(err).ToNot(HaveOccurred())
	return records
}

func names(result any) []any {
	rows, ok := result.([]record.Record)
	Expect(ok).To(BeTrue())
	return linq.Select(linq.FromSlice(rows), func(r record.Record) any {
		return r.Field("name")
	}).ToSlice()
}

func take(n int) *int {
	return &n
}

var _ = Describe("Query", func() {
	Describe("ParseCondition", func() {
		It("Should parse every operator", func() {
			for s, op := range map[string]query.Operator{
				"age=1":  query.OpEqual,
				"age!=1": query.OpNotEqual,
				"age<1":  query.OpLess,
				"age<=1": query.OpLessOrEqual,
				"age>1":  query.OpGreater,
				"age>=1": query.OpGreaterOrEqual,
			} {
				cond, err := query.ParseCondition(s)
				Expect(err).ToNot(HaveOccurred())
				Expect(cond.Field).To(Equal("age"))
				Expect(cond.Op).To(Equal(op))
				Expect(record.Compare(cond.Value, 1)).To(BeZero())
			}
		})
		It("Should split on the first operator", func() {
			cond, err := query.ParseCondition("expr=a<=b")
			Expect(err).ToNot(HaveOccurred())
			Expect(cond.Field).To(Equal("expr"))
			Expect(cond.Op).To(Equal(query.OpEqual))
			Expect(cond.Value).To(Equal("a<=b"))
		})
		It("Should decode scalar values", func() {
			cond, err := query.ParseCondition("active=true")
			Expect(err).ToNot(HaveOccurred())
			Expect(cond.Value).To(Equal(true))
			cond, err = query.ParseCondition("name=ada")
			Expect(err).ToNot(HaveOccurred())
			Expect(cond.Value).To(Equal("ada"))
		})
		It("Should reject malformed conditions", func() {
			_, err := query.ParseCondition("age")
			Expect(errors.Is(err, query.ErrInvalidCondition)).To(BeTrue())
			_, err = query.ParseCondition("=1")
			Expect(errors.Is(err, query.ErrEmptyField)).To(BeTrue())
		})
	})
	Describe("ParseSortKey", func() {
		It("Should parse ascending and descending keys", func() {
			Expect(query.ParseSortKey("age")).To(Equal(query.SortKey{Field: "age"}))
			Expect(query.ParseSortKey("-age")).To(Equal(query.SortKey{Field: "age", Descending: true}))
			_, err := query.ParseSortKey("-")
			Expect(errors.Is(err, query.ErrEmptyField)).To(BeTrue())
		})
	})
	Describe("Validate", func() {
		It("Should reject invalid queries", func() {
			Expect(errors.Is((&query.Query{Skip: -1}).Validate(), query.ErrNegativeSkip)).To(BeTrue())
			Expect(errors.Is((&query.Query{Take: take(-1)}).Validate(), query.ErrNegativeTake)).To(BeTrue())
			Expect(errors.Is((&query.Query{Count: true, GroupBy: "team"}).Validate(), query.ErrConflictingModes)).To(BeTrue())
			Expect(errors.Is((&query.Query{GroupBy: "team", Select: []string{"name"}}).Validate(), query.ErrGroupNotSelected)).To(BeTrue())
			Expect(errors.Is((&query.Query{Where: []query.Condition{{Field: "a", Op: "~"}}}).Validate(), query.ErrUnknownOperator)).To(BeTrue())
		})
	})
	Describe("Run", func() {
		It("Should return the records unchanged for an empty query", func() {
			result, err := (&query.Query{}).Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(names(result)).To(Equal([]any{"ada", "alan", "grace", "edsger", "barbara"}))
		})
		It("Should filter with every condition", func() {
			q := &query.Query{Where: []query.Condition{
				{Field: "team", Op: query.OpEqual, Value: "red"},
				{Field: "age", Op: query.OpLess, Value: 50},
			}}
			result, err := q.Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(names(result)).To(Equal([]any{"ada", "barbara"}))
		})
		It("Should order by several keys", func() {
			q := &query.Query{OrderBy: []query.SortKey{
				{Field: "team"},
				{Field: "age", Descending: true},
				{Field: "name"},
			}}
			result, err := q.Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(names(result)).To(Equal([]any{"edsger", "alan", "grace", "ada", "barbara"}))
		})
		It("Should select distinct projections and page through them", func() {
			q := &query.Query{
				OrderBy:  []query.SortKey{{Field: "age"}},
				Select:   []string{"team"},
				Distinct: true,
				Skip:     1,
				Take:     take(1),
			}
			result, err := q.Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal([]record.Record{{"team": "blue"}}))
		})
		It("Should count the matching records", func() {
			q := &query.Query{Where: []query.Condition{{Field: "age", Op: query.OpEqual, Value: 36}}, Count: true}
			result, err := q.Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(2))
		})
		It("Should group records by a field", func() {
			result, err := (&query.Query{GroupBy: "team"}).Run(decode(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal([]record.Record{
				{"team": "red", "count": 3},
				{"team": "blue", "count": 2},
			}))
		})
		It("Should stop pulling records once Take is satisfied", func() {
			core, logs := observer.New(zap.DebugLevel)
			_, err := (&query.Query{Take: take(2)}).Run(decode(), zap.New(core))
			Expect(err).ToNot(HaveOccurred())
			Expect(logs.FilterMessage("element pulled").FilterField(zap.String("stage", "source")).Len()).To(Equal(2))
		})
		It("Should refuse to run an invalid query", func() {
			_, err := (&query.Query{Skip: -1}).Run(decode(), nil)
			Expect(errors.Is(err, query.ErrNegativeSkip)).To(BeTrue())
		})
	})
})
