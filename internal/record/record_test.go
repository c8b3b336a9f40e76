package record_test

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deadlyengineer/some-linq-with-go/internal/record"
)

var _ = Describe("Record", func() {
	Describe("Decode", func() {
		It("Should decode a YAML list of mappings", func() {
			records, err := record.Decode(strings.NewReader("- name: ada\n  age: 36\n- name: alan\n  age: 41\n"))
			Expect(err).ToNot(HaveOccurred())
			decoded := records.ToSlice()
			Expect(decoded).To(HaveLen(2))
			Expect(decoded[0].Field("name")).To(Equal("ada"))
			Expect(record.Compare(decoded[1].Field("age"), 41)).To(BeZero())
		})
		It("Should decode a JSON array", func() {
			records, err := record.Decode(strings.NewReader(`[{"name": "ada"}, {"name": "alan"}]`))
			Expect(err).ToNot(HaveOccurred())
			Expect(records.Count()).To(Equal(2))
		})
		It("Should return an empty sequence for empty input", func() {
			records, err := record.Decode(strings.NewReader(""))
			Expect(err).ToNot(HaveOccurred())
			Expect(records.Any()).To(BeFalse())
		})
		It("Should mark malformed input with ErrDecode", func() {
			_, err := record.Decode(strings.NewReader("name: ada"))
			Expect(errors.Is(err, record.ErrDecode)).To(BeTrue())
		})
	})
	Describe("Encode", func() {
		It("Should write YAML", func() {
			var buf bytes.Buffer
			Expect(record.Encode(&buf, []record.Record{{"name": "ada"}})).To(Succeed())
			Expect(buf.String()).To(Equal("- name: ada\n"))
		})
	})
	Describe("Project", func() {
		It("Should keep only the requested fields", func() {
			r := record.Record{"name": "ada", "age": 36}
			Expect(r.Project([]string{"name", "city"})).To(Equal(record.Record{"name": "ada", "city": nil}))
		})
	})
	Describe("Compare", func() {
		It("Should order values of different kinds", func() {
			Expect(record.Compare(nil, false)).To(Equal(-1))
			Expect(record.Compare(true, 0)).To(Equal(-1))
			Expect(record.Compare(100, "1")).To(Equal(-1))
			Expect(record.Compare("z", []any{})).To(Equal(-1))
		})
		It("Should compare numbers regardless of their Go type", func() {
			Expect(record.Compare(uint64(3), 3.0)).To(BeZero())
			Expect(record.Compare(int64(-1), uint64(1))).To(Equal(-1))
			Expect(record.Compare(2.5, 2)).To(Equal(1))
		})
		It("Should compare strings and booleans", func() {
			Expect(record.Compare("ada", "alan")).To(Equal(-1))
			Expect(record.Compare(true, false)).To(Equal(1))
			Expect(record.Compare(nil, nil)).To(BeZero())
		})
	})
	Describe("Equal", func() {
		It("Should compare records field by field", func() {
			Expect(record.Equal(record.Record{"a": uint64(1)}, record.Record{"a": 1})).To(BeTrue())
			Expect(record.Equal(record.Record{"a": 1}, record.Record{"b": 1})).To(BeFalse())
			Expect(record.Equal(record.Record{"a": 1}, record.Record{"a": 1, "b": 2})).To(BeFalse())
		})
	})
})
