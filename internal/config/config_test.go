package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/deadlyengineer/some-linq-with-go/internal/config"
	"github.com/deadlyengineer/some-linq-with-go/internal/exit"
	"github.com/deadlyengineer/some-linq-with-go/internal/query"
)

var _ = Describe("Config", func() {
	var (
		input     string
		queryFile string
	)

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		input = filepath.Join(dir, "people.yaml")
		queryFile = filepath.Join(dir, "query.yaml")
		Expect(os.WriteFile(input, []byte("- name: ada\n"), 0644)).To(Succeed())
		Expect(os.WriteFile(queryFile, []byte(`
where:
  - field: team
    op: "="
    value: red
orderBy:
  - field: age
    descending: true
take: 3
`), 0644)).To(Succeed())
	})

	Describe("Parse", func() {
		It("Should parse every flag", func() {
			cfg, result := config.Parse([]string{"seqq",
				"-where", "age>=30", "-where", "team=red",
				"-order-by", "team", "-order-by", "-age",
				"-select", "name, team", "-distinct",
				"-skip", "1", "-take", "2", "-debug",
				input,
			})
			Expect(result).To(BeNil())
			Expect(cfg.Input).To(Equal(input))
			Expect(cfg.Debug).To(BeTrue())
			Expect(cfg.Query.Where).To(HaveLen(2))
			Expect(cfg.Query.Where[0].Op).To(Equal(query.OpGreaterOrEqual))
			Expect(cfg.Query.OrderBy).To(Equal([]query.SortKey{{Field: "team"}, {Field: "age", Descending: true}}))
			Expect(cfg.Query.Select).To(Equal([]string{"name", "team"}))
			Expect(cfg.Query.Distinct).To(BeTrue())
			Expect(cfg.Query.Skip).To(Equal(1))
			Expect(*cfg.Query.Take).To(Equal(2))
		})
		It("Should read standard input when no file is given", func() {
			cfg, result := config.Parse([]string{"seqq", "-count"})
			Expect(result).To(BeNil())
			Expect(cfg.Input).To(Equal(config.Stdin))
			Expect(cfg.Query.Count).To(BeTrue())
			Expect(cfg.Query.Take).To(BeNil())
		})
		It("Should load the query file and let flags take precedence", func() {
			cfg, result := config.Parse([]string{"seqq", "-query", queryFile, "-take", "5", "-where", "age<50", input})
			Expect(result).To(BeNil())
			Expect(cfg.QueryFile).To(Equal(queryFile))
			Expect(cfg.Query.Where).To(HaveLen(2))
			Expect(cfg.Query.Where[0].Value).To(Equal("red"))
			Expect(cfg.Query.OrderBy).To(Equal([]query.SortKey{{Field: "age", Descending: true}}))
			Expect(*cfg.Query.Take).To(Equal(5))
		})
		It("Should reject unknown keys in the query file", func() {
			Expect(os.WriteFile(queryFile, []byte("limit: 3\n"), 0644)).To(Succeed())
			_, result := config.Parse([]string{"seqq", "-query", queryFile, input})
			Expect(result).ToNot(BeNil())
			Expect(result.ExitCode).To(Equal(exit.CodeUsage))
		})
		It("Should print usage on help", func() {
			_, result := config.Parse([]string{"seqq", "-h"})
			Expect(result.ExitCode).To(Equal(exit.CodeSuccess))
			Expect(result.Message).To(Equal(config.Usage()))
		})
		It("Should reject invalid arguments", func() {
			for _, args := range [][]string{
				{},
				{"seqq", "-where", "age"},
				{"seqq", "-order-by", "-"},
				{"seqq", "-skip", "-1", input},
				{"seqq", "-count", "-group-by", "team", input},
				{"seqq", input, input},
				{"seqq", filepath.Join(filepath.Dir(input), "missing.yaml")},
			} {
				_, result := config.Parse(args)
				Expect(result).ToNot(BeNil(), "%v", args)
				Expect(result.ExitCode).To(Equal(exit.CodeUsage))
			}
		})
	})
	Describe("Open", func() {
		It("Should open the input file", func() {
			cfg := &config.Config{Input: input}
			r, err := cfg.Open()
			Expect(err).ToNot(HaveOccurred())
			Expect(r.Close()).To(Succeed())
		})
	})
})
