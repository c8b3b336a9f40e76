package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/deadlyengineer/some-linq-with-go/internal/exit"
	"github.com/deadlyengineer/some-linq-with-go/internal/query"
)

// Stdin is the input name that reads records from standard input.
const Stdin = "-"

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrTooManyInputs = errors.New("only one input file can be queried")
)

// Config represents the configuration of a seqq run.
type Config struct {
	// Input is the path of the records file, or Stdin.
	Input string
	Debug bool

	// QueryFile is the optional YAML file the query was loaded from.
	QueryFile string
	Query     query.Query
}

// Validate returns an error if the input file is missing or the query is invalid.
func (c *Config) Validate() error {
	if c.Input != Stdin {
		if _, err := os.Stat(c.Input); err != nil {
			return errors.Wrapf(err, "input file %s not found", c.Input)
		}
	}

	return c.Query.Validate()
}

// Open returns a reader over the input records. The caller closes it.
func (c *Config) Open() (io.ReadCloser, error) {
	if c.Input == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", c.Input)
	}

	return f, nil
}

// conditionsFlag implements flag.Value for repeated -where flags.
type conditionsFlag []query.Condition

func (c *conditionsFlag) String() string {
	var conds []string
	for _, cond := range *c {
		conds = append(conds, fmt.Sprintf("%s%s%v", cond.Field, cond.Op, cond.Value))
	}
	return strings.Join(conds, ",")
}

func (c *conditionsFlag) Set(value string) error {
	cond, err := query.ParseCondition(value)
	if err != nil {
		return err
	}

	*c = append(*c, cond)
	return nil
}

// sortKeysFlag implements flag.Value for repeated -order-by flags.
type sortKeysFlag []query.SortKey

func (s *sortKeysFlag) String() string {
	var keys []string
	for _, key := range *s {
		if key.Descending {
			keys = append(keys, "-"+key.Field)
		} else {
			keys = append(keys, key.Field)
		}
	}
	return strings.Join(keys, ",")
}

func (s *sortKeysFlag) Set(value string) error {
	key, err := query.ParseSortKey(value)
	if err != nil {
		return err
	}

	*s = append(*s, key)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, it returns a nil config and the exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Usage("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		debug     = fs.Bool("debug", false, "Log every record pulled through the pipeline")
		queryFile = fs.String("query", "", "Path to a YAML query file")
		selected  = fs.String("select", "", "Comma separated fields to keep")
		distinct  = fs.Bool("distinct", false, "Drop duplicate records")
		skip      = fs.Int("skip", 0, "Number of records to skip")
		take      = fs.Int("take", -1, "Maximum number of records to print")
		groupBy   = fs.String("group-by", "", "Field to group and count records by")
		count     = fs.Bool("count", false, "Print the number of records")
		where     conditionsFlag
		orderBy   sortKeysFlag
	)

	fs.Var(&where, "where", "Condition in format field<op>value (can be used multiple times)")
	fs.Var(&orderBy, "order-by", "Field to order by, prefixed with - for descending (can be used multiple times)")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Usage("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	input := Stdin
	switch inputs := fs.Args(); len(inputs) {
	case 0:
	case 1:
		input = inputs[0]
	default:
		return nil, exit.Usage("Error: %v\n\n%s", ErrTooManyInputs, Usage())
	}

	var q query.Query
	if *queryFile != "" {
		loaded, err := loadQueryFile(*queryFile)
		if err != nil {
			return nil, exit.Usage("Error: failed to load query file: %v\n\n%s", err, Usage())
		}
		q = *loaded
	}

	// command-line flags take precedence over the query file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "where":
			q.Where = append(q.Where, where...)
		case "order-by":
			q.OrderBy = orderBy
		case "select":
			q.Select = splitFields(*selected)
		case "distinct":
			q.Distinct = *distinct
		case "skip":
			q.Skip = *skip
		case "take":
			q.Take = take
		case "group-by":
			q.GroupBy = *groupBy
		case "count":
			q.Count = *count
		}
	})

	config := &Config{
		Input:     input,
		Debug:     *debug,
		QueryFile: *queryFile,
		Query:     q,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Usage("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// loadQueryFile decodes a query from a YAML file. Unknown keys are rejected.
func loadQueryFile(filename string) (*query.Query, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", filename)
	}
	defer f.Close()

	var q query.Query
	if err := yaml.NewDecoder(f, yaml.Strict()).Decode(&q); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "invalid query in %s", filename)
	}

	return &q, nil
}

func splitFields(s string) []string {
	var fields []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `seqq - query YAML and JSON records

Usage: seqq [options] [file]

Reads a list of records from file, or standard input when file is omitted or -.

Options:
  --where FIELD<OP>VALUE  Keep records matching the condition, OP is one of = != < <= > >= (can be used multiple times)
  --order-by [-]FIELD     Order by field, descending when prefixed with - (can be used multiple times)
  --select F1,F2          Keep only the given fields
  --distinct              Drop duplicate records
  --skip N                Skip the first N records
  --take N                Print at most N records
  --group-by FIELD        Print each value of field with its number of records
  --count                 Print the number of records
  --query FILE            Load the query from a YAML file, flags take precedence
  --debug                 Log every record pulled through the pipeline
  -h, --help              Show this help message

Examples:
  seqq people.yaml --where age>=30 --order-by -age
  seqq people.json --select name,team --distinct
  seqq people.yaml --group-by team
  cat people.yaml | seqq --query adults.yaml --take 10`
}
