package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/deadlyengineer/some-linq-with-go/internal/exit"
)

func TestRun(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "people.json")
	broken := filepath.Join(dir, "broken.yaml")

	is.NoErr(os.WriteFile(input, []byte(`[{"name": "ada", "age": 36}, {"name": "alan", "age": 41}]`), 0644))
	is.NoErr(os.WriteFile(broken, []byte("name: ada\n"), 0644))

	is.Equal(run([]string{"seqq", "-where", "age>40", "-select", "name", input}), exit.CodeSuccess)
	is.Equal(run([]string{"seqq", "-count", "-debug", input}), exit.CodeSuccess)
	is.Equal(run([]string{"seqq", broken}), exit.CodeFailure)
	is.Equal(run([]string{"seqq", "-take", "-2", input}), exit.CodeUsage)
}
