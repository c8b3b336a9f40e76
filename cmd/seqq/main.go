package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	linq "github.com/deadlyengineer/some-linq-with-go"
	"github.com/deadlyengineer/some-linq-with-go/internal/config"
	"github.com/deadlyengineer/some-linq-with-go/internal/exit"
	"github.com/deadlyengineer/some-linq-with-go/internal/record"
)

func main() {
	exitCode := run(os.Args)
	os.Exit(exitCode)
}

func run(args []string) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	logger := zap.NewNop()
	if cfg.Debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fail(err)
		}
		logger = l
	}
	defer logger.Sync()

	input, err := cfg.Open()
	if err != nil {
		return fail(err)
	}
	defer input.Close()

	records, err := record.Decode(input)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Debug("running query", zap.String("input", cfg.Input), zap.Any("query", cfg.Query))

	result, err := cfg.Query.Run(linq.WithContext(ctx, records), logger)
	if err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	var out bytes.Buffer
	if err := record.Encode(&out, result); err != nil {
		return fail(err)
	}

	exitResult = exit.Success(out.String())
	exitResult.Print()
	return exitResult.ExitCode
}

func fail(err error) int {
	exitResult := exit.Failure(err)
	exitResult.Print()
	return exitResult.ExitCode
}
