package worker

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"item-parser/internal/parser"
)

// Reader parses one dump. *parser.Service satisfies it.
type Reader interface {
	Read(raw string, opts parser.Options) parser.Result
}

// Dump is a named clipboard dump, usually read from a file.
type Dump struct {
	Name string
	Raw  string
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Success   int
	Empty     int
	Failed    int
	Cancelled int
}

// ParseDumps reads every dump on a pool of workers. Parsing is CPU bound and
// the reader is safe for concurrent use.
func ParseDumps(ctx context.Context, reader Reader, dumps []Dump, opts parser.Options, workers int) []Task[Dump, parser.Result] {
	pool := NewPool(workers, func(ctx context.Context, d Dump) (parser.Result, error) {
		res := reader.Read(d.Raw, opts)
		return res, res.Err
	})

	tasks := pool.Execute(ctx, dumps)
	log.Debug().Int("dumps", len(dumps)).Int("workers", workers).Msg("Batch parsed")
	return tasks
}

// Summarize counts outcomes by result code.
func Summarize(tasks []Task[Dump, parser.Result]) Summary {
	var s Summary
	for _, t := range tasks {
		switch {
		case errors.Is(t.Err, context.Canceled), errors.Is(t.Err, context.DeadlineExceeded):
			s.Cancelled++
		case t.Result.Code == parser.ResultSuccess:
			s.Success++
		case t.Result.Code == parser.ResultEmpty:
			s.Empty++
		default:
			s.Failed++
		}
	}
	return s
}
