// SPDX-License-Identifier: GPL-2.0-or-later

package batch

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ClementJ18/finalBIGv2-sub000/model"
)

// ReadFunc returns the contents of the file name.
type ReadFunc func(name string) ([]byte, error)

// Config holds the shared resources of a batch run.
type Config struct {
	Read    ReadFunc
	Workers int
	// Done, if set, is called from the worker after each result.
	Done func(Result)
}

// Result holds the outcome of decoding one file.
type Result struct {
	ID    uuid.UUID
	Name  string
	Model model.Model
	Err   error
}

// Run decodes all names using a worker pool. Results are in the order of names.
// Names not yet started when ctx is cancelled get ctx.Err().
func Run(ctx context.Context, cfg Config, names []string) []Result {
	results := make([]Result, len(names))
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{ID: newID(), Name: names[idx], Err: err}
				} else {
					results[idx] = process(cfg, names[idx])
				}
				if cfg.Done != nil {
					cfg.Done(results[idx])
				}
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func process(cfg Config, name string) Result {
	r := Result{ID: newID(), Name: name}
	data, err := cfg.Read(name)
	if err != nil {
		r.Err = err
		return r
	}
	r.Model, r.Err = model.Load(name, data)
	return r
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var f []Result
	for _, r := range results {
		if r.Err != nil {
			f = append(f, r)
		}
	}
	return f
}
