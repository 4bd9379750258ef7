package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"imagefetch/internal/fetcher"
	"imagefetch/internal/models"
	"imagefetch/pkg/utils"
)

// Fetcher is satisfied by *fetcher.Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, destDir, baseName string) (*models.DownloadResult, error)
}

type Runner struct {
	fetcher   Fetcher
	outputDir string
	workers   int
	stdout    io.Writer
	stderr    io.Writer
}

func NewRunner(f Fetcher, outputDir string, workers int, stdout, stderr io.Writer) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		fetcher:   f,
		outputDir: outputDir,
		workers:   workers,
		stdout:    stdout,
		stderr:    stderr,
	}
}

type outcome struct {
	result *models.DownloadResult
	err    error
	done   chan struct{}
}

// Run downloads every record and reports each outcome in input order. A failed
// record is reported and skipped; it never stops the rest of the batch. With a
// single worker records are fetched strictly one after another.
func (r *Runner) Run(ctx context.Context, recs []models.Record) *models.BatchResult {
	startTime := time.Now()

	outcomes := make([]*outcome, len(recs))
	for i := range outcomes {
		outcomes[i] = &outcome{done: make(chan struct{})}
	}

	// Records that map to the same file wait for the previous one, so the
	// last record in input order is the one left on disk.
	previous := make([]chan struct{}, len(recs))
	lastByName := make(map[string]int)
	for i, rec := range recs {
		key := fetcher.SanitizeName(rec.Name)
		if j, ok := lastByName[key]; ok {
			previous[i] = outcomes[j].done
		}
		lastByName[key] = i
	}

	go func() {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i, rec := range recs {
			i, rec := i, rec
			g.Go(func() error {
				if previous[i] != nil {
					<-previous[i]
				}
				o := outcomes[i]
				o.result, o.err = r.fetcher.Fetch(ctx, rec.URL, r.outputDir, rec.Name)
				close(o.done)
				return nil
			})
		}
		g.Wait()
	}()

	batch := &models.BatchResult{
		RunID:        uuid.NewString(),
		OutputDir:    r.outputDir,
		TotalRecords: len(recs),
		Items:        make([]models.BatchItem, 0, len(recs)),
		StartedAt:    utils.FormatTime(startTime),
	}

	for i, rec := range recs {
		o := outcomes[i]
		<-o.done

		item := models.BatchItem{URL: rec.URL, Name: rec.Name}
		if o.err != nil {
			fmt.Fprintf(r.stderr, "Failed to download %s: %v\n", rec.URL, o.err)
			item.Error = o.err.Error()
			batch.Failed++
		} else {
			fmt.Fprintf(r.stdout, "Downloaded: %s\n", o.result.Path)
			item.Path = o.result.Path
			item.Size = o.result.Size
			batch.Succeeded++
			batch.TotalSizeBytes += o.result.Size
		}
		batch.Items = append(batch.Items, item)
	}

	batch.TotalSizeHuman = utils.FormatBytes(batch.TotalSizeBytes)
	batch.Duration = time.Since(startTime).String()
	return batch
}
