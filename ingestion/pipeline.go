// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentsearch/core"
	"github.com/poiesic/talentsearch/vectorstore"
)

// Report summarizes one ingestion run. Every input record is either kept
// or dropped, never both.
type Report struct {
	Total   int
	Kept    int
	Dropped int
}

// Validate checks the kept/dropped accounting.
func (r Report) Validate() error {
	if r.Kept+r.Dropped != r.Total {
		return ErrInconsistentReport
	}
	return nil
}

// Pipeline loads pre-embedded applicants into the vector store. Records
// failing validation are dropped and counted, they never abort the run.
type Pipeline struct {
	store     vectorstore.Store
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent upserts.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many applicants each worker upserts per call.
// Default is 100.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given store.
func NewPipeline(store vectorstore.Store, opts ...Option) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store:     store,
		pool:      pool,
		batchSize: 100,
		logger:    slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates and upserts the applicants, returning an accounting of
// kept and dropped records. Records with a missing source id, negative
// experience, or embedding vectors of the wrong dimension are dropped.
// Applicants without a storage id get one derived from their source id.
func (p *Pipeline) Ingest(ctx context.Context, applicants []*core.Applicant) (Report, error) {
	report := Report{Total: len(applicants)}

	valid := make([]*core.Applicant, 0, len(applicants))
	for i, app := range applicants {
		if err := core.ValidateApplicant(app, p.store.Dim()); err != nil {
			p.logger.Warn("dropping applicant",
				"index", i,
				"sourceID", app.SourceID,
				"err", err)
			report.Dropped++
			continue
		}
		if app.Id == 0 {
			app.Id = core.IDFromContent(app.SourceID)
		}
		valid = append(valid, app)
	}

	var kept atomic.Int64
	var dropped atomic.Int64
	var wg sync.WaitGroup

	for start := 0; start < len(valid); start += p.batchSize {
		end := start + p.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.store.Upsert(ctx, batch...); err != nil {
				p.logger.Error("batch upsert failed", "batchSize", len(batch), "err", err)
				dropped.Add(int64(len(batch)))
				return
			}
			kept.Add(int64(len(batch)))
		})
		if err != nil {
			// Pool rejected the task, run it inline
			wg.Done()
			if upsertErr := p.store.Upsert(ctx, batch...); upsertErr != nil {
				p.logger.Error("batch upsert failed", "batchSize", len(batch), "err", upsertErr)
				dropped.Add(int64(len(batch)))
			} else {
				kept.Add(int64(len(batch)))
			}
		}
	}

	wg.Wait()

	report.Kept = int(kept.Load())
	report.Dropped += int(dropped.Load())

	p.logger.Info("ingestion complete",
		"total", report.Total,
		"kept", report.Kept,
		"dropped", report.Dropped)

	return report, report.Validate()
}

// IngestFile loads a dataset file and ingests its records.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (Report, error) {
	applicants, err := LoadDataset(path)
	if err != nil {
		return Report{}, err
	}
	return p.Ingest(ctx, applicants)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
