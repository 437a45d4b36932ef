// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/finance-flow/internal/logger"
)

// PeriodicWorker calls job every interval until the context passed to Run
// is done. The first call happens one interval after Run.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)
	logger   *logger.Logger
}

func NewPeriodicWorker(name string, interval time.Duration, job func(ctx context.Context), logger *logger.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// Run starts the ticking goroutine. A non-positive interval disables the
// worker.
func (p *PeriodicWorker) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn().Str("worker", p.name).Msg("worker disabled: non-positive interval")
		return
	}

	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("starting worker")

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info().Str("worker", p.name).Msg("worker stopped")
				return
			case <-ticker.C:
				p.job(ctx)
			}
		}
	}()
}
