// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/counter"
	"github.com/bitmark-inc/treestore/fault"
	"github.com/bitmark-inc/treestore/hashfn"
	"github.com/bitmark-inc/treestore/htable"
)

// Counts - operations performed by a workload, shared by all workers
type Counts struct {
	Sets       counter.Counter `json:"sets"`
	Gets       counter.Counter `json:"gets"`
	Hits       counter.Counter `json:"hits"`
	Deletes    counter.Counter `json:"deletes"`
	Removed    counter.Counter `json:"removed"`
	OutOfSpace counter.Counter `json:"outOfSpace"`
}

// total operations attempted
func (c *Counts) total() uint64 {
	return c.Sets.Uint64() + c.Gets.Uint64() + c.Deletes.Uint64() + c.OutOfSpace.Uint64()
}

// Result - summary of a completed workload
type Result struct {
	Counts      Counts            `json:"counts"`
	Interrupted bool              `json:"interrupted"`
	Elapsed     string            `json:"elapsed"`
	Statistics  htable.Statistics `json:"statistics"`
}

// workload - a table with the values it has destroyed
type workload struct {
	destroyed counter.Counter // first for 64 bit atomic alignment
	config    *Configuration
	table     *htable.Table
	allocator *avl.Allocator
	log       *logger.L
}

// create the table described by the configuration
func newWorkload(config *Configuration, log *logger.L) (*workload, error) {
	hash, err := hashfn.ByName(config.Hash)
	if nil != err {
		return nil, err
	}

	w := &workload{
		config:    config,
		allocator: avl.NewAllocator(config.ObjectLimit),
		log:       log,
	}
	w.table, err = htable.NewUsing(w.allocator, hash, config.ShardMask, w.destructor)
	if nil != err {
		log.Errorf("table creation failed: %s", err)
		return nil, err
	}
	w.table.SetLog(logger.New("htable"))

	log.Infof("hash: %s  shards: %d  object limit: %d", config.Hash, w.table.Shards(), config.ObjectLimit)
	return w, nil
}

func (w *workload) destructor(value interface{}) {
	w.destroyed.Increment()
}

// Destroyed - number of values passed to the destructor
func (w *workload) Destroyed() uint64 {
	return w.destroyed.Uint64()
}

// run - execute the configured operations across all workers
//
// cancelling the context stops the workers early, the partial counts
// are still returned
func (w *workload) run(ctx context.Context) (*Result, error) {
	var limiter *rate.Limiter
	if w.config.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(w.config.Rate), w.config.Workers)
	}

	start := time.Now()
	counts := &Counts{}

	g, gctx := errgroup.WithContext(ctx)
	share := w.config.Operations / w.config.Workers
	extra := w.config.Operations % w.config.Workers
	for i := 0; i < w.config.Workers; i += 1 {
		n := share
		if i < extra {
			n += 1
		}
		id := i
		g.Go(func() error {
			return w.worker(gctx, id, n, limiter, counts)
		})
	}
	err := g.Wait()

	result := &Result{
		Counts:  *counts,
		Elapsed: time.Since(start).String(),
	}

	if nil != err {
		if context.Canceled != err && context.DeadlineExceeded != err {
			w.log.Errorf("workload error: %s", err)
			return result, err
		}
		result.Interrupted = true
		w.log.Warnf("workload interrupted after: %s", result.Elapsed)
	}

	if !w.table.Check() {
		w.log.Critical("table check failed")
		return result, fault.ErrWorkloadCheckFailed
	}
	result.Statistics = w.table.Statistics()

	w.log.Infof("counts: %+v", result.Counts)
	w.log.Infof("statistics: %+v", result.Statistics)
	return result, nil
}

// internal: one worker performing n operations with its own random
// sequence derived from the seed
func (w *workload) worker(ctx context.Context, id int, n int, limiter *rate.Limiter, counts *Counts) error {
	log := logger.New(fmt.Sprintf("worker-%d", id))
	log.Debugf("start: operations: %d", n)

	rng := rand.New(rand.NewSource(w.config.Seed + int64(id)))

	for i := 0; i < n; i += 1 {
		if nil != limiter {
			if err := limiter.Wait(ctx); nil != err {
				if nil != ctx.Err() {
					return ctx.Err()
				}
				return err
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		key := fmt.Sprintf("key-%d", rng.Intn(w.config.KeySpace))
		op := rng.Intn(100)

		switch {
		case op < w.config.SetPercent:
			_, err := w.table.SetString(key, id*n+i)
			if fault.IsErrResource(err) {
				counts.OutOfSpace.Increment()
			} else if nil != err {
				log.Errorf("set: %s  error: %s", key, err)
				return err
			} else {
				counts.Sets.Increment()
			}

		case op < w.config.SetPercent+w.config.GetPercent:
			counts.Gets.Increment()
			_, err := w.table.GetString(key)
			if nil == err {
				counts.Hits.Increment()
			} else if !fault.IsErrNotFound(err) {
				log.Errorf("get: %s  error: %s", key, err)
				return err
			}

		default:
			counts.Deletes.Increment()
			if w.table.DeleteString(key) {
				counts.Removed.Increment()
			}
		}
	}

	log.Debug("finish")
	return nil
}

// close - destroy the table, every stored value is destroyed
func (w *workload) close() {
	w.table.Destroy()
	w.log.Infof("destroyed values: %d  allocator in use: %d", w.Destroyed(), w.allocator.InUse())
}
