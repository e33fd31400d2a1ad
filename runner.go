package padelelo

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	MatchQueue  = "MatchQueue"
	LadderQueue = "LadderQueue"
)

// Runner settles queued events on every tick. Match results and ladder rounds
// wait in separate queues and are drained in parallel.
type Runner struct {
	quitChan chan struct{}
	quitOnce sync.Once
	interval time.Duration
	logger   *slog.Logger

	resultChan chan<- Result

	MatchQueue  *Queue
	LadderQueue *Queue
}

// NewRunner builds a Runner publishing every result on resultChan. A nil
// resultChan discards results. Results nobody receives are dropped once the
// runner stops.
func NewRunner(settler *Settler, resultChan chan<- Result, interval time.Duration) *Runner {
	return &Runner{
		quitChan:    make(chan struct{}),
		interval:    interval,
		logger:      settler.logger,
		resultChan:  resultChan,
		MatchQueue:  NewQueue(MatchQueue, settler),
		LadderQueue: NewQueue(LadderQueue, settler),
	}
}

// AddEvents queues events for the next tick.
func (r *Runner) AddEvents(es ...Event) {
	for _, e := range es {
		if e.Kind() == KindLadder {
			r.LadderQueue.AddEvents(e)
		} else {
			r.MatchQueue.AddEvents(e)
		}
	}
}

// Run blocks until ctx is done or Stop is called.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("runner stopped", slog.Any("reason", ctx.Err()))
			return
		case <-r.quitChan:
			r.logger.Info("runner stopped")
			return
		case <-ticker.C:
			for _, res := range r.Flush() {
				if r.resultChan == nil {
					continue
				}
				go r.publish(ctx, res)
			}
		}
	}
}

func (r *Runner) publish(ctx context.Context, res Result) {
	select {
	case r.resultChan <- res:
	case <-r.quitChan:
	case <-ctx.Done():
	}
}

// Flush settles everything pending right away and returns the results, match
// results first.
func (r *Runner) Flush() []Result {
	mEs := r.MatchQueue.GetAndClearEvents()
	lEs := r.LadderQueue.GetAndClearEvents()
	if len(mEs)+len(lEs) == 0 {
		return nil
	}

	var mRs, lRs []Result
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		mRs = r.MatchQueue.Settle(mEs)
		wg.Done()
	}()
	go func() {
		lRs = r.LadderQueue.Settle(lEs)
		wg.Done()
	}()
	wg.Wait()

	results := append(mRs, lRs...)
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("settlement pass",
		slog.Int("matches", len(mEs)),
		slog.Int("ladder_rounds", len(lEs)),
		slog.Int("failed", failed),
	)
	return results
}

// Stop ends Run and hands back the events that were never settled.
func (r *Runner) Stop() ([]Event, []Event) {
	es1 := r.MatchQueue.GetAndClearEvents()
	es2 := r.LadderQueue.GetAndClearEvents()
	r.quitOnce.Do(func() {
		close(r.quitChan)
	})
	return es1, es2
}
