package example

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	padelelo "github.com/hedon954/padel-elo"
)

func Test_RunnerFlush(t *testing.T) {
	settler, _ := newTestSettler(t)
	runner := padelelo.NewRunner(settler, nil, time.Hour)

	a, b := pairOf("A", 1500, 1500), pairOf("B", 1500, 1500)
	c, d := pairOf("C", 1500, 1600), pairOf("D", 1550, 1650)
	ladder := []*Pair{pairOf("L1", 1500, 1500), pairOf("L2", 1500, 1500)}

	runner.AddEvents(
		padelelo.NewMatchEvent(a, b, padelelo.MatchScore{A: 7, B: 5}),
		padelelo.NewLadderEvent(Pairs(ladder...), lanes(1, 1, 2, 2)),
		padelelo.NewMatchEvent(c, d, padelelo.MatchScore{A: 6, B: 3}),
	)
	assert.Equal(t, 2, runner.MatchQueue.Len())
	assert.Equal(t, 1, runner.LadderQueue.Len())

	results := runner.Flush()
	require.Len(t, results, 3)
	for _, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, res.Event.ID(), res.Settlement.EventID)
	}
	assert.Equal(t, padelelo.KindMatch, results[0].Event.Kind())
	assert.Equal(t, padelelo.KindMatch, results[1].Event.Kind())
	assert.Equal(t, padelelo.KindLadder, results[2].Event.Kind())

	assert.Equal(t, []int{1552, 1552}, a.Ratings())
	assert.Equal(t, []int{1557, 1657}, c.Ratings())
	assert.Equal(t, 0, runner.MatchQueue.Len())
	assert.Nil(t, runner.Flush())
}

func Test_RunnerReportsFailures(t *testing.T) {
	settler, _ := newTestSettler(t)
	runner := padelelo.NewRunner(settler, nil, time.Hour)

	runner.AddEvents(padelelo.NewMatchEvent(pairOf("A", 1500, 1500), pairOf("B", 1500, 1500),
		padelelo.MatchScore{A: 2, B: 2}))

	results := runner.Flush()
	require.Len(t, results, 1)
	var outcomeErr *padelelo.InvalidOutcomeError
	assert.True(t, errors.As(results[0].Err, &outcomeErr))
	assert.Nil(t, results[0].Settlement)
}

func Test_RunnerRun(t *testing.T) {
	settler, _ := newTestSettler(t)
	results := make(chan padelelo.Result, 8)
	runner := padelelo.NewRunner(settler, results, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(done)
	}()

	gen := NewGenerator(7)
	var events []padelelo.Event
	for i := 0; i < 4; i++ {
		teams := gen.Pairs(2)
		events = append(events, padelelo.NewMatchEvent(teams[0], teams[1], gen.MatchScore()))
	}
	runner.AddEvents(events...)

	seen := make(map[string]bool)
	for range events {
		select {
		case res := <-results:
			require.NoError(t, res.Err)
			seen[res.Event.ID()] = true
		case <-ctx.Done():
			t.Fatal("runner did not settle every event")
		}
	}
	for _, e := range events {
		assert.True(t, seen[e.ID()])
	}

	pendingMatches, pendingRounds := runner.Stop()
	assert.Empty(t, pendingMatches)
	assert.Empty(t, pendingRounds)
	<-done
}

func Test_RunnerStopReturnsPending(t *testing.T) {
	settler, _ := newTestSettler(t)
	runner := padelelo.NewRunner(settler, nil, time.Hour)

	runner.AddEvents(
		padelelo.NewMatchEvent(pairOf("A", 1500, 1500), pairOf("B", 1500, 1500), padelelo.MatchScore{A: 6, B: 1}),
		padelelo.NewLadderEvent(Pairs(pairOf("L1", 1500, 1500)), lanes(1, 1)),
	)

	matches, rounds := runner.Stop()
	assert.Len(t, matches, 1)
	assert.Len(t, rounds, 1)

	// a stopped runner exits immediately and Stop is safe to repeat
	runner.Run(context.Background())
	runner.Stop()
}

func Test_RunnerDropsUnreadResultsOnStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	settler, _ := newTestSettler(t)
	results := make(chan padelelo.Result)
	runner := padelelo.NewRunner(settler, results, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		runner.Run(context.Background())
		close(done)
	}()

	runner.AddEvents(
		padelelo.NewMatchEvent(pairOf("A", 1500, 1500), pairOf("B", 1500, 1500), padelelo.MatchScore{A: 6, B: 1}),
		padelelo.NewMatchEvent(pairOf("C", 1500, 1500), pairOf("D", 1500, 1500), padelelo.MatchScore{A: 1, B: 6}),
	)
	require.Eventually(t, func() bool { return runner.MatchQueue.Len() == 0 }, 5*time.Second, time.Millisecond)

	runner.Stop()
	<-done
}
