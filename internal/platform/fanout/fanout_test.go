package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/fanout"
)

// gauge tracks how many calls are in flight and the highest value seen.
type gauge struct {
	active, peak atomic.Int32
}

func (g *gauge) enter() func() {
	cur := g.active.Add(1)
	for {
		p := g.peak.Load()
		if cur <= p || g.peak.CompareAndSwap(p, cur) {
			break
		}
	}
	return func() { g.active.Add(-1) }
}

func double(_ context.Context, n int) (int, error) { return n * 2, nil }

func TestRun_NoItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []int(nil), func(context.Context, int) (int, error) {
		t.Error("fn called without items")
		return 0, nil
	})

	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 5 * time.Millisecond}

	results := fanout.Run(context.Background(), len(delays), delays,
		func(_ context.Context, d time.Duration) (time.Duration, error) {
			time.Sleep(d)
			return d, nil
		})

	require.Len(t, results, len(delays))
	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, delays[i], r.Value, "item %d", i)
	}
}

func TestRun_FailuresStayWithTheirItem(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")

	results := fanout.Run(context.Background(), 2, []int{1, 2, 3, 4}, func(_ context.Context, n int) (int, error) {
		if n%2 == 1 {
			return 0, errOdd
		}
		return n * 2, nil
	})

	assert.ErrorIs(t, results[0].Err, errOdd)
	assert.Equal(t, fanout.Result[int]{Value: 4}, results[1])
	assert.ErrorIs(t, results[2].Err, errOdd)
	assert.Equal(t, fanout.Result[int]{Value: 8}, results[3])
}

func TestRun_LimitsConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int32
	}{
		{name: "bounded", limit: 3, want: 3},
		{name: "zero runs serially", limit: 0, want: 1},
		{name: "negative runs serially", limit: -2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var g gauge
			items := make([]int, 12)

			results := fanout.Run(context.Background(), tt.limit, items, func(context.Context, int) (int, error) {
				defer g.enter()()
				time.Sleep(5 * time.Millisecond)
				return 0, nil
			})

			assert.Len(t, results, len(items))
			assert.LessOrEqual(t, g.peak.Load(), tt.want)
		})
	}
}

func TestRun_LimitAboveItemCount(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 64, []int{5, 6}, double)

	assert.Equal(t, []fanout.Result[int]{{Value: 10}, {Value: 12}}, results)
}

func TestRun_CanceledWhileWaitingForSlot(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if calls.Add(1) == 1 {
			// Hold the only slot until the waiters have seen the cancellation.
			cancel()
			time.Sleep(50 * time.Millisecond)
		}
		return n, nil
	})

	canceled := 0
	for _, r := range results {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 2, canceled)
}

func TestRun_RunningCallSeesCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := fanout.Run(ctx, 1, []int{1}, func(ctx context.Context, _ int) (int, error) {
		cancel()
		return 0, ctx.Err()
	})

	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
