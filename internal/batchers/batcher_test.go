package batchers

import (
	"context"
	"testing"
	"time"

	"logmetrics/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLine = `202.32.92.47 - - [01/Jun/1995:00:00:59 -0600] "GET /~scottp/publish.html" 200 271`

func runBatcher(t *testing.T, size int, interval time.Duration, chunks chan string) chan []models.MetricFact {
	t.Helper()

	batches := make(chan []models.MetricFact, 16)
	batcher := New(size, interval, zerolog.Nop())
	go batcher.Run(context.Background(), chunks, batches)
	return batches
}

func collect(t *testing.T, batches chan []models.MetricFact) [][]models.MetricFact {
	t.Helper()

	var got [][]models.MetricFact
	for {
		select {
		case batch, ok := <-batches:
			if !ok {
				return got
			}
			got = append(got, batch)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for batches channel to close")
		}
	}
}

func TestBatcher_SizeTriggerFlush(t *testing.T) {
	t.Parallel()

	chunks := make(chan string, 1)
	// Threshold 10 facts = two records.
	batches := runBatcher(t, 10, time.Hour, chunks)

	chunks <- validLine + "\n" + validLine
	close(chunks)

	got := collect(t, batches)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 10)
}

func TestBatcher_FinalFlushOnInputClose(t *testing.T) {
	t.Parallel()

	chunks := make(chan string, 1)
	batches := runBatcher(t, 1000, time.Hour, chunks)

	chunks <- validLine
	close(chunks)

	got := collect(t, batches)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 5)
}

func TestBatcher_IntervalTriggerFlushesPartialBuffer(t *testing.T) {
	t.Parallel()

	chunks := make(chan string)
	batches := runBatcher(t, 1000, 50*time.Millisecond, chunks)

	chunks <- validLine

	// A single buffered record must still surface once the interval fires.
	select {
	case batch := <-batches:
		assert.Len(t, batch, 5)
	case <-time.After(5 * time.Second):
		t.Fatal("interval flush never fired")
	}

	close(chunks)
	collect(t, batches)
}

func TestBatcher_EmptyBufferIntervalEmitsNothing(t *testing.T) {
	t.Parallel()

	chunks := make(chan string)
	batches := runBatcher(t, 1000, 20*time.Millisecond, chunks)

	select {
	case batch := <-batches:
		t.Fatalf("unexpected batch of %d facts from empty buffer", len(batch))
	case <-time.After(100 * time.Millisecond):
	}

	close(chunks)
	collect(t, batches)
}

func TestBatcher_MalformedLinesDropped(t *testing.T) {
	t.Parallel()

	chunks := make(chan string, 1)
	batches := runBatcher(t, 1000, time.Hour, chunks)

	chunks <- "not a log line\n" + validLine + "\ngarbage again"
	close(chunks)

	got := collect(t, batches)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 5)
}

func TestBatcher_FactOrderWithinRecord(t *testing.T) {
	t.Parallel()

	chunks := make(chan string, 1)
	batches := runBatcher(t, 1000, time.Hour, chunks)

	chunks <- validLine
	close(chunks)

	got := collect(t, batches)
	require.Len(t, got, 1)
	kinds := []models.FactKind{
		got[0][0].Kind, got[0][1].Kind, got[0][2].Kind, got[0][3].Kind, got[0][4].Kind,
	}
	assert.Equal(t, []models.FactKind{
		models.FactStatusEvent,
		models.FactPathHit,
		models.FactHostHit,
		models.FactHourHit,
		models.FactHostHourBytes,
	}, kinds)
}

func TestBatcher_ExitsWhenDownstreamGone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	chunks := make(chan string, 2)
	batches := make(chan []models.MetricFact) // unbuffered, never read
	batcher := New(5, time.Hour, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		batcher.Run(ctx, chunks, batches)
		close(done)
	}()

	chunks <- validLine // fills buffer to threshold, send blocks
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batcher did not exit after context cancellation")
	}
}

func TestBatcher_FinalFlushSurvivesCancelledContext(t *testing.T) {
	t.Parallel()

	// Graceful shutdown cancels the pipeline context before the lines
	// channel closes. With the downstream alive and the batch channel
	// roomy, the final partial batch must arrive every time, not race
	// against ctx.Done.
	for i := 0; i < 300; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		chunks := make(chan string, 1)
		chunks <- validLine
		close(chunks)

		batches := make(chan []models.MetricFact, 16)
		batcher := New(1000, time.Hour, zerolog.Nop())
		batcher.Run(ctx, chunks, batches)

		got := collect(t, batches)
		require.Len(t, got, 1, "final partial batch dropped on iteration %d", i)
		assert.Len(t, got[0], 5)
	}
}

func TestBatcher_EmptyChunkAndBlankLinesIgnored(t *testing.T) {
	t.Parallel()

	chunks := make(chan string, 2)
	batches := runBatcher(t, 1000, time.Hour, chunks)

	chunks <- ""
	chunks <- "\n\n" + validLine + "\n\n"
	close(chunks)

	got := collect(t, batches)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 5)
}
