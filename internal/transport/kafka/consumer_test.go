package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"service-food-delivery/internal/service/orders"
	testlog "service-food-delivery/internal/testutil"
)

type fakeGroup struct {
	consume func(context.Context, sarama.ConsumerGroupHandler) error
	calls   atomic.Int32
	closed  atomic.Bool
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, h sarama.ConsumerGroupHandler) error {
	g.calls.Add(1)
	if g.consume == nil {
		<-ctx.Done()
		return nil
	}
	return g.consume(ctx, h)
}

func (g *fakeGroup) Errors() <-chan error {
	ch := make(chan error)
	close(ch)
	return ch
}

func (g *fakeGroup) Close() error {
	g.closed.Store(true)
	return nil
}

func (g *fakeGroup) Pause(map[string][]int32)  {}
func (g *fakeGroup) Resume(map[string][]int32) {}
func (g *fakeGroup) PauseAll()                 {}
func (g *fakeGroup) ResumeAll()                {}

func TestNewConsumer_SkipsWhenNoKafkaConfig(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	got, err := NewConsumer(rec.Logger(), nil, "gid", "topic", func(context.Context, orders.Event) error { return nil })
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "", "topic", nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = NewConsumer(rec.Logger(), []string{"b:9092"}, "gid", "   ", nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

// Tests below replace the package-level group constructor and must not run in parallel.

func TestNewConsumer_ReturnsErrorWhenSaramaFails(t *testing.T) {
	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	sentinel := errors.New("boom")
	newConsumerGroup = func(_ []string, _ string, _ *sarama.Config) (sarama.ConsumerGroup, error) {
		return nil, sentinel
	}

	got, err := NewConsumer(testlog.New().Logger(), []string{"b:9092"}, "gid", "topic", nil)
	require.ErrorIs(t, err, sentinel)
	require.Nil(t, got)
}

func TestNewConsumer_ConfiguresGroup(t *testing.T) {
	orig := newConsumerGroup
	t.Cleanup(func() { newConsumerGroup = orig })

	var gotCfg *sarama.Config
	var gotGroup string
	newConsumerGroup = func(_ []string, groupID string, cfg *sarama.Config) (sarama.ConsumerGroup, error) {
		gotGroup, gotCfg = groupID, cfg
		return &fakeGroup{}, nil
	}

	got, err := NewConsumer(nil, []string{"b:9092"}, "delivery-estimator", "orders.placed", nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "delivery-estimator", gotGroup)
	require.Equal(t, sarama.OffsetOldest, gotCfg.Consumer.Offsets.Initial)
}

func TestConsumer_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	g := &fakeGroup{}
	c := &Consumer{group: g, topic: "orders.placed", logger: testlog.New().Logger()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	require.NoError(t, c.Close())
	require.True(t, g.closed.Load())
}

func TestConsumer_Run_LogsConsumeErrorAndRetries(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &fakeGroup{}
	g.consume = func(context.Context, sarama.ConsumerGroupHandler) error {
		if g.calls.Load() == 1 {
			return errors.New("broker down")
		}
		cancel()
		return nil
	}
	c := &Consumer{group: g, topic: "orders.placed", logger: rec.Logger(), retryDelay: time.Millisecond}

	err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(2), g.calls.Load())
	require.True(t, rec.Has("kafka consume error"))
}

func TestConsumer_Run_BacksOffAfterTransientHandlerFailure(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &fakeGroup{}
	// Like sarama, a failed ConsumeClaim ends the round without a Consume error.
	g.consume = func(ctx context.Context, h sarama.ConsumerGroupHandler) error {
		sess := &fakeSession{ctx: ctx}
		_ = h.ConsumeClaim(sess, claimOf(validEvent(t, "o1")))
		return nil
	}
	c := &Consumer{
		group:  g,
		topic:  "orders.placed",
		logger: rec.Logger(),
		handler: func(context.Context, orders.Event) error {
			return errors.New("routing unavailable")
		},
		retryDelay: 50 * time.Millisecond,
	}

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	time.Sleep(120 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	require.LessOrEqual(t, g.calls.Load(), int32(4))
	require.GreaterOrEqual(t, g.calls.Load(), int32(2))
	require.True(t, rec.Has("kafka handler failed, backing off"))
}

func TestConsumer_Run_NoBackoffAfterCleanRound(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &fakeGroup{}
	g.consume = func(context.Context, sarama.ConsumerGroupHandler) error {
		if g.calls.Load() == 3 {
			cancel()
		}
		return nil
	}
	c := &Consumer{group: g, topic: "orders.placed", logger: testlog.New().Logger(), retryDelay: time.Hour}

	err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(3), g.calls.Load())
}

func TestConsumer_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *Consumer
	require.NoError(t, c.Run(context.Background()))
	require.NoError(t, c.Close())
}
