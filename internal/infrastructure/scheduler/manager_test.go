package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/logger"
)

func newTestManager(t *testing.T) *SchedulerManager {
	t.Helper()
	biztime.MustInit("Europe/Rome")

	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Stop() })
	return m
}

func TestSchedulerManager_RegisterDigestJob(t *testing.T) {
	m := newTestManager(t)
	job := BatchJobFunc(func(context.Context) (int, error) { return 0, nil })

	require.NoError(t, m.RegisterDigestJob("0 7 * * 1-5", job, time.Minute))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "compliance-expiry-digest", m.Jobs()[0].Name())
	assert.ElementsMatch(t, []string{"compliance", "digest"}, m.Jobs()[0].Tags())

	assert.Error(t, m.RegisterDigestJob("not a cron", job, time.Minute))
}

func TestSchedulerManager_Lifecycle(t *testing.T) {
	m := newTestManager(t)

	assert.False(t, m.IsStarted())
	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	require.NoError(t, m.Stop())
}

func TestSchedulerManager_RunNow(t *testing.T) {
	m := newTestManager(t)

	calls := 0
	m.RunNow(context.Background(), "digest", BatchJobFunc(func(ctx context.Context) (int, error) {
		calls++
		return 3, nil
	}))
	m.RunNow(context.Background(), "digest", BatchJobFunc(func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("smtp down")
	}))

	assert.Equal(t, 2, calls)
}
