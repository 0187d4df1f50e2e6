package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) DeleteInputOnlyBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := fixed.Add(-24 * time.Hour)

	tests := []struct {
		name string
		n    int64
		err  error
		want int64
	}{
		{"purged", 3, nil, 3},
		{"nothing", 0, nil, 0},
		{"failure", 0, errors.New("disk full"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purger := new(MockPurger)
			purger.On("DeleteInputOnlyBefore", mock.Anything, cutoff).Return(tt.n, tt.err)

			svc := NewService(purger, 24*time.Hour, time.Hour, quietLogger())
			svc.now = func() time.Time { return fixed }

			assert.Equal(t, tt.want, svc.RunOnce(context.Background()))
			purger.AssertExpectations(t)
		})
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewService(nil, time.Hour, time.Minute, nil).Enabled())
	assert.False(t, NewService(nil, 0, time.Minute, nil).Enabled())
	assert.False(t, NewService(nil, time.Hour, 0, nil).Enabled())
}

func TestStart_Disabled(t *testing.T) {
	purger := new(MockPurger)
	svc := NewService(purger, 0, time.Minute, quietLogger())

	svc.Start(context.Background())
	svc.Stop()

	purger.AssertNotCalled(t, "DeleteInputOnlyBefore", mock.Anything, mock.Anything)
}

type countingPurger struct {
	mu    sync.Mutex
	calls int
}

func (p *countingPurger) DeleteInputOnlyBefore(context.Context, time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return 1, nil
}

func (p *countingPurger) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestStartStop(t *testing.T) {
	purger := &countingPurger{}
	svc := NewService(purger, time.Hour, 10*time.Millisecond, quietLogger())

	svc.Start(context.Background())
	require.Equal(t, 1, purger.count())

	assert.Eventually(t, func() bool { return purger.count() >= 3 }, time.Second, 5*time.Millisecond)

	svc.Stop()
	stopped := purger.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, purger.count())

	// second stop is a no-op
	svc.Stop()
}

func TestStart_ContextCancel(t *testing.T) {
	purger := &countingPurger{}
	svc := NewService(purger, time.Hour, time.Hour, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	cancel()

	done := svc.done
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not exit")
	}
	svc.Stop()
}
