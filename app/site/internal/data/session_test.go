package data

import (
	"context"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSessionRepo_GetOrCreate(t *testing.T) {
	eng := engine.New(llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}))
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	r := newSessionRepo(time.Minute, clock.Now, log.DefaultLogger)
	ctx := context.Background()

	assert.Nil(t, r.Get(ctx, "a"))

	created := 0
	create := func() *engine.Session {
		created++
		return eng.NewSession()
	}
	s1 := r.GetOrCreate(ctx, "a", create)
	s2 := r.GetOrCreate(ctx, "a", create)
	assert.Same(t, s1, s2)
	assert.Equal(t, 1, created)
	assert.Same(t, s1, r.Get(ctx, "a"))
	assert.Equal(t, 1, r.Len())
}

func TestSessionRepo_EvictsIdle(t *testing.T) {
	release := make(chan struct{})
	eng := engine.New(llm.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		<-release
		return "EXECUTIVE SYNTHESIS: S", nil
	}))
	clock := &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	r := newSessionRepo(time.Minute, clock.Now, log.DefaultLogger)
	ctx := context.Background()

	idle := r.GetOrCreate(ctx, "idle", eng.NewSession)
	busy := r.GetOrCreate(ctx, "busy", eng.NewSession)
	_, err := busy.Submit(ctx, model.Cyber, "challenge")
	require.NoError(t, err)

	clock.Advance(30 * time.Second)
	assert.Same(t, idle, r.Get(ctx, "idle"))

	clock.Advance(2 * time.Minute)
	r.GetOrCreate(ctx, "fresh", eng.NewSession)

	// 闲置会话被回收，在途会话保留
	assert.Nil(t, r.Get(ctx, "idle"))
	assert.Same(t, busy, r.Get(ctx, "busy"))
	assert.Equal(t, 2, r.Len())

	close(release)
	<-busy.Done()
	assert.Equal(t, engine.Success, busy.State().Phase)
}
