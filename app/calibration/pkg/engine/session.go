package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

var closedDone = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Session 单个用户会话的请求状态容器。
// 同一会话最多只有一个在途请求，新的提交覆盖旧结果而不是排队。
type Session struct {
	engine *Engine

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// Submit 提交一次校准：同步进入 Loading 并立即返回，调用在后台完成。
// 已在 Loading 时返回 ErrInFlight 且没有任何副作用。
// 后台调用与 ctx 的取消解耦：一旦发出，只会以成功或失败结束。
func (s *Session) Submit(ctx context.Context, domain model.Domain, challenge string) (State, error) {
	if !domain.Valid() {
		return s.State(), model.ErrUnknownDomain
	}
	if strings.TrimSpace(challenge) == "" {
		return s.State(), ErrEmptyChallenge
	}

	s.mu.Lock()
	loading, err := Begin(s.state, domain, s.engine.now())
	if err != nil {
		current := s.state
		s.mu.Unlock()
		return current, err
	}
	done := make(chan struct{})
	s.state = loading
	s.done = done
	s.mu.Unlock()

	go s.run(context.WithoutCancel(ctx), loading, challenge, done)

	return loading, nil
}

func (s *Session) run(ctx context.Context, loading State, challenge string, done chan struct{}) {
	defer close(done)

	final := s.engine.finish(ctx, loading, challenge)

	s.mu.Lock()
	s.state = final
	s.mu.Unlock()
}

// State 返回当前状态快照
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done 当前提交结束时关闭；没有在途请求时返回已关闭的 channel
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return closedDone
	}
	return s.done
}
