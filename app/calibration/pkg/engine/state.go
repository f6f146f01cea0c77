package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/briefing"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

// FallbackMessage 任何失败都统一展示的固定文案
const FallbackMessage = "The calibration engine is currently under maintenance. Please contact our office directly for a strategic consultation."

var (
	// ErrInFlight 当前会话已有请求在处理中
	ErrInFlight = errors.New("calibration already in flight")
	// ErrEmptyChallenge 挑战描述去除空白后为空
	ErrEmptyChallenge = errors.New("challenge must not be empty")
)

// Phase 请求生命周期阶段
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failed
)

var phaseNames = [...]string{"idle", "loading", "success", "failed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText 以小写名称序列化
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 解析小写名称
func (p *Phase) UnmarshalText(b []byte) error {
	for i, name := range phaseNames {
		if name == string(b) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", b)
}

// State 会话的请求状态：Idle / Loading / Success(Briefing) / Failed(Fallback)
type State struct {
	Phase      Phase
	Domain     model.Domain
	Briefing   briefing.Briefing
	Fallback   string
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Begin 提交时的状态迁移：非 Loading 状态进入 Loading，旧结果被丢弃。
// 已在 Loading 时返回 ErrInFlight，状态不变。
func Begin(s State, d model.Domain, now time.Time) (State, error) {
	if s.Phase == Loading {
		return s, ErrInFlight
	}
	return State{Phase: Loading, Domain: d, StartedAt: now}, nil
}

// Complete 调用结束时的状态迁移。
// callErr 为空且原始文本非空白时进入 Success，否则进入 Failed 并携带固定文案。
// 非 Loading 状态原样返回。
func Complete(s State, raw string, callErr error, now time.Time) State {
	if s.Phase != Loading {
		return s
	}
	next := State{Domain: s.Domain, StartedAt: s.StartedAt, FinishedAt: now}
	if callErr != nil || strings.TrimSpace(raw) == "" {
		next.Phase = Failed
		next.Fallback = FallbackMessage
		return next
	}
	next.Phase = Success
	next.Briefing = briefing.Parse(raw)
	return next
}
