package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/logger"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/prompt"
)

// Engine 校准引擎：构造 Prompt、调用外部生成服务、解析结果。
// Engine 本身不持有会话状态，可被所有会话共享。
type Engine struct {
	generator llm.Generator
	limiter   *rate.Limiter
	log       *logrus.Entry
	tracer    trace.Tracer
	now       func() time.Time
	newID     func() string
}

// Option 引擎选项
type Option func(*Engine)

// WithLimiter 出站调用前等待限流器
func WithLimiter(l *rate.Limiter) Option {
	return func(e *Engine) { e.limiter = l }
}

// WithLogger 指定日志条目
func WithLogger(l *logrus.Entry) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock 指定时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator 指定简报编号生成函数
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// New 创建引擎实例
func New(g llm.Generator, opts ...Option) *Engine {
	e := &Engine{
		generator: g,
		tracer:    otel.Tracer("mandate-calibration-engine"),
		now:       time.Now,
		newID:     briefingID,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Component("engine")
	}
	return e
}

// NewLimiter 根据 QPS/RPM 构造限流器，RPM 不大于 0 时返回 nil（不限流）
func NewLimiter(qps, rpm int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	burst := qps
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

// NewSession 创建一个独立的会话状态容器
func (e *Engine) NewSession() *Session {
	return &Session{engine: e}
}

// Calibrate 同步执行一次校准，返回最终状态（Success 或 Failed）
func (e *Engine) Calibrate(ctx context.Context, domain model.Domain, challenge string) State {
	loading, _ := Begin(State{}, domain, e.now())
	return e.finish(ctx, loading, challenge)
}

// finish 从 Loading 状态出发完成一次调用
func (e *Engine) finish(ctx context.Context, loading State, challenge string) State {
	raw, err := e.generate(ctx, prompt.Build(loading.Domain, challenge))
	next := Complete(loading, raw, err, e.now())

	elapsed := next.FinishedAt.Sub(next.StartedAt)
	switch next.Phase {
	case Success:
		next.ID = e.newID()
		e.log.WithFields(logrus.Fields{
			"domain":   next.Domain,
			"id":       next.ID,
			"sections": len(next.Briefing.Sections()),
			"elapsed":  elapsed,
		}).Info("战略简报生成完成")
	case Failed:
		// 失败原因只进运维日志，不进入用户可见状态
		if err == nil {
			err = fmt.Errorf("empty response")
		}
		e.log.WithFields(logrus.Fields{
			"domain":  next.Domain,
			"elapsed": elapsed,
		}).Errorf("校准失败，返回兜底文案: %v", err)
	}
	return next
}

// generate 调用外部服务，任何 panic 都转换为错误
func (e *Engine) generate(ctx context.Context, p string) (raw string, err error) {
	ctx, span := e.tracer.Start(ctx, "calibration.generate",
		trace.WithAttributes(attribute.Int("prompt.length", len(p))))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	e.log.Debugf("调用生成服务，prompt 长度 %d", len(p))
	raw, err = e.generator.Generate(ctx, p)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.Int("response.length", len(raw)))
	return raw, nil
}

// briefingID 生成 NX-1000 到 NX-9999 之间的编号
func briefingID() string {
	return fmt.Sprintf("NX-%d", rand.IntN(9000)+1000)
}
