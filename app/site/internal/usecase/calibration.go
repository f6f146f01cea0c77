package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
	"github.com/harmar-advisory/strategic_site/app/site/internal/repo"
)

// CalibrationUseCase 校准会话业务逻辑
type CalibrationUseCase struct {
	engine   *engine.Engine
	sessions repo.SessionRepo
	log      *log.Helper
}

// NewCalibrationUseCase 创建校准业务逻辑实例
func NewCalibrationUseCase(eng *engine.Engine, sessions repo.SessionRepo, logger log.Logger) *CalibrationUseCase {
	return &CalibrationUseCase{
		engine:   eng,
		sessions: sessions,
		log:      log.NewHelper(logger),
	}
}

// Submit 在会话中发起一次校准，立即返回 Loading 状态
func (uc *CalibrationUseCase) Submit(ctx context.Context, sessionID, domainTag, challenge string) (engine.State, error) {
	d, err := model.ParseDomain(domainTag)
	if err != nil {
		return engine.State{}, errors.BadRequest("DOMAIN_INVALID", err.Error())
	}
	challenge = strings.TrimSpace(challenge)
	if challenge == "" {
		return engine.State{}, errors.BadRequest("CHALLENGE_EMPTY", engine.ErrEmptyChallenge.Error())
	}

	session := uc.sessions.GetOrCreate(ctx, sessionID, uc.engine.NewSession)
	state, err := session.Submit(ctx, d, challenge)
	if stderrors.Is(err, engine.ErrInFlight) {
		return state, errors.Conflict("CALIBRATION_IN_FLIGHT", err.Error())
	}
	if err != nil {
		return state, errors.BadRequest("CALIBRATION_INVALID", err.Error())
	}
	uc.log.WithContext(ctx).Infof("session %s submitted a %s calibration", sessionID, d)
	return state, nil
}

// State 返回会话当前状态，未知会话视为 Idle
func (uc *CalibrationUseCase) State(ctx context.Context, sessionID string) engine.State {
	session := uc.sessions.Get(ctx, sessionID)
	if session == nil {
		return engine.State{}
	}
	return session.State()
}
