package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/config"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm/factory"
	calLogger "github.com/harmar-advisory/strategic_site/app/calibration/pkg/logger"
	"github.com/harmar-advisory/strategic_site/app/site/internal/conf"
)

// NewCalibrationEngine 初始化校准引擎
func NewCalibrationEngine(c *conf.Calibration, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)
	cfg := toEngineConfig(c)
	cfg.ApplyEnv()

	if err := calLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init calibration logger: %v", err)
		_ = calLogger.InitLogger("info", "") // 降级处理
	}

	gen, err := factory.NewGenerator(context.Background(), cfg.LLM)
	if err != nil {
		helper.Errorf("Failed to init generator: %v", err)
		return nil, nil, err
	}

	limiter := engine.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)
	eng := engine.New(gen,
		engine.WithLimiter(limiter),
		engine.WithLogger(calLogger.Component("engine")),
	)

	cleanup := func() {
		helper.Info("Cleaning up calibration engine")
	}
	return eng, cleanup, nil
}

// toEngineConfig 将 internal/conf.Calibration 转换为 pkg/config.Config
func toEngineConfig(c *conf.Calibration) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		return cfg
	}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider: c.Llm.Provider,
			BaseURL:  c.Llm.BaseUrl,
			APIKey:   c.Llm.ApiKey,
			Model:    c.Llm.Model,
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}
	return cfg
}
