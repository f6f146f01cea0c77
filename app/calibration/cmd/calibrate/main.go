package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "go.uber.org/automaxprocs"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/config"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm/factory"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/logger"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

func main() {
	var (
		confPath  string
		domainTag string
		challenge string
	)
	flag.StringVar(&confPath, "conf", "app/calibration/configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.StringVar(&domainTag, "domain", string(model.DefaultDomain), "strategic domain: Corporate, Privacy, Industrial or Cyber")
	flag.StringVar(&challenge, "challenge", "", "organizational challenge to calibrate")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(confPath)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}

	// 3. 校验输入
	domain, err := model.ParseDomain(domainTag)
	if err != nil {
		logger.Log.Fatalf("领域参数错误: %v", err)
	}
	if strings.TrimSpace(challenge) == "" {
		logger.Log.Fatal("请通过 -challenge 描述需要校准的挑战")
	}

	ctx := context.Background()

	// 4. 初始化生成服务与限流器
	gen, err := factory.NewGenerator(ctx, cfg.LLM)
	if err != nil {
		logger.Log.Fatalf("生成服务初始化失败: %v", err)
	}
	limiter := engine.NewLimiter(cfg.Concurrency.QPS, cfg.Concurrency.RPM)
	if limiter != nil {
		logger.Log.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limiter.Limit(), limiter.Burst())
	}

	eng := engine.New(gen, engine.WithLimiter(limiter), engine.WithLogger(logger.Component("engine")))

	// 5. 执行校准
	logger.Log.Infof("开始校准 [%s] 领域挑战", domain)
	state := eng.Calibrate(ctx, domain, challenge)

	if state.Phase == engine.Failed {
		fmt.Println(state.Fallback)
		os.Exit(1)
	}

	fmt.Printf("Strategic Briefing %s (%s)\n", state.ID, state.Domain)
	for _, s := range state.Briefing.Sections() {
		fmt.Printf("\n%s\n%s\n", strings.ToUpper(s.Title), s.Body)
	}
}
