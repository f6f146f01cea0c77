package factory

import (
	"context"
	"fmt"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/config"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/llm"
)

// 支持的 Provider
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewGenerator 根据配置创建文本生成实例
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (llm.Generator, error) {
	provider := cfg.Provider
	if provider == "" {
		// 默认回退逻辑：配置了 base_url 视为 OpenAI 协议服务，否则使用 Gemini
		if cfg.BaseURL != "" {
			provider = ProviderOpenAI
		} else {
			provider = ProviderGemini
		}
	}

	switch provider {
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api key is missing")
		}
		return llm.NewGemini(ctx, cfg.APIKey, cfg.Model)

	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai api key is missing")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("openai model is missing")
		}
		return llm.NewOpenAI(ctx, cfg.BaseURL, cfg.APIKey, cfg.Model)

	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
