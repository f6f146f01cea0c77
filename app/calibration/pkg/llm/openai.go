package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// OpenAI 基于 eino ChatModel 的 OpenAI 协议客户端（兼容 DeepSeek / Qwen 等）
type OpenAI struct {
	chatModel model.BaseChatModel
}

// Ensure OpenAI implements Generator
var _ Generator = (*OpenAI)(nil)

// NewOpenAI 创建 OpenAI 协议客户端
func NewOpenAI(ctx context.Context, baseURL, apiKey, modelName string) (*OpenAI, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return NewOpenAIFromModel(chatModel), nil
}

// NewOpenAIFromModel 使用已有的 ChatModel
func NewOpenAIFromModel(cm model.BaseChatModel) *OpenAI {
	return &OpenAI{chatModel: cm}
}

// Generate implements Generator
func (c *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	messages := []*schema.Message{
		{Role: schema.User, Content: prompt},
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("chat model returned no message")
	}
	return resp.Content, nil
}
