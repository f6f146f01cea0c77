package repo

import (
	"context"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/site/internal/domain"
)

// ContentRepo 静态内容仓库接口
type ContentRepo interface {
	// Content 获取全部静态内容
	Content(ctx context.Context) (*domain.Content, error)
}

// SessionRepo 校准会话仓库接口
type SessionRepo interface {
	// Get 获取会话，不存在时返回 nil
	Get(ctx context.Context, id string) *engine.Session
	// GetOrCreate 获取会话，不存在时通过 create 创建
	GetOrCreate(ctx context.Context, id string, create func() *engine.Session) *engine.Session
}
