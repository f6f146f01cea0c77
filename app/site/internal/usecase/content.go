package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
	"github.com/harmar-advisory/strategic_site/app/site/internal/domain"
	"github.com/harmar-advisory/strategic_site/app/site/internal/repo"
)

// featuredResources 首页资源区展示的链接数量
const featuredResources = 6

// Page 首页渲染所需的全部数据
type Page struct {
	Profile      domain.Profile
	Services     []domain.Service
	Publications []domain.Publication
	Resources    []domain.Resource
	Domains      []model.DomainInfo
	Default      model.Domain
}

// ContentUseCase 静态内容业务逻辑
type ContentUseCase struct {
	repo repo.ContentRepo
	log  *log.Helper
}

// NewContentUseCase 创建内容业务逻辑实例
func NewContentUseCase(repo repo.ContentRepo, logger log.Logger) *ContentUseCase {
	return &ContentUseCase{repo: repo, log: log.NewHelper(logger)}
}

// Page 组装首页内容
func (uc *ContentUseCase) Page(ctx context.Context) (*Page, error) {
	c, err := uc.repo.Content(ctx)
	if err != nil {
		uc.log.Errorf("load content: %v", err)
		return nil, err
	}

	resources := c.Resources
	if len(resources) > featuredResources {
		resources = resources[:featuredResources]
	}

	return &Page{
		Profile:      c.Profile,
		Services:     c.Services,
		Publications: c.Publications,
		Resources:    resources,
		Domains:      model.Domains(),
		Default:      model.DefaultDomain,
	}, nil
}

// Profile 返回联系方式等基本信息
func (uc *ContentUseCase) Profile(ctx context.Context) (domain.Profile, error) {
	c, err := uc.repo.Content(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	return c.Profile, nil
}
