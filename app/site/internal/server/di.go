package server

import (
	"github.com/google/wire"

	"github.com/harmar-advisory/strategic_site/app/site/internal/data"
	"github.com/harmar-advisory/strategic_site/app/site/internal/service"
	"github.com/harmar-advisory/strategic_site/app/site/internal/usecase"
)

// ProviderSet 是站点服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewCalibrationEngine,

	// Data providers
	data.NewData,
	data.NewContentRepo,
	data.NewSessionRepo,

	// UseCase providers
	usecase.NewCalibrationUseCase,
	usecase.NewContentUseCase,
	usecase.NewContactUseCase,

	// Service providers
	service.NewSiteService,
)
