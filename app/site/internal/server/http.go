package server

import (
	"bytes"
	"embed"
	"html/template"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/harmar-advisory/strategic_site/app/site/internal/conf"
	"github.com/harmar-advisory/strategic_site/app/site/internal/service"
)

//go:embed assets/*
var assets embed.FS

var pageTpl = template.Must(template.ParseFS(assets, "assets/index.html"))

func NewHTTPServer(c *conf.Server, s *service.SiteService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			}
		}
	}

	srv := http.NewServer(opts...)

	r := srv.Route("/")
	r.POST("/api/calibrations", s.CalibrateHandler)
	r.GET("/api/calibrations", s.GetCalibrationHandler)
	r.POST("/api/contact", s.ContactHandler)
	r.GET("/healthz", s.HealthHandler)

	helper := log.NewHelper(logger)
	// 首页在服务端渲染，其余路径交给 kratos 路由
	srv.HandleFunc("/", func(w nethttp.ResponseWriter, req *nethttp.Request) {
		if req.URL.Path != "/" {
			nethttp.NotFound(w, req)
			return
		}
		page, err := s.Page(req.Context())
		if err != nil {
			nethttp.Error(w, "content unavailable", nethttp.StatusInternalServerError)
			return
		}
		service.SessionID(w, req)

		var buf bytes.Buffer
		if err := pageTpl.Execute(&buf, page); err != nil {
			helper.Errorf("render page: %v", err)
			nethttp.Error(w, "render failed", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})

	return srv
}
