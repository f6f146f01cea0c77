package data

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"gopkg.in/yaml.v3"

	"github.com/harmar-advisory/strategic_site/app/site/internal/conf"
	"github.com/harmar-advisory/strategic_site/app/site/internal/domain"
)

//go:embed content.yaml
var contentYAML []byte

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultEnrichTimeout = 10 * time.Second
)

type Data struct {
	content    *domain.Content
	sessionTTL time.Duration
}

func NewData(c *conf.Site, logger log.Logger) (*Data, func(), error) {
	if c == nil {
		c = &conf.Site{}
	}
	helper := log.NewHelper(logger)

	content, err := LoadContent(contentYAML)
	if err != nil {
		return nil, nil, err
	}

	if c.EnrichPublications {
		timeout := parseDuration(c.EnrichTimeout, defaultEnrichTimeout)
		n := enrichPublications(content.Publications, fetchExcerpt(timeout), helper)
		helper.Infof("enriched %d publication summaries", n)
	}

	d := &Data{
		content:    content,
		sessionTTL: parseDuration(c.SessionTtl, defaultSessionTTL),
	}
	cleanup := func() {
		helper.Info("closing the data resources")
	}
	return d, cleanup, nil
}

// LoadContent 解析 YAML 格式的静态内容
func LoadContent(raw []byte) (*domain.Content, error) {
	var content domain.Content
	if err := yaml.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("failed to load site content: %w", err)
	}
	if content.Profile.ContactEmail == "" {
		return nil, fmt.Errorf("failed to load site content: contact email is missing")
	}
	return &content, nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
