package data

import (
	"context"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-shiori/go-readability"

	"github.com/harmar-advisory/strategic_site/app/site/internal/domain"
	"github.com/harmar-advisory/strategic_site/app/site/internal/repo"
)

// excerptLimit 自动补全摘要的最大长度
const excerptLimit = 400

type contentRepo struct {
	data *Data
	log  *log.Helper
}

func NewContentRepo(data *Data, logger log.Logger) repo.ContentRepo {
	r := &contentRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
	r.log.Debugf("loaded %d services, %d publications, %d resources",
		len(data.content.Services), len(data.content.Publications), len(data.content.Resources))
	return r
}

func (r *contentRepo) Content(ctx context.Context) (*domain.Content, error) {
	c := *r.data.content
	return &c, nil
}

// fetchExcerpt 抓取 URL 并提取正文摘要
func fetchExcerpt(timeout time.Duration) func(url string) (string, error) {
	return func(url string) (string, error) {
		article, err := readability.FromURL(url, timeout)
		if err != nil {
			return "", err
		}
		if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
			return excerpt, nil
		}
		return truncate(strings.TrimSpace(article.TextContent), excerptLimit), nil
	}
}

// enrichPublications 为缺少摘要且带链接的出版物补全摘要，失败只记录日志
func enrichPublications(pubs []domain.Publication, fetch func(url string) (string, error), logger *log.Helper) int {
	enriched := 0
	for i := range pubs {
		if pubs[i].Summary != "" || pubs[i].Link == "" {
			continue
		}
		excerpt, err := fetch(pubs[i].Link)
		if err != nil {
			logger.Warnf("failed to fetch excerpt for %q: %v", pubs[i].Title, err)
			continue
		}
		if excerpt == "" {
			continue
		}
		pubs[i].Summary = excerpt
		enriched++
	}
	return enriched
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit])) + "…"
}
