package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/harmar-advisory/strategic_site/app/site/internal/domain"
)

// ContactRequest 联系表单
type ContactRequest struct {
	Name    string
	Email   string
	Message string
}

// ContactUseCase 联系表单业务逻辑：只生成 mailto 草稿，不发送邮件
type ContactUseCase struct {
	content *ContentUseCase
	log     *log.Helper
}

// NewContactUseCase 创建联系表单业务逻辑实例
func NewContactUseCase(content *ContentUseCase, logger log.Logger) *ContactUseCase {
	return &ContactUseCase{content: content, log: log.NewHelper(logger)}
}

// Draft 校验表单并生成邮件草稿
func (uc *ContactUseCase) Draft(ctx context.Context, req ContactRequest) (*domain.MailDraft, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	switch {
	case name == "":
		return nil, errors.BadRequest("CONTACT_INVALID", "name is required")
	case email == "":
		return nil, errors.BadRequest("CONTACT_INVALID", "email is required")
	case message == "":
		return nil, errors.BadRequest("CONTACT_INVALID", "message is required")
	}

	profile, err := uc.content.Profile(ctx)
	if err != nil {
		return nil, err
	}

	subject := "Strategic Inquiry from " + name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage: %s", name, email, message)
	draft := &domain.MailDraft{
		To:      profile.ContactEmail,
		Subject: subject,
		Body:    body,
		Href: "mailto:" + profile.ContactEmail +
			"?subject=" + encodeComponent(subject) +
			"&body=" + encodeComponent(body),
	}
	uc.log.Debugf("drafted inquiry from %s", email)
	return draft, nil
}

// encodeComponent 按 mailto 要求编码，空格编码为 %20 而不是 +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
