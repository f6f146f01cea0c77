package service

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/site/internal/usecase"
)

// SessionCookie 保存会话 ID 的 Cookie 名称
const SessionCookie = "nexus_session"

// CalibrateRequest 提交校准请求
type CalibrateRequest struct {
	Domain    string `json:"domain"`
	Challenge string `json:"challenge"`
}

// SectionReply 简报中的一段
type SectionReply struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// StateReply 会话状态
type StateReply struct {
	Phase      string         `json:"phase"`
	Domain     string         `json:"domain,omitempty"`
	ID         string         `json:"id,omitempty"`
	Sections   []SectionReply `json:"sections,omitempty"`
	Fallback   string         `json:"fallback,omitempty"`
	StartedAt  string         `json:"started_at,omitempty"`
	FinishedAt string         `json:"finished_at,omitempty"`
}

// ContactRequest 联系表单
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactReply 邮件草稿链接
type ContactReply struct {
	Href string `json:"href"`
}

// SiteService 站点 HTTP 处理器
type SiteService struct {
	ucCalibration *usecase.CalibrationUseCase
	ucContent     *usecase.ContentUseCase
	ucContact     *usecase.ContactUseCase
	log           *log.Helper
}

func NewSiteService(ucCalibration *usecase.CalibrationUseCase, ucContent *usecase.ContentUseCase, ucContact *usecase.ContactUseCase, logger log.Logger) *SiteService {
	return &SiteService{
		ucCalibration: ucCalibration,
		ucContent:     ucContent,
		ucContact:     ucContact,
		log:           log.NewHelper(logger),
	}
}

// Page 首页数据
func (s *SiteService) Page(ctx context.Context) (*usecase.Page, error) {
	return s.ucContent.Page(ctx)
}

func (s *SiteService) Calibrate(ctx context.Context, sessionID string, req *CalibrateRequest) (*StateReply, error) {
	state, err := s.ucCalibration.Submit(ctx, sessionID, req.Domain, req.Challenge)
	if err != nil {
		return nil, err
	}
	return toStateReply(state), nil
}

func (s *SiteService) GetCalibration(ctx context.Context, sessionID string) (*StateReply, error) {
	return toStateReply(s.ucCalibration.State(ctx, sessionID)), nil
}

func (s *SiteService) Contact(ctx context.Context, req *ContactRequest) (*ContactReply, error) {
	draft, err := s.ucContact.Draft(ctx, usecase.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}
	return &ContactReply{Href: draft.Href}, nil
}

// CalibrateHandler POST /api/calibrations
func (s *SiteService) CalibrateHandler(ctx http.Context) error {
	var in CalibrateRequest
	if err := ctx.Bind(&in); err != nil {
		return err
	}
	sessionID := ensureSession(ctx)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.Calibrate(c, sessionID, req.(*CalibrateRequest))
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusAccepted, out)
}

// GetCalibrationHandler GET /api/calibrations
func (s *SiteService) GetCalibrationHandler(ctx http.Context) error {
	sessionID := ensureSession(ctx)
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.GetCalibration(c, sessionID)
	})
	out, err := h(ctx, nil)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, out)
}

// ContactHandler POST /api/contact
func (s *SiteService) ContactHandler(ctx http.Context) error {
	var in ContactRequest
	if err := ctx.Bind(&in); err != nil {
		return err
	}
	h := ctx.Middleware(func(c context.Context, req interface{}) (interface{}, error) {
		return s.Contact(c, req.(*ContactRequest))
	})
	out, err := h(ctx, &in)
	if err != nil {
		return err
	}
	return ctx.Result(nethttp.StatusOK, out)
}

// HealthHandler GET /healthz
func (s *SiteService) HealthHandler(ctx http.Context) error {
	return ctx.Result(nethttp.StatusOK, map[string]string{"status": "ok"})
}

func ensureSession(ctx http.Context) string {
	return SessionID(ctx.Response(), ctx.Request())
}

// SessionID 读取会话 Cookie，不存在或非法时签发新的 uuid
func SessionID(w nethttp.ResponseWriter, r *nethttp.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	nethttp.SetCookie(w, &nethttp.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: nethttp.SameSiteLaxMode,
	})
	return id
}

func toStateReply(st engine.State) *StateReply {
	reply := &StateReply{
		Phase:    st.Phase.String(),
		Domain:   st.Domain.String(),
		ID:       st.ID,
		Fallback: st.Fallback,
	}
	if !st.StartedAt.IsZero() {
		reply.StartedAt = st.StartedAt.Format(time.RFC3339)
	}
	if !st.FinishedAt.IsZero() {
		reply.FinishedAt = st.FinishedAt.Format(time.RFC3339)
	}
	for _, sec := range st.Briefing.Sections() {
		reply.Sections = append(reply.Sections, SectionReply{Key: sec.Key, Title: sec.Title, Body: sec.Body})
	}
	return reply
}
