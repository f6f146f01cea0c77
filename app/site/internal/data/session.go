package data

import (
	"context"
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/engine"
	"github.com/harmar-advisory/strategic_site/app/site/internal/repo"
)

type sessionEntry struct {
	session  *engine.Session
	lastSeen time.Time
}

// sessionRepo 内存会话仓库，闲置超过 TTL 且没有在途请求的会话会被回收
type sessionRepo struct {
	ttl time.Duration
	now func() time.Time
	log *log.Helper

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewSessionRepo(data *Data, logger log.Logger) repo.SessionRepo {
	return newSessionRepo(data.sessionTTL, time.Now, logger)
}

func newSessionRepo(ttl time.Duration, now func() time.Time, logger log.Logger) *sessionRepo {
	return &sessionRepo{
		ttl:      ttl,
		now:      now,
		log:      log.NewHelper(logger),
		sessions: make(map[string]*sessionEntry),
	}
}

func (r *sessionRepo) Get(ctx context.Context, id string) *engine.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()
	e, ok := r.sessions[id]
	if !ok {
		return nil
	}
	e.lastSeen = r.now()
	return e.session
}

func (r *sessionRepo) GetOrCreate(ctx context.Context, id string, create func() *engine.Session) *engine.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictLocked()
	e, ok := r.sessions[id]
	if !ok {
		e = &sessionEntry{session: create()}
		r.sessions[id] = e
	}
	e.lastSeen = r.now()
	return e.session
}

func (r *sessionRepo) evictLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, e := range r.sessions {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.session.State().Phase == engine.Loading {
			continue
		}
		delete(r.sessions, id)
		r.log.Debugf("evicted idle session %s", id)
	}
}

// Len 当前会话数量
func (r *sessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
