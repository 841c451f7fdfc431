package memory

import (
	"time"

	"ai-interview-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionCache holds completed sessions for read paths. A completed
// session is permanently read-only, so serving it from memory is safe.
type SessionCache struct {
	cache *cache.Cache
}

func NewSessionCache() *SessionCache {
	// Default expiration of 1 hour, purging expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionCache{
		cache: c,
	}
}

func (r *SessionCache) Put(session *entity.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionCache) Get(sessionId uuid.UUID) (*entity.Session, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionCache) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
