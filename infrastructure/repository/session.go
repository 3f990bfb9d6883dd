package repository

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Closer é o mínimo que uma sessão precisa oferecer para ser despejada
type Closer interface {
	Close()
}

type SessionRepository[S Closer] interface {
	Save(id string, session S)
	Get(id string) (S, bool)
	Delete(id string) bool
	Count() int
	Flush()
}

// sessionRepository guarda as sessões em memória com expiração por
// inatividade. Toda sessão removida (Delete, expiração ou Flush) é fechada.
type sessionRepository[S Closer] struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSessionRepository[S Closer](ttl, cleanupInterval time.Duration) SessionRepository[S] {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(id string, value interface{}) {
		session, ok := value.(S)
		if !ok {
			return
		}

		logrus.WithField("session_id", id).Debug("session: evicted, closing dashboard")
		session.Close()
	})

	return &sessionRepository[S]{
		cache: c,
		ttl:   ttl,
	}
}

func (r *sessionRepository[S]) Save(id string, session S) {
	r.cache.Set(id, session, cache.DefaultExpiration)
}

// Get renova o prazo de expiração da sessão encontrada. Replace falha se a
// sessão foi removida entre a leitura e a renovação, então uma sessão
// fechada nunca volta ao cache.
func (r *sessionRepository[S]) Get(id string) (S, bool) {
	var zero S

	value, found := r.cache.Get(id)
	if !found {
		return zero, false
	}

	session, ok := value.(S)
	if !ok {
		return zero, false
	}

	if err := r.cache.Replace(id, session, cache.DefaultExpiration); err != nil {
		return zero, false
	}
	return session, true
}

func (r *sessionRepository[S]) Delete(id string) bool {
	if _, found := r.cache.Get(id); !found {
		return false
	}
	r.cache.Delete(id)
	return true
}

func (r *sessionRepository[S]) Count() int {
	return r.cache.ItemCount()
}

// Flush fecha e remove todas as sessões; usado no desligamento
func (r *sessionRepository[S]) Flush() {
	for id := range r.cache.Items() {
		r.cache.Delete(id)
	}
}
