package repository

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	closed atomic.Int32
}

func (s *fakeSession) Close() {
	s.closed.Add(1)
}

func TestSessionRepository_SaveGetDelete(t *testing.T) {
	repo := NewSessionRepository[*fakeSession](time.Minute, time.Minute)
	session := &fakeSession{}

	repo.Save("abc", session)
	assert.Equal(t, 1, repo.Count())

	got, found := repo.Get("abc")
	assert.True(t, found)
	assert.Same(t, session, got)

	_, found = repo.Get("missing")
	assert.False(t, found)

	assert.True(t, repo.Delete("abc"))
	assert.False(t, repo.Delete("abc"))
	assert.Equal(t, int32(1), session.closed.Load())
	assert.Zero(t, repo.Count())
}

func TestSessionRepository_GetDoesNotRestoreDeletedSession(t *testing.T) {
	repo := NewSessionRepository[*fakeSession](time.Minute, time.Minute)

	for i := 0; i < 200; i++ {
		session := &fakeSession{}
		repo.Save("abc", session)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.Get("abc")
		}()
		go func() {
			defer wg.Done()
			repo.Delete("abc")
		}()
		wg.Wait()

		_, found := repo.Get("abc")
		assert.False(t, found, "sessão removida voltou ao cache na iteração %d", i)
		assert.Zero(t, repo.Count())
		assert.Equal(t, int32(1), session.closed.Load())
	}
}

func TestSessionRepository_ExpiredSessionIsClosed(t *testing.T) {
	repo := NewSessionRepository[*fakeSession](20*time.Millisecond, 10*time.Millisecond)
	session := &fakeSession{}

	repo.Save("abc", session)

	assert.Eventually(t, func() bool {
		return session.closed.Load() == 1
	}, time.Second, 10*time.Millisecond)

	_, found := repo.Get("abc")
	assert.False(t, found)
}

func TestSessionRepository_GetRenewsExpiration(t *testing.T) {
	repo := NewSessionRepository[*fakeSession](200*time.Millisecond, time.Hour)
	session := &fakeSession{}
	repo.Save("abc", session)

	for i := 0; i < 4; i++ {
		time.Sleep(60 * time.Millisecond)
		_, found := repo.Get("abc")
		assert.True(t, found, "iteration %d", i)
	}
}

func TestSessionRepository_Flush(t *testing.T) {
	repo := NewSessionRepository[*fakeSession](time.Minute, time.Minute)
	a, b := &fakeSession{}, &fakeSession{}
	repo.Save("a", a)
	repo.Save("b", b)

	repo.Flush()

	assert.Zero(t, repo.Count())
	assert.Equal(t, int32(1), a.closed.Load())
	assert.Equal(t, int32(1), b.closed.Load())
}
