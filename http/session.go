package http

import (
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"shoeprice/monitoring"
	"shoeprice/predictor"
)

// SessionStore keeps the last submitted inputs per browser. Least recently used
// sessions are dropped once the cache is full; a dropped session simply starts
// over from the default inputs.
type SessionStore struct {
	cache      *lru.Cache[string, predictor.PredictionInput]
	cookieName string
}

func NewSessionStore(size int, cookieName string) (*SessionStore, error) {
	cache, err := lru.New[string, predictor.PredictionInput](size)
	if err != nil {
		return nil, err
	}
	return &SessionStore{cache: cache, cookieName: cookieName}, nil
}

// Session returns the session id for r, issuing a cookie when the browser has
// none, together with its stored inputs.
func (s *SessionStore) Session(w http.ResponseWriter, r *http.Request) (string, predictor.PredictionInput) {
	if cookie, err := r.Cookie(s.cookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			if input, ok := s.cache.Get(id.String()); ok {
				return id.String(), input
			}
			return id.String(), predictor.DefaultInput()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, predictor.DefaultInput()
}

func (s *SessionStore) Save(id string, input predictor.PredictionInput) {
	s.cache.Add(id, input)
	monitoring.SessionsActive.Set(float64(s.cache.Len()))
}

func (s *SessionStore) Len() int { return s.cache.Len() }
