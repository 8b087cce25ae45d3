package session

import (
	"net/http"

	"github.com/dmitrymomot/acmeconsole/pkg/logger"
)

// Middleware loads the request's session into the context so later
// resolution is free, and schedules activity updates. Stale cookies are
// cleared. Store failures are logged and the request continues anonymous.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.transport.GetToken(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		s, err := m.store.Get(r.Context(), token)
		if err == nil && s.IsExpired() {
			err = ErrSessionExpired
		}
		if err != nil {
			if isAnonymous(err) {
				m.transport.ClearToken(w)
			} else {
				m.log.WarnContext(r.Context(), "session lookup failed",
					logger.Error(err),
					logger.Component("session"),
				)
			}
			next.ServeHTTP(w, r)
			return
		}

		if m.shouldUpdateActivity(s) {
			m.queueActivityUpdate(s)
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
