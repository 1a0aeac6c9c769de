package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/orgball2608/scenefeed/internal/session"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

const visitorCookie = "scenefeed_visitor"

func viewerEmail(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get(viewerHeader)))
}

// visitor identifies the caller. Anonymous callers are told apart by a cookie
// issued on their first request. Call it before the response is written.
func (s *Server) visitor(w http.ResponseWriter, r *http.Request) session.Visitor {
	v := session.Visitor{Email: viewerEmail(r)}
	if v.Email != "" {
		return v
	}

	if c, err := r.Cookie(visitorCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			v.ID = id.String()
			return v
		}
	}

	v.ID = uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    v.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return v
}

// limited throttles per viewer, falling back to the remote address for
// anonymous requests.
func (s *Server) limited(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := viewerEmail(r)
		if key == "" {
			key = "anon:" + remoteHost(r.RemoteAddr)
		}

		if !s.limiter.Allow(key) {
			s.logger.Warn("Rate limit exceeded", "key", key, "path", r.URL.Path)
			s.writeError(w, errors.ErrRateLimited)
			return
		}
		next(w, r)
	})
}

func remoteHost(addr string) string {
	if i := strings.LastIndex(addr, ":"); i > 0 {
		return addr[:i]
	}
	return addr
}
