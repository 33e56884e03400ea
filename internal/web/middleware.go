package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BayaslianSantiago/clases-ciencia-de-datos/internal/session"
)

const sessionKey = "dsmanual.session"

// withSession attaches the caller's session to the request. Only requests
// that change state create a session when the caller presents no live ID;
// reads are answered from a fresh session that is never stored, so browsing
// without a cookie does not grow the registry. Requests for one session run
// one at a time.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(CookieName)
		}

		e, ok := s.sessions.Get(id)
		if !ok && !changesState(c.Request.Method) {
			c.Set(sessionKey, session.New(s.sessions.newSource()))
			c.Next()
			return
		}
		if !ok {
			var err error
			if e, err = s.sessions.Create(); err != nil {
				s.logger.Warn("session rejected", "error", err, "live", s.sessions.Len())
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
				return
			}
			s.metrics.created.Inc()
			s.logger.Info("session created", "session", e.session.ID(), "live", s.sessions.Len())
		}

		sid := e.session.ID()
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     CookieName,
			Value:    sid,
			Path:     "/",
			MaxAge:   int(s.opts.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   s.opts.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		c.Header(SessionHeader, sid)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.session.Touch(time.Now())

		c.Set(sessionKey, e.session)
		c.Next()
	}
}

func changesState(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		logger.Info("request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
