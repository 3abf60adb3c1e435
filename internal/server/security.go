package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WeaponPaints_Go/internal/auth"
	"github.com/osse101/WeaponPaints_Go/internal/logger"
)

// TokenVerifier resolves a bearer token to the player's SteamID
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PlayerAuthMiddleware requires a valid player token on every non-public path
// and stores the token subject in the request context
func PlayerAuthMiddleware(verifier TokenVerifier, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, hasToken := auth.BearerToken(r.Header.Get(HeaderAuthorization))
			var steamID string
			var err error
			if hasToken {
				steamID, err = verifier.Verify(token)
			}

			if !hasToken || err != nil {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_token", hasToken,
					"ip", ip)

				writeJSONError(w, http.StatusUnauthorized, ErrMsgUnauthorized, ErrMsgAuthRequired)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPlayer(r.Context(), steamID)))
		})
	}
}

// OwnershipMiddleware rejects requests whose {steamId} URL parameter differs
// from the authenticated player
func OwnershipMiddleware(param func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			steamID := param(r)
			if err := auth.CheckOwnership(r.Context(), steamID); err != nil {
				player, _ := auth.PlayerFromContext(r.Context())
				logger.FromContext(r.Context()).Warn(LogMsgOwnershipDenied,
					"player", player,
					"target", steamID,
					"path", r.URL.Path)
				writeJSONError(w, http.StatusForbidden, ErrMsgForbidden, ErrMsgNotOwnResource)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts events for one client IP within a single detector window
type ipWindow struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector tracks per-IP request and failed-auth counts
// over a fixed window. Entries expire with the window and the number of
// tracked IPs is bounded.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(DetectorMaxTrackedIPs, DetectorWindow)
}

func newDetector(size int, window time.Duration) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: expirable.NewLRU[string, *ipWindow](size, nil, window),
	}
}

// window returns the live counters for ip. Counters are mutated in place so
// the entry keeps the expiry set when it was first added.
// Caller must hold the mutex
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	if w, ok := s.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{}
	s.windows.Add(ip, w)
	return w
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failedAuth++

	if w.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", w.failedAuth)
	}
}

// RecordRequest records a request for rate monitoring and returns false if rate limit exceeded
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++

	if w.requests > RequestRateLimit {
		if w.requests%100 == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", w.requests)
		}
		return false
	}
	return true
}

func (s *SuspiciousActivityDetector) counts(ip string) (requests, failedAuth int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows.Peek(ip); ok {
		return w.requests, w.failedAuth
	}
	return 0, 0
}

// SecurityLoggingMiddleware enforces the per-IP request rate limit
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.RecordRequest(ip) {
				writeJSONError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests, ErrMsgSlowDown)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			// rightmost entry is the hop that reached the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
