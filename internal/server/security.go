package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/logger"
)

const (
	authFailureAlertThreshold = 5
	requestWindowLimit        = 1000
	monitorWindow             = 5 * time.Minute
)

// AbuseMonitor counts auth failures and request volume per client IP over a
// rolling window so the middlewares can alert and throttle.
type AbuseMonitor struct {
	mu           sync.Mutex
	authFailures map[string]int
	requests     map[string]int
	windowStart  time.Time
}

func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{
		authFailures: make(map[string]int),
		requests:     make(map[string]int),
		windowStart:  time.Now(),
	}
}

// NoteAuthFailure records a failed authentication attempt and alerts once the
// per-IP threshold is crossed.
func (m *AbuseMonitor) NoteAuthFailure(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.authFailures[ip]++
	if m.authFailures[ip] >= authFailureAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", m.authFailures[ip])
	}
}

// AllowRequest counts a request against the window and reports whether the
// client is still under the rate limit.
func (m *AbuseMonitor) AllowRequest(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requests[ip]++
	if m.requests[ip] <= requestWindowLimit {
		return true
	}
	// Log every 100th rejected request, not all of them.
	if m.requests[ip]%100 == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", m.requests[ip])
	}
	return false
}

// rollWindow clears the counters once the window has elapsed. Caller holds mu.
func (m *AbuseMonitor) rollWindow() {
	if time.Since(m.windowStart) > monitorWindow {
		m.authFailures = make(map[string]int)
		m.requests = make(map[string]int)
		m.windowStart = time.Now()
	}
}

// AuthMiddleware rejects requests without a matching API key. Public paths
// (health, metrics, swagger) bypass the check.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			// Constant-time comparison so the key cannot be probed byte by byte.
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.NoteAuthFailure(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware throttles clients that exceed the per-IP request budget.
func RateLimitMiddleware(trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.AllowRequest(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request body size.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

var securityHeaders = map[string]string{
	HeaderContentType:    HeaderValueNoSniff,
	HeaderFrameOptions:   HeaderValueSameOrigin,
	HeaderXSSProtection:  HeaderValueXSSBlock,
	HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
}

// SecurityHeadersMiddleware sets the standard hardening headers on every response.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// clientIP resolves the caller's IP. X-Forwarded-For is honored only when the
// direct peer is a trusted proxy, and then the rightmost entry wins since
// that is the hop the proxy itself vouches for.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
	}
	return remoteIP
}
