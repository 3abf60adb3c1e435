package server

import "time"

// Error bodies written by middleware, matching the handler error shape
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgAuthRequired    = "A valid player token is required"
	ErrMsgForbidden       = "Forbidden"
	ErrMsgNotOwnResource  = "You can only access your own weapon configurations"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgSlowDown        = "Request rate limit exceeded"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgOwnershipDenied  = "Ownership check failed"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Suspicious activity detector limits
const (
	DetectorWindow           = 5 * time.Minute
	DetectorMaxTrackedIPs    = 10000
	RequestRateLimit         = 1000
	FailedAuthAlertThreshold = 5
)

// MaxRequestBodyBytes caps request bodies
const MaxRequestBodyBytes = 1 << 20

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
