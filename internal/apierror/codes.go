package apierror

// Error type URIs following the urn:carelog:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:carelog:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:carelog:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:carelog:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:carelog:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:carelog:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:carelog:error:internal"

	// TypeUpstream indicates the health-records API failed or was unreachable (502)
	TypeUpstream = "urn:carelog:error:upstream"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:carelog:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleUnauthorized = "Authentication Required"
	TitleForbidden    = "Permission Denied"
	TitleInternal     = "Internal Server Error"
	TitleUpstream     = "Upstream Service Error"
	TitleBadRequest   = "Bad Request"
)
