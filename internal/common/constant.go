package common

// RequestIDHeaderName is the HTTP header that carries the per-request
// correlation id, both inbound (when a proxy set one) and outbound.
const RequestIDHeaderName = "X-Request-Id"
