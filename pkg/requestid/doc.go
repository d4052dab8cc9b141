// Package requestid correlates outgoing API requests with their log records.
//
// The request pipeline assigns every call an id (a UUIDv4 unless the caller
// already put one in the context with WithContext), sends it in the
// X-Request-ID header and exposes it to pkg/logger through LoggerExtractor.
package requestid
