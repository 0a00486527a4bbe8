// Package tracing records gate resolutions as OpenTelemetry spans.
//
// Each Tracer owns its provider, so resolvers with different sinks do not
// interfere and nothing is installed globally.
package tracing
