// Package policy decides whether a gated action gets confirmed or declined.
// A policy can be attached to a context so that code resolving gates deep in
// a call chain picks it up without extra plumbing.
package policy
