// Package idgen issues approval request identifiers. Tests replace NewFunc
// to get stable values.
package idgen
