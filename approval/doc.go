// Package approval records the decision taken for a gated action: what was
// asked, whether it was confirmed and why not.
package approval
