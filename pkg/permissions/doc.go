// Package permissions computes fine-grained access permissions per
// (document, user) pair.
//
// The evaluator is a pure function over its inputs: it performs no I/O, keeps
// no state between calls and is safe for unlimited concurrent use.
// Permission sets are never persisted; they are recomputed on every access.
//
// Each document type contributes a small DocumentPolicy (who counts as a
// contributor or moderator, which groups own the document); the decision
// table itself is shared. A policy may replace the table wholesale via
// ActionPolicy, as the user document type does.
package permissions
