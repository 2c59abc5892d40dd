// Package moderation decides whether a write goes to the store directly or
// becomes a moderation request.
//
// A per-type moderator (LicenseModerator, PackageInfoModerator) evaluates the
// acting user's WRITE permission against the stored document. A permitted
// write is persisted immediately; a denied write is diffed against the stored
// state into sparse additions/deletions payloads and enqueued as a PENDING
// ModerationRequest for a moderator to accept or reject.
//
// The moderators never retry store conflicts and never propagate submission
// failures as errors: expected outcomes are RequestStatus values, failures
// are logged through the audit trail.
package moderation
