// Package datahandler composes permissions, moderation and merge around the
// document schemas.
//
// A handler owns every durable read and write of its document type. Writes
// validate first, enforce the business invariants (checked-state
// monotonicity, in-use deletion, whitelist membership), then route through
// the moderator which persists directly or files a moderation request.
// Expected outcomes are RequestStatus values; only store-level failures and
// malformed stored documents propagate as errors, logged with the document id
// at the handler boundary.
package datahandler
