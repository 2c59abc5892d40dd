// Package model defines the document value objects of the compliance core.
//
// Documents are versioned, identified records stored in the document store as
// JSON bodies. Every document carries:
//
//   - ID: unique identifier, immutable once assigned
//   - Revision: opaque optimistic-concurrency stamp issued by the store,
//     round-tripped unchanged on read-modify-write
//   - Type: document type discriminator
//
// Merge-relevant scalar fields are pointer-valued so that the same struct can
// represent both a full document and a sparse one: nil means "no opinion",
// not "clear this field". Moderation request payloads (additions/deletions)
// rely on this.
//
// # Core documents
//
//   - User: acting principal with department and role information
//   - License: license record keyed by its shortname
//   - Obligation, ObligationNode, ObligationElement: licensing duties and
//     their tree representation
//   - LicenseType: license categorization
//   - PackageInformation: SPDX package data with nested checksum, external
//     reference and annotation sets
//   - ModerationRequest: a proposed change held pending moderator approval
package model
