// Package merge performs field-level three-way merges between a stored
// document, a sparse additions document and a sparse deletions document.
//
// Each document type declares a Schema: an explicit table mapping every field
// to a category and an accessor pair, built once per type. No reflection is
// involved; the table is the single source of truth for what the merge
// touches.
//
// Categories:
//
//   - Identity: id, revision and the type discriminator; never merged.
//   - Scalar: last-writer-wins from the additions document.
//   - RefSet: sets of referenced ids; additions are unioned in, deletions
//     removed, so applying additions in any grouping yields the same set.
//   - NestedSet: collections of sub-records (checksums, external references,
//     annotations); addition sub-records are sparse-copied and inserted,
//     deletion sub-records remove their structural equals.
//
// Merging is a pure in-memory transform. Absent sparse fields mean "no
// changes requested" and are the normal non-error path; persistence belongs
// to the caller.
package merge
