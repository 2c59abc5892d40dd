// Package importer pulls license catalogues into the document store.
//
// Two catalogues are supported: the SPDX license list (licenses keyed by
// their canonical SPDX id) and the OSADL obligation checklists (per-license
// duty checklists parsed into an obligation node tree). Imports are
// idempotent: records already present are linked or refreshed, never
// duplicated, and an existing license whose text disagrees with the SPDX
// catalogue is flagged in the summary rather than overwritten.
//
// The OSADL import runs under a single-flight Gate: a second caller arriving
// while an import is active receives PROCESSING immediately instead of
// queueing.
package importer
