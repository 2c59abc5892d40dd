// Package store defines the narrow document-store surface the compliance
// core consumes.
//
// The store is a key-value document repository with secondary indexes. The
// core never sees persistence internals; it reads and writes whole documents
// and relies on the store's revision tokens for optimistic concurrency. A
// stale revision on update is rejected with ErrConflict and never retried
// here: callers must re-fetch and resubmit.
//
// The GORM/PostgreSQL implementation lives in the gorm subpackage.
package store
