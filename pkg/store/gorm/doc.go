// Package gorm implements the document store interfaces of pkg/store on top
// of GORM and PostgreSQL.
//
// Documents are persisted as JSON bodies in a single documents table keyed by
// (doc_type, id), with an accompanying document_indexes table that holds the
// secondary index entries recomputed on every write. Revision tokens are
// couch-style "<n>-<hex>" stamps; updates compare-and-swap on the revision
// column so a stale writer loses with store.ErrConflict.
package gorm
