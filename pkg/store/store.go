package store

import "errors"

var (
	// ErrNotFound is returned when a document id does not exist in the
	// collection.
	ErrNotFound = errors.New("store: document not found")

	// ErrConflict is returned when an update carries a stale revision.
	ErrConflict = errors.New("store: revision conflict")
)

// Collection is the per-document-type surface of the document store.
//
// Add assigns the id (unless the caller supplied one) and the initial
// revision. Update requires the revision read from the store and rejects a
// stale one with ErrConflict. GetMany tolerates missing ids: they are
// silently omitted from the result.
type Collection[T any] interface {
	Get(id string) (*T, error)
	GetMany(ids []string) ([]T, error)
	GetAll() ([]T, error)
	Add(doc *T) error
	Update(doc *T) error
	Remove(doc *T) error

	// QueryByIndex resolves a secondary index (byEmail, byExternalId,
	// byDocumentId, ...) to the matching documents.
	QueryByIndex(index, key string) ([]T, error)
}

// Secondary index names used by the compliance core.
const (
	IndexByEmail        = "byEmail"
	IndexByExternalID   = "byExternalId"
	IndexByAPIToken     = "byApiToken"
	IndexByDocumentID   = "byDocumentId"
	IndexByNodeType     = "byObligationNodeType"
	IndexByNodeText     = "byObligationNodeText"
	IndexByOblElementID = "byObligationNodeOblElementId"
	IndexByLangElement  = "byObligationLang"
	IndexByAction       = "byObligationAction"
	IndexByObject       = "byObligationObject"
	IndexByLicenseID    = "byLicenseId"
)
