package gorm

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/toshiba/sw360/pkg/store"
)

// documentRow is the storage shape of a document.
type documentRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	DocType  string `gorm:"column:doc_type;primaryKey"`
	Revision string `gorm:"column:revision;not null"`
	Body     []byte `gorm:"column:body;type:jsonb;not null"`
}

func (documentRow) TableName() string {
	return "documents"
}

// indexRow is one secondary-index entry for a document.
type indexRow struct {
	DocType   string `gorm:"column:doc_type;primaryKey"`
	IndexName string `gorm:"column:index_name;primaryKey"`
	IndexKey  string `gorm:"column:index_key;primaryKey"`
	DocID     string `gorm:"column:doc_id;primaryKey"`
}

func (indexRow) TableName() string {
	return "document_indexes"
}

// Collection is a GORM-backed document collection for one document type.
type Collection[T any] struct {
	db      *gorm.DB
	docType string

	id  func(*T) *string
	rev func(*T) *string
	typ func(*T) *string

	// indexes extracts the secondary-index entries of a document.
	indexes func(*T) map[string][]string
}

// Ensure Collection satisfies the store interface.
var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection builds a collection for one document type. The accessor
// functions locate the id, revision and type-discriminator fields of T;
// indexes may be nil for types without secondary indexes.
func NewCollection[T any](
	db *gorm.DB,
	docType string,
	id, rev, typ func(*T) *string,
	indexes func(*T) map[string][]string,
) *Collection[T] {
	return &Collection[T]{db: db, docType: docType, id: id, rev: rev, typ: typ, indexes: indexes}
}

// Get retrieves one document by id.
func (c *Collection[T]) Get(id string) (*T, error) {
	var row documentRow
	result := c.db.Where("doc_type = ? AND id = ?", c.docType, id).Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, result.Error
	}
	return c.decode(row)
}

// GetMany retrieves documents by id; missing ids are silently omitted.
func (c *Collection[T]) GetMany(ids []string) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []documentRow
	result := c.db.Where("doc_type = ? AND id IN ?", c.docType, ids).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return c.decodeAll(rows)
}

// GetAll retrieves every document of the collection's type.
func (c *Collection[T]) GetAll() ([]T, error) {
	var rows []documentRow
	result := c.db.Where("doc_type = ?", c.docType).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return c.decodeAll(rows)
}

// Add persists a new document, assigning its id (unless pre-assigned by the
// caller) and initial revision.
func (c *Collection[T]) Add(doc *T) error {
	idField := c.id(doc)
	if *idField == "" {
		*idField = newDocumentID()
	}
	if typField := c.typ(doc); *typField == "" {
		*typField = c.docType
	}
	*c.rev(doc) = initialRevision()

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", c.docType, err)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		row := documentRow{ID: *idField, DocType: c.docType, Revision: *c.rev(doc), Body: body}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return c.writeIndexes(tx, doc, *idField)
	})
}

// Update persists an existing document. The revision must match the stored
// one; a stale revision returns store.ErrConflict and a missing document
// store.ErrNotFound.
func (c *Collection[T]) Update(doc *T) error {
	id := *c.id(doc)
	oldRev := *c.rev(doc)
	newRev := nextRevision(oldRev)
	*c.rev(doc) = newRev

	body, err := json.Marshal(doc)
	if err != nil {
		*c.rev(doc) = oldRev
		return fmt.Errorf("encode %s document: %w", c.docType, err)
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&documentRow{}).
			Where("doc_type = ? AND id = ? AND revision = ?", c.docType, id, oldRev).
			Updates(map[string]interface{}{"revision": newRev, "body": body})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			tx.Model(&documentRow{}).Where("doc_type = ? AND id = ?", c.docType, id).Count(&count)
			if count == 0 {
				return store.ErrNotFound
			}
			return store.ErrConflict
		}
		if err := tx.Where("doc_type = ? AND doc_id = ?", c.docType, id).Delete(&indexRow{}).Error; err != nil {
			return err
		}
		return c.writeIndexes(tx, doc, id)
	})
	if err != nil {
		*c.rev(doc) = oldRev
		return err
	}
	return nil
}

// Remove deletes a document and its index entries.
func (c *Collection[T]) Remove(doc *T) error {
	id := *c.id(doc)
	return c.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("doc_type = ? AND id = ?", c.docType, id).Delete(&documentRow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return tx.Where("doc_type = ? AND doc_id = ?", c.docType, id).Delete(&indexRow{}).Error
	})
}

// QueryByIndex resolves a secondary index to the matching documents.
func (c *Collection[T]) QueryByIndex(index, key string) ([]T, error) {
	var rows []documentRow
	result := c.db.
		Joins("JOIN document_indexes ON document_indexes.doc_id = documents.id AND document_indexes.doc_type = documents.doc_type").
		Where("documents.doc_type = ? AND document_indexes.index_name = ? AND document_indexes.index_key = ?",
			c.docType, index, key).
		Order("documents.id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return c.decodeAll(rows)
}

func (c *Collection[T]) writeIndexes(tx *gorm.DB, doc *T, id string) error {
	if c.indexes == nil {
		return nil
	}
	// Empty keys are indexed too: obligation tree roots are looked up by
	// their empty node text.
	for index, keys := range c.indexes(doc) {
		for _, key := range keys {
			row := indexRow{DocType: c.docType, IndexName: index, IndexKey: key, DocID: id}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Collection[T]) decode(row documentRow) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(row.Body, doc); err != nil {
		return nil, fmt.Errorf("decode %s document %s: %w", c.docType, row.ID, err)
	}
	*c.id(doc) = row.ID
	*c.rev(doc) = row.Revision
	return doc, nil
}

func (c *Collection[T]) decodeAll(rows []documentRow) ([]T, error) {
	docs := make([]T, 0, len(rows))
	for _, row := range rows {
		doc, err := c.decode(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func newDocumentID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func initialRevision() string {
	return "1-" + revisionSuffix()
}

// nextRevision advances a couch-style "<n>-<hex>" stamp.
func nextRevision(current string) string {
	generation := 0
	if i := strings.IndexByte(current, '-'); i > 0 {
		generation, _ = strconv.Atoi(current[:i])
	}
	return strconv.Itoa(generation+1) + "-" + revisionSuffix()
}

func revisionSuffix() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
