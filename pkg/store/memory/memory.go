// Package memory implements the document store interfaces of pkg/store in
// process memory. It backs tests and acceptance scenarios that exercise the
// compliance core without a database.
package memory

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/toshiba/sw360/pkg/store"
)

// Collection is an in-memory store.Collection. Documents are kept as JSON
// copies so callers never share memory with the store, matching the
// round-trip behavior of the real document store.
type Collection[T any] struct {
	mu      sync.RWMutex
	docs    map[string][]byte
	id      func(*T) *string
	rev     func(*T) *string
	typ     func(*T) *string
	docType string
	indexes func(*T) map[string][]string
}

var _ store.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection builds an in-memory collection with the same accessor shape
// as the gorm-backed one.
func NewCollection[T any](
	docType string,
	id, rev, typ func(*T) *string,
	indexes func(*T) map[string][]string,
) *Collection[T] {
	return &Collection[T]{
		docs:    make(map[string][]byte),
		id:      id,
		rev:     rev,
		typ:     typ,
		docType: docType,
		indexes: indexes,
	}
}

func (c *Collection[T]) Get(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c.decode(body)
}

func (c *Collection[T]) GetMany(ids []string) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var docs []T
	for _, id := range ids {
		body, ok := c.docs[id]
		if !ok {
			continue
		}
		doc, err := c.decode(body)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (c *Collection[T]) GetAll() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]T, 0, len(ids))
	for _, id := range ids {
		doc, err := c.decode(c.docs[id])
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

func (c *Collection[T]) Add(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if *c.id(doc) == "" {
		*c.id(doc) = newDocumentID()
	}
	if *c.typ(doc) == "" {
		*c.typ(doc) = c.docType
	}
	if _, exists := c.docs[*c.id(doc)]; exists {
		return store.ErrConflict
	}
	*c.rev(doc) = "1-" + revisionSuffix()
	return c.put(doc)
}

func (c *Collection[T]) Update(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, ok := c.docs[*c.id(doc)]
	if !ok {
		return store.ErrNotFound
	}
	stored, err := c.decode(body)
	if err != nil {
		return err
	}
	if *c.rev(stored) != *c.rev(doc) {
		return store.ErrConflict
	}
	*c.rev(doc) = nextRevision(*c.rev(doc))
	return c.put(doc)
}

func (c *Collection[T]) Remove(doc *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[*c.id(doc)]; !ok {
		return store.ErrNotFound
	}
	delete(c.docs, *c.id(doc))
	return nil
}

func (c *Collection[T]) QueryByIndex(index, key string) ([]T, error) {
	if c.indexes == nil {
		return nil, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.docs))
	for id := range c.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matches []T
	for _, id := range ids {
		doc, err := c.decode(c.docs[id])
		if err != nil {
			return nil, err
		}
		for _, entry := range c.indexes(doc)[index] {
			if entry == key {
				matches = append(matches, *doc)
				break
			}
		}
	}
	return matches, nil
}

func (c *Collection[T]) put(doc *T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("memory: encode document: %w", err)
	}
	c.docs[*c.id(doc)] = body
	return nil
}

func (c *Collection[T]) decode(body []byte) (*T, error) {
	doc := new(T)
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("memory: decode document: %w", err)
	}
	return doc, nil
}

func newDocumentID() string {
	raw := make([]byte, 16)
	_, _ = rand.Read(raw)
	return hex.EncodeToString(raw)
}

func revisionSuffix() string {
	raw := make([]byte, 8)
	_, _ = rand.Read(raw)
	return hex.EncodeToString(raw)
}

func nextRevision(current string) string {
	generation := 1
	if idx := strings.Index(current, "-"); idx > 0 {
		if n, err := strconv.Atoi(current[:idx]); err == nil {
			generation = n + 1
		}
	}
	return fmt.Sprintf("%d-%s", generation, revisionSuffix())
}
