package merge

// FieldCategory classifies how a field behaves under merge.
type FieldCategory int

const (
	// CategoryIdentity marks id/revision/type fields, never merged.
	CategoryIdentity FieldCategory = iota
	// CategoryScalar marks last-writer-wins fields.
	CategoryScalar
	// CategoryRefSet marks string-id set fields merged by union/difference.
	CategoryRefSet
	// CategoryNestedSet marks nested sub-record collections.
	CategoryNestedSet
)

// FieldSpec describes one field of a document schema. Exactly the accessors
// matching the category are populated.
type FieldSpec[T any] struct {
	Tag      string
	Category FieldCategory

	// Scalar accessors.
	Get func(*T) (any, bool)
	Set func(*T, any)

	// RefSet accessors. A nil slice means the field is unset.
	GetSet func(*T) []string
	SetSet func(*T, []string)

	// NestedSet application, merging the collection in place on original.
	Apply func(original, additions, deletions *T)

	// NestedSet diff, filling additions/deletions from actual vs update.
	Diff func(actual, update, additions, deletions *T) bool
}

// Schema is the static field table of a document type.
type Schema[T any] struct {
	Name   string
	Fields []FieldSpec[T]
}

// Merge applies the sparse additions and deletions documents onto original,
// field by field, and returns original. Identity fields are left untouched;
// fields absent from both sparse documents are skipped.
func (s Schema[T]) Merge(original, additions, deletions *T) *T {
	for _, field := range s.Fields {
		switch field.Category {
		case CategoryIdentity:
			// never merged

		case CategoryScalar:
			if value, ok := field.Get(additions); ok {
				field.Set(original, value)
			}

		case CategoryRefSet:
			add := field.GetSet(additions)
			del := field.GetSet(deletions)
			if add == nil && del == nil {
				continue
			}
			merged := unionSet(field.GetSet(original), add)
			merged = subtractSet(merged, del)
			field.SetSet(original, merged)

		case CategoryNestedSet:
			field.Apply(original, additions, deletions)
		}
	}
	return original
}

// Diff compares a proposed update against the stored document and fills the
// sparse additions and deletions documents: fields where update differs from
// actual land in additions with the proposed value, and in deletions with the
// previously stored value. Fields unset in update carry no opinion and are
// skipped. Reports whether any field differed.
func (s Schema[T]) Diff(actual, update, additions, deletions *T) bool {
	changed := false
	for _, field := range s.Fields {
		switch field.Category {
		case CategoryIdentity:
			// never diffed

		case CategoryScalar:
			proposed, ok := field.Get(update)
			if !ok {
				continue
			}
			stored, storedSet := field.Get(actual)
			if storedSet && stored == proposed {
				continue
			}
			field.Set(additions, proposed)
			if storedSet {
				field.Set(deletions, stored)
			}
			changed = true

		case CategoryRefSet:
			proposed := field.GetSet(update)
			if proposed == nil {
				continue
			}
			stored := field.GetSet(actual)
			added := difference(proposed, stored)
			removed := difference(stored, proposed)
			if len(added) == 0 && len(removed) == 0 {
				continue
			}
			if len(added) > 0 {
				field.SetSet(additions, added)
			}
			if len(removed) > 0 {
				field.SetSet(deletions, removed)
			}
			changed = true

		case CategoryNestedSet:
			if field.Diff(actual, update, additions, deletions) {
				changed = true
			}
		}
	}
	return changed
}

// Scalar builds a scalar field spec from a pointer-field accessor.
func Scalar[T any, V any](tag string, field func(*T) **V) FieldSpec[T] {
	return FieldSpec[T]{
		Tag:      tag,
		Category: CategoryScalar,
		Get: func(doc *T) (any, bool) {
			p := *field(doc)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		Set: func(doc *T, value any) {
			v := value.(V)
			*field(doc) = &v
		},
	}
}

// RefSet builds a reference-set field spec from a slice-field accessor.
func RefSet[T any](tag string, field func(*T) *[]string) FieldSpec[T] {
	return FieldSpec[T]{
		Tag:      tag,
		Category: CategoryRefSet,
		GetSet:   func(doc *T) []string { return *field(doc) },
		SetSet:   func(doc *T, set []string) { *field(doc) = set },
	}
}

// NestedSet builds a nested-object-set field spec. Sub-records from the
// additions document are sparse-copied and inserted; sub-records from the
// deletions document remove their structural equals from the working set.
func NestedSet[T any, E any](tag string, field func(*T) *[]E, sparseCopy func(E) E, equal func(E, E) bool) FieldSpec[T] {
	return FieldSpec[T]{
		Tag:      tag,
		Category: CategoryNestedSet,
		Apply: func(original, additions, deletions *T) {
			add := *field(additions)
			del := *field(deletions)
			if add == nil && del == nil {
				return
			}
			working := *field(original)
			for _, record := range add {
				fresh := sparseCopy(record)
				if !containsRecord(working, fresh, equal) {
					working = append(working, fresh)
				}
			}
			for _, record := range del {
				working = removeRecord(working, record, equal)
			}
			*field(original) = working
		},
		Diff: func(actual, update, additions, deletions *T) bool {
			proposed := *field(update)
			if proposed == nil {
				return false
			}
			stored := *field(actual)
			var added, removed []E
			for _, record := range proposed {
				if !containsRecord(stored, record, equal) {
					added = append(added, record)
				}
			}
			for _, record := range stored {
				if !containsRecord(proposed, record, equal) {
					removed = append(removed, record)
				}
			}
			if added == nil && removed == nil {
				return false
			}
			if added != nil {
				*field(additions) = added
			}
			if removed != nil {
				*field(deletions) = removed
			}
			return true
		},
	}
}

// Identity builds an identity field spec; Merge never touches it.
func Identity[T any](tag string) FieldSpec[T] {
	return FieldSpec[T]{Tag: tag, Category: CategoryIdentity}
}

func unionSet(base, add []string) []string {
	result := make([]string, 0, len(base)+len(add))
	result = append(result, base...)
	for _, id := range add {
		if !containsString(result, id) {
			result = append(result, id)
		}
	}
	return result
}

func subtractSet(base, del []string) []string {
	if len(del) == 0 {
		return base
	}
	result := base[:0]
	for _, id := range base {
		if !containsString(del, id) {
			result = append(result, id)
		}
	}
	return result
}

// difference returns the elements of a not contained in b, preserving order.
func difference(a, b []string) []string {
	var result []string
	for _, id := range a {
		if !containsString(b, id) {
			result = append(result, id)
		}
	}
	return result
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsRecord[E any](set []E, record E, equal func(E, E) bool) bool {
	for _, v := range set {
		if equal(v, record) {
			return true
		}
	}
	return false
}

func removeRecord[E any](set []E, record E, equal func(E, E) bool) []E {
	result := set[:0]
	for _, v := range set {
		if !equal(v, record) {
			result = append(result, v)
		}
	}
	return result
}
