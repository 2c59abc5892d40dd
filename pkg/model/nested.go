package model

// Equality and sparse-copy helpers for the nested sub-records of
// PackageInformation. Two sub-records are structurally equal when every
// sub-field matches; a sparse copy carries over only sub-fields that were
// explicitly set.

// Equal reports structural equality of two checksums.
func (c CheckSum) Equal(other CheckSum) bool {
	return StrEqual(c.Algorithm, other.Algorithm) && StrEqual(c.Value, other.Value)
}

// SparseCopy returns a fresh checksum holding the explicitly set sub-fields.
func (c CheckSum) SparseCopy() CheckSum {
	var out CheckSum
	if c.Algorithm != nil {
		out.Algorithm = String(*c.Algorithm)
	}
	if c.Value != nil {
		out.Value = String(*c.Value)
	}
	return out
}

// Equal reports structural equality of two external references.
func (r ExternalReference) Equal(other ExternalReference) bool {
	return StrEqual(r.Category, other.Category) &&
		StrEqual(r.RefType, other.RefType) &&
		StrEqual(r.Locator, other.Locator) &&
		StrEqual(r.Comment, other.Comment)
}

// SparseCopy returns a fresh external reference holding the explicitly set
// sub-fields.
func (r ExternalReference) SparseCopy() ExternalReference {
	var out ExternalReference
	if r.Category != nil {
		out.Category = String(*r.Category)
	}
	if r.RefType != nil {
		out.RefType = String(*r.RefType)
	}
	if r.Locator != nil {
		out.Locator = String(*r.Locator)
	}
	if r.Comment != nil {
		out.Comment = String(*r.Comment)
	}
	return out
}

// Equal reports structural equality of two annotations.
func (a Annotation) Equal(other Annotation) bool {
	return StrEqual(a.Annotator, other.Annotator) &&
		StrEqual(a.Date, other.Date) &&
		StrEqual(a.AnnType, other.AnnType) &&
		StrEqual(a.Comment, other.Comment)
}

// SparseCopy returns a fresh annotation holding the explicitly set
// sub-fields.
func (a Annotation) SparseCopy() Annotation {
	var out Annotation
	if a.Annotator != nil {
		out.Annotator = String(*a.Annotator)
	}
	if a.Date != nil {
		out.Date = String(*a.Date)
	}
	if a.AnnType != nil {
		out.AnnType = String(*a.AnnType)
	}
	if a.Comment != nil {
		out.Comment = String(*a.Comment)
	}
	return out
}
