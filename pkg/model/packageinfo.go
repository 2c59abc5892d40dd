package model

// TypePackageInformation is the document type discriminator for SPDX package
// information.
const TypePackageInformation = "packageInformation"

// CheckSum is a nested sub-record of PackageInformation. Sub-fields are
// pointers so sparse moderation payloads copy only what was explicitly set.
type CheckSum struct {
	Algorithm *string `json:"algorithm,omitempty"`
	Value     *string `json:"checksumValue,omitempty"`
}

// ExternalReference points at package metadata outside SPDX.
type ExternalReference struct {
	Category *string `json:"referenceCategory,omitempty"`
	RefType  *string `json:"referenceType,omitempty"`
	Locator  *string `json:"referenceLocator,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// Annotation is a reviewer note attached to a package.
type Annotation struct {
	Annotator *string `json:"annotator,omitempty"`
	Date      *string `json:"annotationDate,omitempty"`
	AnnType   *string `json:"annotationType,omitempty"`
	Comment   *string `json:"comment,omitempty"`
}

// PackageInformation is the SPDX package data of a release.
type PackageInformation struct {
	ID       string `json:"_id,omitempty"`
	Revision string `json:"_rev,omitempty"`
	Type     string `json:"type"`

	Name             *string `json:"name,omitempty"`
	SPDXID           *string `json:"SPDXID,omitempty"`
	VersionInfo      *string `json:"versionInfo,omitempty"`
	PackageFileName  *string `json:"packageFileName,omitempty"`
	Homepage         *string `json:"homepage,omitempty"`
	CopyrightText    *string `json:"copyrightText,omitempty"`
	LicenseConcluded *string `json:"licenseConcluded,omitempty"`
	LicenseDeclared  *string `json:"licenseDeclared,omitempty"`

	Checksums    []CheckSum          `json:"checksums,omitempty"`
	ExternalRefs []ExternalReference `json:"externalRefs,omitempty"`
	Annotations  []Annotation        `json:"annotations,omitempty"`

	// SPDXDocumentID links back to the owning SPDX document.
	SPDXDocumentID string `json:"spdxDocumentId,omitempty"`

	Moderators []string `json:"moderators,omitempty"`

	Permissions   map[RequestedAction]bool `json:"permissions,omitempty"`
	DocumentState *DocumentState           `json:"documentState,omitempty"`
}

// NewPackageInformation returns a package document with the type
// discriminator set.
func NewPackageInformation(name string) *PackageInformation {
	return &PackageInformation{Type: TypePackageInformation, Name: String(name)}
}
