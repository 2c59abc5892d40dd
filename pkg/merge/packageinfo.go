package merge

import "github.com/toshiba/sw360/pkg/model"

// packageInfoSchema is the static field table of the PackageInformation
// document type. Checksums, external references and annotations are
// nested-object-sets: addition sub-records are sparse-copied into the live
// set and deletion sub-records remove their structural equals.
var packageInfoSchema = Schema[model.PackageInformation]{
	Name: model.TypePackageInformation,
	Fields: []FieldSpec[model.PackageInformation]{
		Identity[model.PackageInformation]("_id"),
		Identity[model.PackageInformation]("_rev"),
		Identity[model.PackageInformation]("type"),
		Identity[model.PackageInformation]("spdxDocumentId"),
		Scalar("name", func(p *model.PackageInformation) **string { return &p.Name }),
		Scalar("SPDXID", func(p *model.PackageInformation) **string { return &p.SPDXID }),
		Scalar("versionInfo", func(p *model.PackageInformation) **string { return &p.VersionInfo }),
		Scalar("packageFileName", func(p *model.PackageInformation) **string { return &p.PackageFileName }),
		Scalar("homepage", func(p *model.PackageInformation) **string { return &p.Homepage }),
		Scalar("copyrightText", func(p *model.PackageInformation) **string { return &p.CopyrightText }),
		Scalar("licenseConcluded", func(p *model.PackageInformation) **string { return &p.LicenseConcluded }),
		Scalar("licenseDeclared", func(p *model.PackageInformation) **string { return &p.LicenseDeclared }),
		NestedSet("checksums",
			func(p *model.PackageInformation) *[]model.CheckSum { return &p.Checksums },
			model.CheckSum.SparseCopy, model.CheckSum.Equal),
		NestedSet("externalRefs",
			func(p *model.PackageInformation) *[]model.ExternalReference { return &p.ExternalRefs },
			model.ExternalReference.SparseCopy, model.ExternalReference.Equal),
		NestedSet("annotations",
			func(p *model.PackageInformation) *[]model.Annotation { return &p.Annotations },
			model.Annotation.SparseCopy, model.Annotation.Equal),
		RefSet("moderators", func(p *model.PackageInformation) *[]string { return &p.Moderators }),
	},
}

// PackageInfoSchema returns the field table of the PackageInformation
// document type.
func PackageInfoSchema() Schema[model.PackageInformation] { return packageInfoSchema }

// MergePackageInfo merges a moderation proposal onto the stored package
// information.
func MergePackageInfo(original, additions, deletions *model.PackageInformation) *model.PackageInformation {
	return packageInfoSchema.Merge(original, additions, deletions)
}
