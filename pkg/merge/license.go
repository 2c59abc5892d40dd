package merge

import "github.com/toshiba/sw360/pkg/model"

// licenseSchema is the static field table of the License document type.
// Denormalized read-only fields (resolved obligations, license type,
// permissions, document state) are deliberately absent: they are never part
// of a moderation payload.
var licenseSchema = Schema[model.License]{
	Name: model.TypeLicense,
	Fields: []FieldSpec[model.License]{
		Identity[model.License]("_id"),
		Identity[model.License]("_rev"),
		Identity[model.License]("type"),
		Scalar("shortname", func(l *model.License) **string { return &l.Shortname }),
		Scalar("fullname", func(l *model.License) **string { return &l.Fullname }),
		Scalar("text", func(l *model.License) **string { return &l.Text }),
		Scalar("externalLicenseLink", func(l *model.License) **string { return &l.ExternalLicenseLink }),
		Scalar("licenseTypeDatabaseId", func(l *model.License) **string { return &l.LicenseTypeDatabaseID }),
		Scalar("GPLv2Compat", func(l *model.License) **model.Ternary { return &l.GPLv2Compat }),
		Scalar("GPLv3Compat", func(l *model.License) **model.Ternary { return &l.GPLv3Compat }),
		Scalar("checked", func(l *model.License) **bool { return &l.Checked }),
		RefSet("obligationDatabaseIds", func(l *model.License) *[]string { return &l.ObligationDatabaseIDs }),
	},
}

// LicenseSchema returns the field table of the License document type.
func LicenseSchema() Schema[model.License] { return licenseSchema }

// MergeLicense merges a moderation proposal onto the stored license.
func MergeLicense(original, additions, deletions *model.License) *model.License {
	return licenseSchema.Merge(original, additions, deletions)
}
