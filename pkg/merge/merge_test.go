package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toshiba/sw360/pkg/model"
)

func baseLicense() *model.License {
	lic := model.NewLicense("Apache-2.0")
	lic.ID = "Apache-2.0"
	lic.Revision = "4-abc"
	lic.Fullname = model.String("Apache License 2.0")
	lic.Text = model.String("original text")
	lic.ObligationDatabaseIDs = []string{"A", "B"}
	return lic
}

func TestMergeLicenseScalars(t *testing.T) {
	original := baseLicense()
	additions := &model.License{
		Fullname: model.String("Apache License, Version 2.0"),
		Checked:  model.Bool(true),
	}
	deletions := &model.License{Fullname: model.String("Apache License 2.0")}

	merged := MergeLicense(original, additions, deletions)

	assert.Equal(t, "Apache License, Version 2.0", merged.GetFullname())
	assert.True(t, merged.IsChecked())
	// Fields absent from the proposal keep their stored value.
	assert.Equal(t, "original text", merged.GetText())
	// Identity is never merged.
	assert.Equal(t, "Apache-2.0", merged.ID)
	assert.Equal(t, "4-abc", merged.Revision)
}

func TestMergeLicenseIsIdempotent(t *testing.T) {
	additions := &model.License{Fullname: model.String("renamed")}
	deletions := &model.License{}

	once := MergeLicense(baseLicense(), additions, deletions)
	twice := MergeLicense(MergeLicense(baseLicense(), additions, deletions), additions, deletions)

	assert.Equal(t, once, twice)
}

func TestMergeLicenseRefSetUnion(t *testing.T) {
	original := baseLicense()
	additions := &model.License{ObligationDatabaseIDs: []string{"C", "A"}}
	deletions := &model.License{ObligationDatabaseIDs: []string{"B"}}

	merged := MergeLicense(original, additions, deletions)

	// Union then difference; A is not duplicated.
	assert.Equal(t, []string{"A", "C"}, merged.ObligationDatabaseIDs)
}

func TestMergeLicenseRefSetOrderIndependent(t *testing.T) {
	left := MergeLicense(baseLicense(),
		&model.License{ObligationDatabaseIDs: []string{"C", "D"}}, &model.License{})
	right := MergeLicense(baseLicense(),
		&model.License{ObligationDatabaseIDs: []string{"D", "C"}}, &model.License{})

	assert.ElementsMatch(t, left.ObligationDatabaseIDs, right.ObligationDatabaseIDs)
}

func TestMergeLicenseEmptyProposalIsNoop(t *testing.T) {
	original := baseLicense()
	merged := MergeLicense(original, &model.License{}, &model.License{})

	assert.Equal(t, baseLicense(), merged)
}

func TestDiffLicenseScalar(t *testing.T) {
	actual := baseLicense()
	update := baseLicense()
	update.Fullname = model.String("Apache License, Version 2.0")

	additions := &model.License{}
	deletions := &model.License{}
	changed := LicenseSchema().Diff(actual, update, additions, deletions)

	require.True(t, changed)
	require.NotNil(t, additions.Fullname)
	assert.Equal(t, "Apache License, Version 2.0", *additions.Fullname)
	require.NotNil(t, deletions.Fullname)
	assert.Equal(t, "Apache License 2.0", *deletions.Fullname)
	// Untouched fields stay out of the sparse payloads.
	assert.Nil(t, additions.Text)
	assert.Nil(t, deletions.Text)
}

func TestDiffLicenseUnsetFieldsCarryNoOpinion(t *testing.T) {
	actual := baseLicense()
	update := &model.License{ID: actual.ID, Type: model.TypeLicense}

	additions := &model.License{}
	deletions := &model.License{}
	changed := LicenseSchema().Diff(actual, update, additions, deletions)

	assert.False(t, changed)
}

func TestDiffLicenseRefSet(t *testing.T) {
	actual := baseLicense()
	update := baseLicense()
	update.ObligationDatabaseIDs = []string{"B", "C"}

	additions := &model.License{}
	deletions := &model.License{}
	changed := LicenseSchema().Diff(actual, update, additions, deletions)

	require.True(t, changed)
	assert.Equal(t, []string{"C"}, additions.ObligationDatabaseIDs)
	assert.Equal(t, []string{"A"}, deletions.ObligationDatabaseIDs)
}

func TestDiffThenMergeRoundTrip(t *testing.T) {
	actual := baseLicense()
	update := baseLicense()
	update.Fullname = model.String("renamed")
	update.Checked = model.Bool(true)
	update.ObligationDatabaseIDs = []string{"A", "C"}

	additions := &model.License{}
	deletions := &model.License{}
	require.True(t, LicenseSchema().Diff(actual, update, additions, deletions))

	merged := MergeLicense(baseLicense(), additions, deletions)

	assert.Equal(t, update.GetFullname(), merged.GetFullname())
	assert.Equal(t, update.IsChecked(), merged.IsChecked())
	assert.ElementsMatch(t, update.ObligationDatabaseIDs, merged.ObligationDatabaseIDs)
}

func basePackage() *model.PackageInformation {
	pkg := model.NewPackageInformation("glibc")
	pkg.ID = "pkg1"
	pkg.Revision = "2-def"
	pkg.VersionInfo = model.String("2.35")
	pkg.Checksums = []model.CheckSum{
		{Algorithm: model.String("SHA1"), Value: model.String("0123")},
	}
	pkg.Moderators = []string{"owner@example.org"}
	return pkg
}

func TestMergePackageInfoNestedSet(t *testing.T) {
	original := basePackage()
	additions := &model.PackageInformation{
		Checksums: []model.CheckSum{
			{Algorithm: model.String("SHA256"), Value: model.String("deadbeef")},
		},
	}
	deletions := &model.PackageInformation{
		Checksums: []model.CheckSum{
			{Algorithm: model.String("SHA1"), Value: model.String("0123")},
		},
	}

	merged := MergePackageInfo(original, additions, deletions)

	require.Len(t, merged.Checksums, 1)
	assert.Equal(t, "SHA256", *merged.Checksums[0].Algorithm)
}

func TestMergePackageInfoNestedSetSkipsDuplicates(t *testing.T) {
	original := basePackage()
	additions := &model.PackageInformation{
		Checksums: []model.CheckSum{
			{Algorithm: model.String("SHA1"), Value: model.String("0123")},
		},
	}

	merged := MergePackageInfo(original, additions, &model.PackageInformation{})

	assert.Len(t, merged.Checksums, 1)
}

func TestDiffPackageInfoNestedSet(t *testing.T) {
	actual := basePackage()
	update := basePackage()
	update.Checksums = []model.CheckSum{
		{Algorithm: model.String("SHA1"), Value: model.String("0123")},
		{Algorithm: model.String("SHA256"), Value: model.String("deadbeef")},
	}

	additions := &model.PackageInformation{}
	deletions := &model.PackageInformation{}
	changed := PackageInfoSchema().Diff(actual, update, additions, deletions)

	require.True(t, changed)
	require.Len(t, additions.Checksums, 1)
	assert.Equal(t, "SHA256", *additions.Checksums[0].Algorithm)
	assert.Empty(t, deletions.Checksums)
}

func TestDiffPackageInfoNoChanges(t *testing.T) {
	additions := &model.PackageInformation{}
	deletions := &model.PackageInformation{}

	changed := PackageInfoSchema().Diff(basePackage(), basePackage(), additions, deletions)

	assert.False(t, changed)
}

func TestMergePackageInfoIdentityUntouched(t *testing.T) {
	original := basePackage()
	original.SPDXDocumentID = "spdx1"
	additions := &model.PackageInformation{
		ID: "evil", Revision: "9-evil", SPDXDocumentID: "spdx2",
		Name: model.String("renamed"),
	}

	merged := MergePackageInfo(original, additions, &model.PackageInformation{})

	assert.Equal(t, "pkg1", merged.ID)
	assert.Equal(t, "2-def", merged.Revision)
	assert.Equal(t, "spdx1", merged.SPDXDocumentID)
	assert.Equal(t, "renamed", *merged.Name)
}
