package moderation

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

func TestMain(m *testing.M) {
	audit.SetEnabled(false)
	os.Exit(m.Run())
}

func storedLicense() *model.License {
	lic := model.NewLicense("Apache-2.0")
	lic.ID = "Apache-2.0"
	lic.Revision = "2-aaa"
	lic.Fullname = model.String("Apache License 2.0")
	lic.ObligationDatabaseIDs = []string{"ob1"}
	return lic
}

func TestUpdateLicenseDirectWriteForAdmin(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	stored := storedLicense()
	update := storedLicense()
	update.Fullname = model.String("Apache License, Version 2.0")

	licenses.On("Get", "Apache-2.0").Return(stored, nil)
	licenses.On("Update", update).Return(nil)

	admin := model.NewUser("admin@example.org", "DEP")
	admin.UserGroup = model.UserGroupAdmin

	status := moderator.UpdateLicense(update, admin)

	assert.Equal(t, model.RequestStatusSuccess, status)
	licenses.AssertExpectations(t)
	requests.AssertNotCalled(t, "CreateRequest", mock.Anything)
}

func TestUpdateLicenseConflictIsFailure(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	stored := storedLicense()
	update := storedLicense()
	update.Revision = "1-stale"
	update.Fullname = model.String("changed")

	licenses.On("Get", "Apache-2.0").Return(stored, nil)
	licenses.On("Update", update).Return(store.ErrConflict)

	admin := model.NewUser("admin@example.org", "DEP")
	admin.UserGroup = model.UserGroupAdmin

	status := moderator.UpdateLicense(update, admin)

	assert.Equal(t, model.RequestStatusFailure, status)
}

func TestUpdateLicenseDeniedWriteFilesRequest(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, func(department string) []string {
		return []string{"clearing@example.org"}
	})

	stored := storedLicense()
	update := storedLicense()
	update.Fullname = model.String("Apache License, Version 2.0")
	update.ObligationDatabaseIDs = []string{"ob1", "ob2"}

	licenses.On("Get", "Apache-2.0").Return(stored, nil)

	var filed *model.ModerationRequest
	requests.On("CreateRequest", mock.Anything).Run(func(args mock.Arguments) {
		filed = args.Get(0).(*model.ModerationRequest)
	}).Return(nil)

	// Plain user, foreign department, no contributor/moderator relation.
	user := model.NewUser("dev@example.org", "OTHER")

	status := moderator.UpdateLicense(update, user)

	assert.Equal(t, model.RequestStatusSentToModerator, status)
	require.NotNil(t, filed)
	assert.Equal(t, model.ModerationStatePending, filed.ModerationState)
	assert.Equal(t, "Apache-2.0", filed.DocumentID)
	assert.Equal(t, "dev@example.org", filed.RequestingUser)
	assert.Equal(t, "OTHER", filed.RequestingUserDepartment)
	assert.Equal(t, []string{"clearing@example.org"}, filed.Moderators)

	// Additions hold exactly the fields that differ from the stored license.
	require.NotNil(t, filed.LicenseAdditions)
	require.NotNil(t, filed.LicenseAdditions.Fullname)
	assert.Equal(t, "Apache License, Version 2.0", *filed.LicenseAdditions.Fullname)
	assert.Nil(t, filed.LicenseAdditions.Text)
	assert.Nil(t, filed.LicenseAdditions.Checked)
	assert.Equal(t, []string{"ob2"}, filed.LicenseAdditions.ObligationDatabaseIDs)

	require.NotNil(t, filed.LicenseDeletions)
	require.NotNil(t, filed.LicenseDeletions.Fullname)
	assert.Equal(t, "Apache License 2.0", *filed.LicenseDeletions.Fullname)
	assert.Empty(t, filed.LicenseDeletions.ObligationDatabaseIDs)

	licenses.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateLicenseNoChangesFilesNothing(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	stored := storedLicense()
	update := storedLicense()

	licenses.On("Get", "Apache-2.0").Return(stored, nil)

	user := model.NewUser("dev@example.org", "OTHER")

	status := moderator.UpdateLicense(update, user)

	assert.Equal(t, model.RequestStatusSuccess, status)
	requests.AssertNotCalled(t, "CreateRequest", mock.Anything)
}

func TestUpdateLicenseSubmissionFailure(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	stored := storedLicense()
	update := storedLicense()
	update.Fullname = model.String("changed")

	licenses.On("Get", "Apache-2.0").Return(stored, nil)
	requests.On("CreateRequest", mock.Anything).Return(errors.New("request store unavailable"))

	user := model.NewUser("dev@example.org", "OTHER")

	status := moderator.UpdateLicense(update, user)

	assert.Equal(t, model.RequestStatusFailure, status)
}

func TestUpdateLicenseMissingDocument(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	licenses.On("Get", "gone").Return(nil, store.ErrNotFound)

	update := model.NewLicense("gone")
	update.ID = "gone"
	user := model.NewUser("dev@example.org", "DEP")

	status := moderator.UpdateLicense(update, user)

	assert.Equal(t, model.RequestStatusFailure, status)
}

func TestUpdateLicenseFromModerationRequest(t *testing.T) {
	moderator := NewLicenseModerator(nil, nil, nil)

	original := storedLicense()
	additions := &model.License{
		Type:                  model.TypeLicense,
		Fullname:              model.String("Apache License, Version 2.0"),
		ObligationDatabaseIDs: []string{"ob2"},
	}
	deletions := &model.License{
		Type:                  model.TypeLicense,
		ObligationDatabaseIDs: []string{"ob1"},
	}

	merged := moderator.UpdateLicenseFromModerationRequest(original, additions, deletions)

	assert.Equal(t, "Apache License, Version 2.0", merged.GetFullname())
	assert.Equal(t, []string{"ob2"}, merged.ObligationDatabaseIDs)
	// Identity untouched.
	assert.Equal(t, "Apache-2.0", merged.ID)
	assert.Equal(t, "2-aaa", merged.Revision)
}

func TestNotifyModeratorOnDeleteBestEffort(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	requests.On("RequestsForDocument", "Apache-2.0").
		Return([]model.ModerationRequest{
			{ModerationState: model.ModerationStatePending, Moderators: []string{"clearing@example.org"}},
			{ModerationState: model.ModerationStateRejected, Moderators: []string{"old@example.org"}},
		}, nil)

	// Must not panic or propagate anything.
	moderator.NotifyModeratorOnDelete("Apache-2.0")

	requests.AssertExpectations(t)
}

func TestNotifyModeratorOnDeleteStoreFailure(t *testing.T) {
	licenses := &MockCollection[model.License]{}
	requests := &MockRequestsStore{}
	moderator := NewLicenseModerator(licenses, requests, nil)

	requests.On("RequestsForDocument", "Apache-2.0").
		Return(nil, errors.New("request store unavailable"))

	moderator.NotifyModeratorOnDelete("Apache-2.0")

	requests.AssertExpectations(t)
}

func TestRequestOfUser(t *testing.T) {
	requests := []model.ModerationRequest{
		{RequestingUser: "a@example.org", ModerationState: model.ModerationStateRejected},
		{RequestingUser: "b@example.org", ModerationState: model.ModerationStatePending},
		{RequestingUser: "a@example.org", ModerationState: model.ModerationStateInProgress},
	}

	found := RequestOfUser(requests, "a@example.org")
	require.NotNil(t, found)
	// The rejected request no longer shadows the document.
	assert.Equal(t, model.ModerationStateInProgress, found.ModerationState)

	assert.Nil(t, RequestOfUser(requests, "nobody@example.org"))
}

func TestUpdatePackageInformationDeniedWriteFilesNestedDiff(t *testing.T) {
	packages := &MockCollection[model.PackageInformation]{}
	requests := &MockRequestsStore{}
	moderator := NewPackageInfoModerator(packages, requests, nil)

	stored := model.NewPackageInformation("zlib")
	stored.ID = "p1"
	stored.Revision = "1-aaa"
	stored.Moderators = []string{"owner@example.org"}
	stored.Checksums = []model.CheckSum{
		{Algorithm: model.String("SHA1"), Value: model.String("aaaa")},
	}

	update := model.NewPackageInformation("zlib")
	update.ID = "p1"
	update.Revision = "1-aaa"
	update.Moderators = []string{"owner@example.org"}
	update.Checksums = []model.CheckSum{
		{Algorithm: model.String("SHA1"), Value: model.String("aaaa")},
		{Algorithm: model.String("SHA256"), Value: model.String("bbbb")},
	}

	packages.On("Get", "p1").Return(stored, nil)

	var filed *model.ModerationRequest
	requests.On("CreateRequest", mock.Anything).Run(func(args mock.Arguments) {
		filed = args.Get(0).(*model.ModerationRequest)
	}).Return(nil)

	user := model.NewUser("dev@example.org", "OTHER")

	status := moderator.UpdatePackageInformation(update, user)

	assert.Equal(t, model.RequestStatusSentToModerator, status)
	require.NotNil(t, filed)
	require.NotNil(t, filed.PackageInfoAdditions)
	require.Len(t, filed.PackageInfoAdditions.Checksums, 1)
	assert.Equal(t, "SHA256", *filed.PackageInfoAdditions.Checksums[0].Algorithm)
	assert.Nil(t, filed.PackageInfoDeletions.Checksums)
	assert.Contains(t, filed.Moderators, "owner@example.org")
}

func TestUpdatePackageInformationDirectWrite(t *testing.T) {
	packages := &MockCollection[model.PackageInformation]{}
	requests := &MockRequestsStore{}
	moderator := NewPackageInfoModerator(packages, requests, nil)

	stored := model.NewPackageInformation("zlib")
	stored.ID = "p1"
	stored.Moderators = []string{"owner@example.org"}

	update := model.NewPackageInformation("zlib 1.3")
	update.ID = "p1"

	packages.On("Get", "p1").Return(stored, nil)
	packages.On("Update", update).Return(nil)

	// The document moderator writes directly.
	owner := model.NewUser("owner@example.org", "DEP")

	status := moderator.UpdatePackageInformation(update, owner)

	assert.Equal(t, model.RequestStatusSuccess, status)
	packages.AssertExpectations(t)
}
