package moderation

import (
	"errors"
	"time"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/merge"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/permissions"
	"github.com/toshiba/sw360/pkg/store"
)

// ModeratorsFunc resolves the moderator emails responsible for documents of a
// department. A nil func leaves the moderator set empty.
type ModeratorsFunc func(department string) []string

// LicenseModerator routes license writes: direct persist when the user holds
// WRITE, otherwise a moderation request.
type LicenseModerator struct {
	licenses   store.Collection[model.License]
	requests   RequestsStore
	moderators ModeratorsFunc
}

// NewLicenseModerator builds a license moderator.
func NewLicenseModerator(licenses store.Collection[model.License], requests RequestsStore, moderators ModeratorsFunc) *LicenseModerator {
	return &LicenseModerator{licenses: licenses, requests: requests, moderators: moderators}
}

// UpdateLicense persists the proposed license directly when the user holds
// WRITE on the stored document, and files a moderation request otherwise.
// Store conflicts and submission failures surface as FAILURE.
func (m *LicenseModerator) UpdateLicense(update *model.License, user *model.User) model.RequestStatus {
	actual, err := m.licenses.Get(update.ID)
	if err != nil {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypeLicense,
			Operation: "update", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}

	if permissions.Make(actual, user).IsActionAllowed(model.RequestedActionWrite) {
		return m.persist(update, user)
	}

	additions := &model.License{Type: model.TypeLicense}
	deletions := &model.License{Type: model.TypeLicense}
	if !merge.LicenseSchema().Diff(actual, update, additions, deletions) {
		// Nothing differs from the stored document; no request to file.
		return model.RequestStatusSuccess
	}

	req := &model.ModerationRequest{
		Type:                     model.TypeModerationRequest,
		DocumentID:               actual.ID,
		DocumentType:             model.TypeLicense,
		DocumentName:             actual.GetShortname(),
		RequestingUser:           user.Email,
		RequestingUserDepartment: user.Department,
		Moderators:               m.resolveModerators(user.Department),
		Timestamp:                time.Now().Unix(),
		ModerationState:          model.ModerationStatePending,
		LicenseAdditions:         additions,
		LicenseDeletions:         deletions,
	}
	if err := m.requests.CreateRequest(req); err != nil {
		audit.Log(audit.ModerationRequestEvent{
			RequestingUser: user.Email, DocumentID: actual.ID, DocumentType: model.TypeLicense,
			ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.ModerationRequestEvent{
		RequestID: req.ID, RequestingUser: user.Email,
		DocumentID: actual.ID, DocumentType: model.TypeLicense, Success: true,
	})
	return model.RequestStatusSentToModerator
}

// UpdateLicenseFromModerationRequest merges an accepted proposal onto the
// stored license. The caller re-enters the update path for the permission
// re-check and persistence.
func (m *LicenseModerator) UpdateLicenseFromModerationRequest(original, additions, deletions *model.License) *model.License {
	if additions == nil {
		additions = &model.License{}
	}
	if deletions == nil {
		deletions = &model.License{}
	}
	return merge.MergeLicense(original, additions, deletions)
}

// NotifyModeratorOnDelete tells the moderators of a document's open requests
// that the document was deleted directly. Best-effort: failures are logged,
// never propagated.
func (m *LicenseModerator) NotifyModeratorOnDelete(documentID string) {
	requests, err := m.requests.RequestsForDocument(documentID)
	if err != nil {
		audit.Log(audit.DeleteNotificationEvent{DocumentID: documentID, ErrorMessage: err.Error()})
		return
	}
	var moderators []string
	for i := range requests {
		if requests[i].IsOpen() {
			moderators = append(moderators, requests[i].Moderators...)
		}
	}
	audit.Log(audit.DeleteNotificationEvent{DocumentID: documentID, Moderators: moderators, Success: true})
}

func (m *LicenseModerator) persist(update *model.License, user *model.User) model.RequestStatus {
	if err := m.licenses.Update(update); err != nil {
		if !errors.Is(err, store.ErrConflict) && !errors.Is(err, store.ErrNotFound) {
			audit.Log(audit.DocumentUpdateEvent{
				UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypeLicense,
				Operation: "update", ErrorMessage: err.Error(),
			})
		}
		return model.RequestStatusFailure
	}
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypeLicense,
		Operation: "update", Success: true,
	})
	return model.RequestStatusSuccess
}

func (m *LicenseModerator) resolveModerators(department string) []string {
	if m.moderators == nil {
		return nil
	}
	return m.moderators(department)
}

// PackageInfoModerator routes SPDX package-information writes the same way
// LicenseModerator routes license writes. Package documents carry their own
// moderator set, which joins the department moderators on every request.
type PackageInfoModerator struct {
	packages   store.Collection[model.PackageInformation]
	requests   RequestsStore
	moderators ModeratorsFunc
}

// NewPackageInfoModerator builds a package-information moderator.
func NewPackageInfoModerator(packages store.Collection[model.PackageInformation], requests RequestsStore, moderators ModeratorsFunc) *PackageInfoModerator {
	return &PackageInfoModerator{packages: packages, requests: requests, moderators: moderators}
}

// UpdatePackageInformation persists directly under WRITE permission,
// otherwise files a moderation request carrying the nested-set diff.
func (m *PackageInfoModerator) UpdatePackageInformation(update *model.PackageInformation, user *model.User) model.RequestStatus {
	actual, err := m.packages.Get(update.ID)
	if err != nil {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypePackageInformation,
			Operation: "update", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}

	if permissions.Make(actual, user).IsActionAllowed(model.RequestedActionWrite) {
		if err := m.packages.Update(update); err != nil {
			return model.RequestStatusFailure
		}
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypePackageInformation,
			Operation: "update", Success: true,
		})
		return model.RequestStatusSuccess
	}

	additions := &model.PackageInformation{Type: model.TypePackageInformation}
	deletions := &model.PackageInformation{Type: model.TypePackageInformation}
	if !merge.PackageInfoSchema().Diff(actual, update, additions, deletions) {
		return model.RequestStatusSuccess
	}

	moderators := append([]string(nil), actual.Moderators...)
	moderators = append(moderators, m.resolveModerators(user.Department)...)

	req := &model.ModerationRequest{
		Type:                     model.TypeModerationRequest,
		DocumentID:               actual.ID,
		DocumentType:             model.TypePackageInformation,
		RequestingUser:           user.Email,
		RequestingUserDepartment: user.Department,
		Moderators:               moderators,
		Timestamp:                time.Now().Unix(),
		ModerationState:          model.ModerationStatePending,
		PackageInfoAdditions:     additions,
		PackageInfoDeletions:     deletions,
	}
	if actual.Name != nil {
		req.DocumentName = *actual.Name
	}
	if err := m.requests.CreateRequest(req); err != nil {
		audit.Log(audit.ModerationRequestEvent{
			RequestingUser: user.Email, DocumentID: actual.ID, DocumentType: model.TypePackageInformation,
			ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.ModerationRequestEvent{
		RequestID: req.ID, RequestingUser: user.Email,
		DocumentID: actual.ID, DocumentType: model.TypePackageInformation, Success: true,
	})
	return model.RequestStatusSentToModerator
}

// UpdatePackageInfoFromModerationRequest merges an accepted proposal onto the
// stored package information.
func (m *PackageInfoModerator) UpdatePackageInfoFromModerationRequest(original, additions, deletions *model.PackageInformation) *model.PackageInformation {
	if additions == nil {
		additions = &model.PackageInformation{}
	}
	if deletions == nil {
		deletions = &model.PackageInformation{}
	}
	return merge.MergePackageInfo(original, additions, deletions)
}

// NotifyModeratorOnDelete mirrors the license variant for package documents.
func (m *PackageInfoModerator) NotifyModeratorOnDelete(documentID string) {
	requests, err := m.requests.RequestsForDocument(documentID)
	if err != nil {
		audit.Log(audit.DeleteNotificationEvent{DocumentID: documentID, ErrorMessage: err.Error()})
		return
	}
	var moderators []string
	for i := range requests {
		if requests[i].IsOpen() {
			moderators = append(moderators, requests[i].Moderators...)
		}
	}
	audit.Log(audit.DeleteNotificationEvent{DocumentID: documentID, Moderators: moderators, Success: true})
}

func (m *PackageInfoModerator) resolveModerators(department string) []string {
	if m.moderators == nil {
		return nil
	}
	return m.moderators(department)
}
