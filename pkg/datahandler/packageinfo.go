package datahandler

import (
	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/moderation"
	"github.com/toshiba/sw360/pkg/permissions"
	"github.com/toshiba/sw360/pkg/store"
)

// PackageInfoHandler owns SPDX package-information documents.
type PackageInfoHandler struct {
	packages  store.Collection[model.PackageInformation]
	requests  moderation.RequestsStore
	moderator *moderation.PackageInfoModerator
}

// NewPackageInfoHandler wires a package-information handler and its
// moderator.
func NewPackageInfoHandler(
	packages store.Collection[model.PackageInformation],
	requests moderation.RequestsStore,
	moderators moderation.ModeratorsFunc,
) *PackageInfoHandler {
	return &PackageInfoHandler{
		packages:  packages,
		requests:  requests,
		moderator: moderation.NewPackageInfoModerator(packages, requests, moderators),
	}
}

// GetPackageInformation retrieves a package document.
func (h *PackageInfoHandler) GetPackageInformation(id string) (*model.PackageInformation, error) {
	return h.packages.Get(id)
}

// GetPackageInfoWithOwnModerationRequests returns the package as it would
// look with the caller's pending moderation request applied.
func (h *PackageInfoHandler) GetPackageInfoWithOwnModerationRequests(id string, user *model.User) (*model.PackageInformation, error) {
	pkg, err := h.packages.Get(id)
	if err != nil {
		return nil, err
	}

	requests, err := h.requests.RequestsForDocument(id)
	if err != nil {
		return nil, err
	}

	if req := moderation.RequestOfUser(requests, user.Email); req != nil {
		pkg = h.moderator.UpdatePackageInfoFromModerationRequest(pkg, req.PackageInfoAdditions, req.PackageInfoDeletions)
		pkg.DocumentState = &model.DocumentState{
			IsOriginalDocument: false,
			ModerationState:    req.ModerationState,
		}
	} else {
		pkg.DocumentState = &model.DocumentState{IsOriginalDocument: true}
	}
	pkg.Permissions = permissions.Make(pkg, user).PermissionMap()
	return pkg, nil
}

// AddPackageInformation creates a package document. The creating user joins
// the document's moderator set.
func (h *PackageInfoHandler) AddPackageInformation(pkg *model.PackageInformation, user *model.User) model.RequestStatus {
	if pkg.Name == nil || *pkg.Name == "" {
		return model.RequestStatusFailure
	}
	pkg.Type = model.TypePackageInformation
	if !containsID(pkg.Moderators, user.Email) {
		pkg.Moderators = append(pkg.Moderators, user.Email)
	}
	pkg.Permissions = nil
	pkg.DocumentState = nil
	if err := h.packages.Add(pkg); err != nil {
		return model.RequestStatusFailure
	}
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: user.Email, DocumentID: pkg.ID, DocumentType: model.TypePackageInformation,
		Operation: "add", Success: true,
	})
	return model.RequestStatusSuccess
}

// UpdatePackageInformation routes a package write through the moderator.
func (h *PackageInfoHandler) UpdatePackageInformation(update *model.PackageInformation, user *model.User) model.RequestStatus {
	if update.ID == "" {
		return model.RequestStatusFailure
	}
	update.Permissions = nil
	update.DocumentState = nil
	return h.moderator.UpdatePackageInformation(update, user)
}

// UpdatePackageInfoFromAdditionsAndDeletions applies an open moderation
// proposal and re-enters the update path for the moderator's own permission
// check. A request already decided is refused.
func (h *PackageInfoHandler) UpdatePackageInfoFromAdditionsAndDeletions(req *model.ModerationRequest, user *model.User) model.RequestStatus {
	if !req.IsOpen() {
		return model.RequestStatusFailure
	}

	stored, err := h.packages.Get(req.DocumentID)
	if err != nil {
		return model.RequestStatusFailure
	}
	merged := h.moderator.UpdatePackageInfoFromModerationRequest(stored, req.PackageInfoAdditions, req.PackageInfoDeletions)
	return h.UpdatePackageInformation(merged, user)
}

// DeletePackageInformation removes a package document. Callers without
// DELETE permission are denied; moderators of open requests are notified.
func (h *PackageInfoHandler) DeletePackageInformation(id string, user *model.User) model.RequestStatus {
	stored, err := h.packages.Get(id)
	if err != nil {
		return model.RequestStatusFailure
	}
	if !permissions.Make(stored, user).IsActionAllowed(model.RequestedActionDelete) {
		return model.RequestStatusAccessDenied
	}
	if err := h.packages.Remove(stored); err != nil {
		return model.RequestStatusFailure
	}
	h.moderator.NotifyModeratorOnDelete(id)
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: user.Email, DocumentID: id, DocumentType: model.TypePackageInformation,
		Operation: "delete", Success: true,
	})
	return model.RequestStatusSuccess
}
