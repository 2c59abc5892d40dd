package datahandler

import (
	"errors"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/moderation"
	"github.com/toshiba/sw360/pkg/permissions"
	"github.com/toshiba/sw360/pkg/store"
)

// LicenseHandler owns licenses, license types, obligations and the obligation
// node/element records behind them.
type LicenseHandler struct {
	licenses     store.Collection[model.License]
	licenseTypes store.Collection[model.LicenseType]
	obligations  store.Collection[model.Obligation]
	nodes        store.Collection[model.ObligationNode]
	elements     store.Collection[model.ObligationElement]
	releases     store.Collection[model.Release]
	requests     moderation.RequestsStore
	moderator    *moderation.LicenseModerator
}

// NewLicenseHandler wires a license handler and its moderator.
func NewLicenseHandler(
	licenses store.Collection[model.License],
	licenseTypes store.Collection[model.LicenseType],
	obligations store.Collection[model.Obligation],
	nodes store.Collection[model.ObligationNode],
	elements store.Collection[model.ObligationElement],
	releases store.Collection[model.Release],
	requests moderation.RequestsStore,
	moderators moderation.ModeratorsFunc,
) *LicenseHandler {
	return &LicenseHandler{
		licenses:     licenses,
		licenseTypes: licenseTypes,
		obligations:  obligations,
		nodes:        nodes,
		elements:     elements,
		releases:     releases,
		requests:     requests,
		moderator:    moderation.NewLicenseModerator(licenses, requests, moderators),
	}
}

// GetLicenseForOrganisation returns a license with its license type and
// obligations resolved. Obligation whitelists are filtered down to the
// requesting organisation.
func (h *LicenseHandler) GetLicenseForOrganisation(id, organisation string) (*model.License, error) {
	lic, err := h.licenses.Get(id)
	if err != nil {
		return nil, err
	}
	if err := h.resolve(lic, organisation); err != nil {
		return nil, err
	}
	lic.Shortname = model.String(lic.ID)
	return lic, nil
}

// GetLicenseWithOwnModerationRequests returns the license as it would look
// with the caller's pending moderation request applied. Without an open
// request of the caller's the stored original is returned. The preview is
// computed on the fly and never persisted.
func (h *LicenseHandler) GetLicenseWithOwnModerationRequests(id, organisation string, user *model.User) (*model.License, error) {
	lic, err := h.licenses.Get(id)
	if err != nil {
		return nil, err
	}

	requests, err := h.requests.RequestsForDocument(id)
	if err != nil {
		return nil, err
	}

	if req := moderation.RequestOfUser(requests, user.Email); req != nil {
		lic = h.moderator.UpdateLicenseFromModerationRequest(lic, req.LicenseAdditions, req.LicenseDeletions)
		lic.DocumentState = &model.DocumentState{
			IsOriginalDocument: false,
			ModerationState:    req.ModerationState,
		}
	} else {
		lic.DocumentState = &model.DocumentState{IsOriginalDocument: true}
	}

	if err := h.resolve(lic, organisation); err != nil {
		return nil, err
	}
	lic.Shortname = model.String(lic.ID)
	lic.Permissions = permissions.Make(lic, user).PermissionMap()
	return lic, nil
}

// AddLicense creates a license. The shortname becomes the document id and is
// immutable afterwards; only clearing admins may create a license already
// marked checked.
func (h *LicenseHandler) AddLicense(lic *model.License, user *model.User) model.RequestStatus {
	if lic.GetShortname() == "" {
		return model.RequestStatusFailure
	}
	if lic.ID != "" && lic.ID != lic.GetShortname() {
		return model.RequestStatusFailure
	}
	if !permissions.Make(lic, user).IsActionAllowed(model.RequestedActionWrite) {
		return model.RequestStatusAccessDenied
	}
	if lic.IsChecked() && !permissions.Make(lic, user).IsActionAllowed(model.RequestedActionClearing) {
		lic.Checked = model.Bool(false)
	}

	lic.ID = lic.GetShortname()
	lic.Type = model.TypeLicense
	h.stripResolved(lic)

	if _, err := h.licenses.Get(lic.ID); err == nil {
		return model.RequestStatusFailure
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.RequestStatusFailure
	}

	if err := h.licenses.Add(lic); err != nil {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: lic.ID, DocumentType: model.TypeLicense,
			Operation: "add", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: user.Email, DocumentID: lic.ID, DocumentType: model.TypeLicense,
		Operation: "add", Success: true,
	})
	return model.RequestStatusSuccess
}

// UpdateLicense validates the proposed license and routes it through the
// moderator. A checked license never silently regresses to unchecked: that
// proposal fails regardless of privilege. Flipping the checked flag at all
// requires CLEARING permission; without it the stored value is kept.
func (h *LicenseHandler) UpdateLicense(update *model.License, user *model.User) model.RequestStatus {
	if update.ID == "" {
		return model.RequestStatusFailure
	}

	stored, err := h.licenses.Get(update.ID)
	if err != nil {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: update.ID, DocumentType: model.TypeLicense,
			Operation: "update", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}

	if update.Shortname != nil && *update.Shortname != stored.ID {
		return model.RequestStatusFailure
	}
	if stored.IsChecked() && update.Checked != nil && !*update.Checked {
		return model.RequestStatusFailure
	}
	if checkedChanges(stored, update) &&
		!permissions.Make(stored, user).IsActionAllowed(model.RequestedActionClearing) {
		update.Checked = stored.Checked
	}

	h.stripResolved(update)
	return h.moderator.UpdateLicense(update, user)
}

// UpdateLicenseFromAdditionsAndDeletions applies an open moderation
// proposal: the sparse payloads are merged onto the stored license and the
// merged document re-enters UpdateLicense for the moderator's own permission
// check. Obligation whitelist changes ride on the proposal and are applied
// only once the license write has gone through. A request already decided is
// refused.
func (h *LicenseHandler) UpdateLicenseFromAdditionsAndDeletions(req *model.ModerationRequest, user *model.User) model.RequestStatus {
	if !req.IsOpen() {
		return model.RequestStatusFailure
	}

	stored, err := h.licenses.Get(req.DocumentID)
	if err != nil {
		return model.RequestStatusFailure
	}

	merged := h.moderator.UpdateLicenseFromModerationRequest(stored, req.LicenseAdditions, req.LicenseDeletions)

	if status := h.UpdateLicense(merged, user); status != model.RequestStatusSuccess {
		return status
	}

	return h.applyWhitelistChanges(req)
}

// AcceptModerationRequest merges and persists an open proposal, then marks
// the request accepted. ACCEPTED and REJECTED are terminal: a request already
// decided cannot be accepted again.
func (h *LicenseHandler) AcceptModerationRequest(req *model.ModerationRequest, comment string, user *model.User) model.RequestStatus {
	if !req.IsOpen() {
		return model.RequestStatusFailure
	}

	status := h.UpdateLicenseFromAdditionsAndDeletions(req, user)
	if status != model.RequestStatusSuccess {
		return status
	}

	req.ModerationState = model.ModerationStateAccepted
	req.CommentDecision = comment
	if err := h.requests.UpdateRequest(req); err != nil {
		audit.Log(audit.ModerationDecisionEvent{
			RequestID: req.ID, Moderator: user.Email, DocumentID: req.DocumentID,
			Decision: "accepted", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.ModerationDecisionEvent{
		RequestID: req.ID, Moderator: user.Email, DocumentID: req.DocumentID,
		Decision: "accepted", Success: true,
	})
	return model.RequestStatusSuccess
}

// RejectModerationRequest marks an open proposal rejected without touching
// the target document. A request already decided cannot be rejected again.
func (h *LicenseHandler) RejectModerationRequest(req *model.ModerationRequest, comment string, user *model.User) model.RequestStatus {
	if !req.IsOpen() {
		return model.RequestStatusFailure
	}

	req.ModerationState = model.ModerationStateRejected
	req.CommentDecision = comment
	if err := h.requests.UpdateRequest(req); err != nil {
		return model.RequestStatusFailure
	}
	audit.Log(audit.ModerationDecisionEvent{
		RequestID: req.ID, Moderator: user.Email, DocumentID: req.DocumentID,
		Decision: "rejected", Success: true,
	})
	return model.RequestStatusSuccess
}

// UpdateWhitelist adds or removes the user's department on the whitelists of
// a license's obligations. Every obligation id must belong to the license;
// otherwise the operation fails validation before touching the store. Without
// WRITE permission the change is filed as a moderation request.
func (h *LicenseHandler) UpdateWhitelist(licenseID string, whitelist map[string]bool, user *model.User) model.RequestStatus {
	stored, err := h.licenses.Get(licenseID)
	if err != nil {
		return model.RequestStatusFailure
	}

	for obligationID := range whitelist {
		if !containsID(stored.ObligationDatabaseIDs, obligationID) {
			audit.Log(audit.DocumentUpdateEvent{
				UserEmail: user.Email, DocumentID: licenseID, DocumentType: model.TypeLicense,
				Operation: "update", ErrorMessage: "Obligation Ids not in license",
			})
			return model.RequestStatusFailure
		}
	}

	if !permissions.Make(stored, user).IsActionAllowed(model.RequestedActionWrite) {
		return h.moderateWhitelist(stored, whitelist, user)
	}

	for obligationID, whitelisted := range whitelist {
		ob, err := h.obligations.Get(obligationID)
		if err != nil {
			return model.RequestStatusFailure
		}
		if whitelisted {
			if containsID(ob.Whitelist, user.Department) {
				continue
			}
			ob.Whitelist = append(ob.Whitelist, user.Department)
		} else {
			ob.Whitelist = removeID(ob.Whitelist, user.Department)
		}
		if err := h.obligations.Update(ob); err != nil {
			return model.RequestStatusFailure
		}
	}
	return model.RequestStatusSuccess
}

// AddObligationsToLicense links obligations into a license's reference set
// through the regular update path.
func (h *LicenseHandler) AddObligationsToLicense(obligationIDs []string, licenseID string, user *model.User) model.RequestStatus {
	stored, err := h.licenses.Get(licenseID)
	if err != nil {
		return model.RequestStatusFailure
	}

	update := *stored
	update.ObligationDatabaseIDs = append([]string(nil), stored.ObligationDatabaseIDs...)
	for _, id := range obligationIDs {
		if !containsID(update.ObligationDatabaseIDs, id) {
			update.ObligationDatabaseIDs = append(update.ObligationDatabaseIDs, id)
		}
	}
	return h.UpdateLicense(&update, user)
}

// DeleteLicense removes a license. A license referenced by any release is in
// use and stays; a caller without DELETE permission is denied. Moderators of
// open requests against the license are notified best-effort.
func (h *LicenseHandler) DeleteLicense(id string, user *model.User) model.RequestStatus {
	stored, err := h.licenses.Get(id)
	if err != nil {
		return model.RequestStatusFailure
	}

	usedBy, err := h.releases.QueryByIndex(store.IndexByLicenseID, id)
	if err != nil {
		return model.RequestStatusFailure
	}
	if len(usedBy) > 0 {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: user.Email, DocumentID: id, DocumentType: model.TypeLicense,
			Operation: "delete", ErrorMessage: "license is in use",
		})
		return model.RequestStatusInUse
	}

	if !permissions.Make(stored, user).IsActionAllowed(model.RequestedActionDelete) {
		return model.RequestStatusAccessDenied
	}

	if err := h.licenses.Remove(stored); err != nil {
		return model.RequestStatusFailure
	}
	h.moderator.NotifyModeratorOnDelete(id)
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: user.Email, DocumentID: id, DocumentType: model.TypeLicense,
		Operation: "delete", Success: true,
	})
	return model.RequestStatusSuccess
}

// GetObligations resolves obligation ids, tolerating missing ones.
func (h *LicenseHandler) GetObligations(ids []string) ([]model.Obligation, error) {
	return h.obligations.GetMany(ids)
}

// AddObligation creates an obligation. Clearing admins only.
func (h *LicenseHandler) AddObligation(ob *model.Obligation, user *model.User) model.RequestStatus {
	if ob.Text == "" {
		return model.RequestStatusFailure
	}
	if !permissions.IsClearingAdmin(user) {
		return model.RequestStatusAccessDenied
	}
	ob.Type = model.TypeObligation
	if err := h.obligations.Add(ob); err != nil {
		return model.RequestStatusFailure
	}
	return model.RequestStatusSuccess
}

// AddObligationElement stores an obligation element, reusing an existing
// record with the same subject-action-object triple.
func (h *LicenseHandler) AddObligationElement(element *model.ObligationElement) (string, error) {
	existing, err := h.elements.QueryByIndex(store.IndexByLangElement, element.LangElement)
	if err != nil {
		return "", err
	}
	for i := range existing {
		if existing[i].Action == element.Action && existing[i].Object == element.Object {
			return existing[i].ID, nil
		}
	}
	element.Type = model.TypeObligationElement
	if err := h.elements.Add(element); err != nil {
		return "", err
	}
	return element.ID, nil
}

// AddObligationNode stores an obligation tree node, reusing an existing node
// with the same shape. Nodes of type "Obligation" are keyed by their element
// reference, all others by type and text.
func (h *LicenseHandler) AddObligationNode(node *model.ObligationNode) (string, error) {
	var existing []model.ObligationNode
	var err error
	if node.NodeType == "Obligation" {
		existing, err = h.nodes.QueryByIndex(store.IndexByOblElementID, node.OblElementID)
	} else {
		existing, err = h.nodes.QueryByIndex(store.IndexByNodeText, node.NodeText)
	}
	if err != nil {
		return "", err
	}
	for i := range existing {
		if existing[i].NodeType == node.NodeType {
			return existing[i].ID, nil
		}
	}
	node.Type = model.TypeObligationNode
	if err := h.nodes.Add(node); err != nil {
		return "", err
	}
	return node.ID, nil
}

// GetObligationNode retrieves one obligation tree node.
func (h *LicenseHandler) GetObligationNode(id string) (*model.ObligationNode, error) {
	return h.nodes.Get(id)
}

// GetObligationElement retrieves one obligation element.
func (h *LicenseHandler) GetObligationElement(id string) (*model.ObligationElement, error) {
	return h.elements.Get(id)
}

// AddLicenseType creates a license type. Clearing admins only.
func (h *LicenseHandler) AddLicenseType(lt *model.LicenseType, user *model.User) model.RequestStatus {
	if lt.LicenseTypeName == "" {
		return model.RequestStatusFailure
	}
	if !permissions.IsClearingAdmin(user) {
		return model.RequestStatusAccessDenied
	}
	lt.Type = model.TypeLicenseType
	if err := h.licenseTypes.Add(lt); err != nil {
		return model.RequestStatusFailure
	}
	return model.RequestStatusSuccess
}

// GetLicenseTypes resolves license type ids, tolerating missing ones.
func (h *LicenseHandler) GetLicenseTypes(ids []string) ([]model.LicenseType, error) {
	return h.licenseTypes.GetMany(ids)
}

// DeleteAllLicenseInformation wipes every license, license type, obligation,
// obligation node and obligation element. Admins only.
func (h *LicenseHandler) DeleteAllLicenseInformation(user *model.User) model.RequestSummary {
	if !permissions.IsAdmin(user) {
		return model.RequestSummary{Status: model.RequestStatusAccessDenied}
	}

	affected := 0
	total := 0
	for _, wipe := range []func() (int, int){
		func() (int, int) { return wipeCollection(h.licenses) },
		func() (int, int) { return wipeCollection(h.licenseTypes) },
		func() (int, int) { return wipeCollection(h.obligations) },
		func() (int, int) { return wipeCollection(h.nodes) },
		func() (int, int) { return wipeCollection(h.elements) },
	} {
		removed, seen := wipe()
		affected += removed
		total += seen
	}

	status := model.RequestStatusSuccess
	if affected < total {
		status = model.RequestStatusFailure
	}
	return model.RequestSummary{
		Status:                status,
		TotalElements:         total,
		TotalAffectedElements: affected,
	}
}

func (h *LicenseHandler) moderateWhitelist(stored *model.License, whitelist map[string]bool, user *model.User) model.RequestStatus {
	additions := &model.License{Type: model.TypeLicense}
	deletions := &model.License{Type: model.TypeLicense}
	for obligationID, whitelisted := range whitelist {
		entry := model.Obligation{ID: obligationID, Whitelist: []string{user.Department}}
		if whitelisted {
			additions.Obligations = append(additions.Obligations, entry)
		} else {
			deletions.Obligations = append(deletions.Obligations, entry)
		}
	}

	req := &model.ModerationRequest{
		Type:                     model.TypeModerationRequest,
		DocumentID:               stored.ID,
		DocumentType:             model.TypeLicense,
		DocumentName:             stored.GetShortname(),
		RequestingUser:           user.Email,
		RequestingUserDepartment: user.Department,
		ModerationState:          model.ModerationStatePending,
		LicenseAdditions:         additions,
		LicenseDeletions:         deletions,
	}
	if err := h.requests.CreateRequest(req); err != nil {
		audit.Log(audit.ModerationRequestEvent{
			RequestingUser: user.Email, DocumentID: stored.ID, DocumentType: model.TypeLicense,
			ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.ModerationRequestEvent{
		RequestID: req.ID, RequestingUser: user.Email,
		DocumentID: stored.ID, DocumentType: model.TypeLicense, Success: true,
	})
	return model.RequestStatusSentToModerator
}

// applyWhitelistChanges applies obligation whitelist entries carried by a
// moderation request, scoped to the requesting user's department.
func (h *LicenseHandler) applyWhitelistChanges(req *model.ModerationRequest) model.RequestStatus {
	department := req.RequestingUserDepartment
	if department == "" {
		return model.RequestStatusSuccess
	}

	if req.LicenseAdditions != nil {
		for i := range req.LicenseAdditions.Obligations {
			ob, err := h.obligations.Get(req.LicenseAdditions.Obligations[i].ID)
			if err != nil {
				return model.RequestStatusFailure
			}
			if !containsID(ob.Whitelist, department) {
				ob.Whitelist = append(ob.Whitelist, department)
				if err := h.obligations.Update(ob); err != nil {
					return model.RequestStatusFailure
				}
			}
		}
	}
	if req.LicenseDeletions != nil {
		for i := range req.LicenseDeletions.Obligations {
			ob, err := h.obligations.Get(req.LicenseDeletions.Obligations[i].ID)
			if err != nil {
				return model.RequestStatusFailure
			}
			if containsID(ob.Whitelist, department) {
				ob.Whitelist = removeID(ob.Whitelist, department)
				if err := h.obligations.Update(ob); err != nil {
					return model.RequestStatusFailure
				}
			}
		}
	}
	return model.RequestStatusSuccess
}

// resolve denormalizes the license type and obligations onto the license,
// filtering obligation whitelists to the given organisation.
func (h *LicenseHandler) resolve(lic *model.License, organisation string) error {
	if lic.LicenseTypeDatabaseID != nil && *lic.LicenseTypeDatabaseID != "" {
		lt, err := h.licenseTypes.Get(*lic.LicenseTypeDatabaseID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		lic.LicenseType = lt
	}

	if len(lic.ObligationDatabaseIDs) > 0 {
		obligations, err := h.obligations.GetMany(lic.ObligationDatabaseIDs)
		if err != nil {
			return err
		}
		for i := range obligations {
			obligations[i].Whitelist = filterWhitelist(obligations[i].Whitelist, organisation)
		}
		lic.Obligations = obligations
	}
	return nil
}

// stripResolved clears the denormalized read-only fields before a write.
func (h *LicenseHandler) stripResolved(lic *model.License) {
	lic.LicenseType = nil
	lic.Obligations = nil
	lic.Permissions = nil
	lic.DocumentState = nil
}

func checkedChanges(stored, update *model.License) bool {
	if update.Checked == nil {
		return false
	}
	return stored.Checked == nil || *stored.Checked != *update.Checked
}

func filterWhitelist(whitelist []string, organisation string) []string {
	var filtered []string
	for _, entry := range whitelist {
		if entry == organisation {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	var result []string
	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}

func wipeCollection[T any](col store.Collection[T]) (removed, total int) {
	docs, err := col.GetAll()
	if err != nil {
		return 0, 0
	}
	for i := range docs {
		total++
		if err := col.Remove(&docs[i]); err == nil {
			removed++
		}
	}
	return removed, total
}
