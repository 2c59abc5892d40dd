package datahandler

import (
	"strings"

	"github.com/toshiba/sw360/pkg/audit"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/permissions"
	"github.com/toshiba/sw360/pkg/store"
)

// UserHandler owns user documents. Lookups go through the secondary indexes;
// writes are admin-gated by the user document policy.
type UserHandler struct {
	users store.Collection[model.User]
}

// NewUserHandler wires a user handler.
func NewUserHandler(users store.Collection[model.User]) *UserHandler {
	return &UserHandler{users: users}
}

// GetUser retrieves a user by document id.
func (h *UserHandler) GetUser(id string) (*model.User, error) {
	return h.users.Get(id)
}

// ByEmail resolves a user by current or former email address.
func (h *UserHandler) ByEmail(email string) (*model.User, error) {
	matches, err := h.users.QueryByIndex(store.IndexByEmail, email)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, store.ErrNotFound
	}
	// Prefer a current-address match over a former one.
	for i := range matches {
		if matches[i].Email == email {
			return &matches[i], nil
		}
	}
	return &matches[0], nil
}

// ByExternalID resolves a user by external id, case-insensitively.
func (h *UserHandler) ByExternalID(externalID string) (*model.User, error) {
	matches, err := h.users.QueryByIndex(store.IndexByExternalID, strings.ToLower(externalID))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, store.ErrNotFound
	}
	return &matches[0], nil
}

// ByAPIToken resolves a user by one of their REST API tokens.
func (h *UserHandler) ByAPIToken(token string) (*model.User, error) {
	matches, err := h.users.QueryByIndex(store.IndexByAPIToken, token)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, store.ErrNotFound
	}
	return &matches[0], nil
}

// AddUser creates a user document. Email and department are mandatory and the
// email must not already resolve to an existing user.
func (h *UserHandler) AddUser(user *model.User) model.RequestStatus {
	if user.Email == "" || user.Department == "" {
		return model.RequestStatusFailure
	}
	if _, err := h.ByEmail(user.Email); err == nil {
		return model.RequestStatusFailure
	}
	user.Type = model.TypeUser
	if err := h.users.Add(user); err != nil {
		return model.RequestStatusFailure
	}
	return model.RequestStatusSuccess
}

// UpdateUser persists changes to a user document. There is no moderation
// fallback for user records: a non-admin actor is denied.
func (h *UserHandler) UpdateUser(update *model.User, actor *model.User) model.RequestStatus {
	stored, err := h.users.Get(update.ID)
	if err != nil {
		return model.RequestStatusFailure
	}
	if !permissions.Make(stored, actor).IsActionAllowed(model.RequestedActionWrite) {
		return model.RequestStatusAccessDenied
	}
	if err := h.users.Update(update); err != nil {
		audit.Log(audit.DocumentUpdateEvent{
			UserEmail: actor.Email, DocumentID: update.ID, DocumentType: model.TypeUser,
			Operation: "update", ErrorMessage: err.Error(),
		})
		return model.RequestStatusFailure
	}
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: actor.Email, DocumentID: update.ID, DocumentType: model.TypeUser,
		Operation: "update", Success: true,
	})
	return model.RequestStatusSuccess
}

// DeleteUser removes a user document. Admins only.
func (h *UserHandler) DeleteUser(id string, actor *model.User) model.RequestStatus {
	stored, err := h.users.Get(id)
	if err != nil {
		return model.RequestStatusFailure
	}
	if !permissions.Make(stored, actor).IsActionAllowed(model.RequestedActionDelete) {
		return model.RequestStatusAccessDenied
	}
	if err := h.users.Remove(stored); err != nil {
		return model.RequestStatusFailure
	}
	audit.Log(audit.DocumentUpdateEvent{
		UserEmail: actor.Email, DocumentID: id, DocumentType: model.TypeUser,
		Operation: "delete", Success: true,
	})
	return model.RequestStatusSuccess
}
