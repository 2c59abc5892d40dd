package datahandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

func TestByEmailPrefersCurrentAddress(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	former := *model.NewUser("new@example.org", "DEP")
	former.ID = "u1"
	former.FormerEmailAddresses = []string{"shared@example.org"}
	current := *model.NewUser("shared@example.org", "DEP")
	current.ID = "u2"

	users.On("QueryByIndex", store.IndexByEmail, "shared@example.org").
		Return([]model.User{former, current}, nil)

	got, err := h.ByEmail("shared@example.org")
	require.NoError(t, err)
	assert.Equal(t, "u2", got.ID)
}

func TestByEmailFallsBackToFormerAddress(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	moved := *model.NewUser("new@example.org", "DEP")
	moved.ID = "u1"
	moved.FormerEmailAddresses = []string{"old@example.org"}

	users.On("QueryByIndex", store.IndexByEmail, "old@example.org").
		Return([]model.User{moved}, nil)

	got, err := h.ByEmail("old@example.org")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestByEmailNotFound(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	users.On("QueryByIndex", store.IndexByEmail, "nobody@example.org").
		Return([]model.User{}, nil)

	_, err := h.ByEmail("nobody@example.org")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestByExternalIDIsCaseInsensitive(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	u := *model.NewUser("dev@example.org", "DEP")
	u.ID = "u1"
	u.ExternalID = "Z0001234"

	users.On("QueryByIndex", store.IndexByExternalID, "z0001234").
		Return([]model.User{u}, nil)

	got, err := h.ByExternalID("Z0001234")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestByAPIToken(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	u := *model.NewUser("dev@example.org", "DEP")
	u.ID = "u1"
	u.RestAPITokens = []model.RestAPIToken{{Name: "ci", Token: "tok123"}}

	users.On("QueryByIndex", store.IndexByAPIToken, "tok123").
		Return([]model.User{u}, nil)

	got, err := h.ByAPIToken("tok123")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.org", got.Email)
}

func TestAddUserRequiresEmailAndDepartment(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	assert.Equal(t, model.RequestStatusFailure, h.AddUser(model.NewUser("", "DEP")))
	assert.Equal(t, model.RequestStatusFailure, h.AddUser(model.NewUser("dev@example.org", "")))
	users.AssertNotCalled(t, "Add", mock.Anything)
}

func TestAddUserDuplicateEmailFails(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	existing := *model.NewUser("dev@example.org", "DEP")
	users.On("QueryByIndex", store.IndexByEmail, "dev@example.org").
		Return([]model.User{existing}, nil)

	status := h.AddUser(model.NewUser("dev@example.org", "OTHER"))

	assert.Equal(t, model.RequestStatusFailure, status)
	users.AssertNotCalled(t, "Add", mock.Anything)
}

func TestAddUser(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	users.On("QueryByIndex", store.IndexByEmail, "dev@example.org").
		Return([]model.User{}, nil)
	users.On("Add", mock.Anything).Return(nil)

	status := h.AddUser(model.NewUser("dev@example.org", "DEP"))

	assert.Equal(t, model.RequestStatusSuccess, status)
}

func TestUpdateUserDeniedForNonAdmin(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	stored := model.NewUser("dev@example.org", "DEP")
	stored.ID = "u1"
	users.On("Get", "u1").Return(stored, nil)

	update := *stored
	update.Fullname = "Renamed"

	// There is no moderation fallback on user documents.
	status := h.UpdateUser(&update, plainUser())

	assert.Equal(t, model.RequestStatusAccessDenied, status)
	users.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateUserByAdmin(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	stored := model.NewUser("dev@example.org", "DEP")
	stored.ID = "u1"
	users.On("Get", "u1").Return(stored, nil)
	users.On("Update", mock.Anything).Return(nil)

	update := *stored
	update.Fullname = "Renamed"

	status := h.UpdateUser(&update, adminUser())

	assert.Equal(t, model.RequestStatusSuccess, status)
}

func TestDeleteUserAdminOnly(t *testing.T) {
	users := &MockCollection[model.User]{}
	h := NewUserHandler(users)

	stored := model.NewUser("dev@example.org", "DEP")
	stored.ID = "u1"
	users.On("Get", "u1").Return(stored, nil)

	assert.Equal(t, model.RequestStatusAccessDenied, h.DeleteUser("u1", plainUser()))
	users.AssertNotCalled(t, "Remove", mock.Anything)

	users.On("Remove", stored).Return(nil)
	assert.Equal(t, model.RequestStatusSuccess, h.DeleteUser("u1", adminUser()))
}
