package permissions

import "github.com/toshiba/sw360/pkg/model"

// userPolicy governs User documents. Only global admins may touch user
// records; there is no moderation fallback.
type userPolicy struct {
	document *model.User
}

// NewUserPermissions builds an evaluator for a user document.
func NewUserPermissions(document, user *model.User) *Evaluator {
	return NewEvaluator(userPolicy{document}, user)
}

func (userPolicy) Contributors() []string { return nil }

func (userPolicy) Moderators() []string { return nil }

func (userPolicy) UserEquivalentOwnerGroups() []string { return nil }

func (userPolicy) IsActionAllowed(user *model.User, action model.RequestedAction) bool {
	switch action {
	case model.RequestedActionRead:
		return true
	case model.RequestedActionWrite, model.RequestedActionDelete:
		return IsUserAtLeast(model.UserGroupAdmin, user)
	default:
		return false
	}
}
