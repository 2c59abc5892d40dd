package permissions

import (
	"fmt"

	"github.com/toshiba/sw360/pkg/model"
)

// DocumentPolicy supplies the per-document-type inputs of the standard
// decision table.
type DocumentPolicy interface {
	// Contributors returns the emails counting as contributors of the
	// document.
	Contributors() []string

	// Moderators returns the emails counting as moderators of the document.
	Moderators() []string

	// UserEquivalentOwnerGroups returns the departments the document is
	// considered owned by. The empty string denotes the global group.
	UserEquivalentOwnerGroups() []string
}

// ActionPolicy replaces the standard decision table for a document type.
// Policies that implement it bypass Evaluator's standard permissions
// entirely.
type ActionPolicy interface {
	IsActionAllowed(user *model.User, action model.RequestedAction) bool
}

// Evaluator computes the capability set of one user on one document.
type Evaluator struct {
	user   *model.User
	policy DocumentPolicy
}

// NewEvaluator builds an evaluator for the given policy and acting user.
func NewEvaluator(policy DocumentPolicy, user *model.User) *Evaluator {
	return &Evaluator{user: user, policy: policy}
}

// Make returns an evaluator for a known document type. Unknown types are a
// programming error and panic.
func Make(document any, user *model.User) *Evaluator {
	switch doc := document.(type) {
	case *model.License:
		return NewEvaluator(licensePolicy{doc}, user)
	case *model.User:
		return NewEvaluator(userPolicy{doc}, user)
	case *model.PackageInformation:
		return NewEvaluator(packageInfoPolicy{doc}, user)
	default:
		panic(fmt.Sprintf("permissions: no policy for document type %T", document))
	}
}

// IsActionAllowed reports whether the user may perform the action on the
// document. Unknown actions panic: they indicate a code/schema mismatch, not
// a runtime data problem.
func (e *Evaluator) IsActionAllowed(action model.RequestedAction) bool {
	if override, ok := e.policy.(ActionPolicy); ok {
		return override.IsActionAllowed(e.user, action)
	}
	return e.standardPermission(action)
}

// AreActionsAllowed reports whether every listed action is allowed.
func (e *Evaluator) AreActionsAllowed(actions []model.RequestedAction) bool {
	for _, action := range actions {
		if !e.IsActionAllowed(action) {
			return false
		}
	}
	return true
}

// PermissionMap computes the full action-to-decision mapping.
func (e *Evaluator) PermissionMap() map[model.RequestedAction]bool {
	result := make(map[model.RequestedAction]bool, len(model.RequestedActionValues()))
	for _, action := range model.RequestedActionValues() {
		result[action] = e.IsActionAllowed(action)
	}
	return result
}

// AllAllowedActions returns the actions the user may perform, in enum order.
func (e *Evaluator) AllAllowedActions() []model.RequestedAction {
	var allowed []model.RequestedAction
	for _, action := range model.RequestedActionValues() {
		if e.IsActionAllowed(action) {
			allowed = append(allowed, action)
		}
	}
	return allowed
}

var (
	clearingAdminRoles = []model.UserGroup{model.UserGroupClearingAdmin, model.UserGroupClearingExpert}
	adminRoles         = []model.UserGroup{model.UserGroupAdmin, model.UserGroupSW360Admin}
)

func (e *Evaluator) standardPermission(action model.RequestedAction) bool {
	switch action {
	case model.RequestedActionRead:
		return true
	case model.RequestedActionWrite, model.RequestedActionAttachments:
		return IsUserAtLeast(model.UserGroupAdmin, e.user) ||
			e.isContributor() ||
			e.userOfOwnGroupHasRole(clearingAdminRoles, model.UserGroupClearingAdmin) ||
			e.userOfOwnGroupHasRole(adminRoles, model.UserGroupAdmin)
	case model.RequestedActionDelete, model.RequestedActionUsers, model.RequestedActionClearing:
		return IsAdmin(e.user) ||
			e.isModerator() ||
			e.userOfOwnGroupHasRole(adminRoles, model.UserGroupAdmin)
	case model.RequestedActionWriteECC:
		return IsAdmin(e.user) ||
			e.userOfOwnGroupHasRole(adminRoles, model.UserGroupAdmin)
	default:
		panic(fmt.Sprintf("permissions: unknown action: %v", action))
	}
}

func (e *Evaluator) isContributor() bool {
	return e.user != nil && containsEmail(e.policy.Contributors(), e.user.Email)
}

func (e *Evaluator) isModerator() bool {
	return e.user != nil && containsEmail(e.policy.Moderators(), e.user.Email)
}

// userOfOwnGroupHasRole walks the document's user-equivalent owner groups.
// For the user's home department (or the global group) the user's own role is
// tested against the role the check is for; for any other department the
// user's secondary roles in that department are consulted. The first matching
// department wins.
func (e *Evaluator) userOfOwnGroupHasRole(desiredRoles []model.UserGroup, checkFor model.UserGroup) bool {
	groups := e.policy.UserEquivalentOwnerGroups()
	if len(groups) == 0 || e.user == nil {
		return false
	}
	for _, group := range groups {
		if group == "" || group == e.user.Department {
			switch checkFor {
			case model.UserGroupClearingAdmin:
				if IsClearingAdmin(e.user) {
					return true
				}
			case model.UserGroupAdmin:
				if IsAdmin(e.user) {
					return true
				}
			case model.UserGroupClearingExpert:
				if IsClearingExpert(e.user) {
					return true
				}
			}
		} else if e.user.HasSecondaryRole(group, desiredRoles) {
			return true
		}
	}
	return false
}

func containsEmail(emails []string, email string) bool {
	if email == "" {
		return false
	}
	for _, e := range emails {
		if e == email {
			return true
		}
	}
	return false
}

// IsUserAtLeast reports whether the user's group reaches the wanted group in
// the total privilege order.
func IsUserAtLeast(group model.UserGroup, user *model.User) bool {
	return user != nil && user.UserGroup >= group
}

// IsAdmin reports whether the user is a global admin.
func IsAdmin(user *model.User) bool {
	return IsUserAtLeast(model.UserGroupAdmin, user)
}

// IsClearingAdmin reports whether the user is at least a clearing admin.
func IsClearingAdmin(user *model.User) bool {
	return IsUserAtLeast(model.UserGroupClearingAdmin, user)
}

// IsClearingExpert reports whether the user is at least a clearing expert.
func IsClearingExpert(user *model.User) bool {
	return IsUserAtLeast(model.UserGroupClearingExpert, user)
}
