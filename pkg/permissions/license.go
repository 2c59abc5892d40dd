package permissions

import "github.com/toshiba/sw360/pkg/model"

// licensePolicy governs License documents. Licenses have no contributor or
// moderator lists and belong to the global group; clearing admins may write
// and clear them in addition to whoever the standard table admits.
type licensePolicy struct {
	license *model.License
}

// NewLicensePermissions builds an evaluator for a license document.
func NewLicensePermissions(license *model.License, user *model.User) *Evaluator {
	return NewEvaluator(licensePolicy{license}, user)
}

func (licensePolicy) Contributors() []string { return nil }

func (licensePolicy) Moderators() []string { return nil }

func (licensePolicy) UserEquivalentOwnerGroups() []string { return []string{""} }

func (p licensePolicy) IsActionAllowed(user *model.User, action model.RequestedAction) bool {
	switch action {
	case model.RequestedActionWrite, model.RequestedActionClearing:
		if IsClearingAdmin(user) {
			return true
		}
	}
	return (&Evaluator{user: user, policy: p}).standardPermission(action)
}
