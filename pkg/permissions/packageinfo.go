package permissions

import "github.com/toshiba/sw360/pkg/model"

// packageInfoPolicy governs PackageInformation documents. Moderators come
// from the document itself; the owning group is the global one.
type packageInfoPolicy struct {
	pkg *model.PackageInformation
}

// NewPackageInfoPermissions builds an evaluator for a package information
// document.
func NewPackageInfoPermissions(pkg *model.PackageInformation, user *model.User) *Evaluator {
	return NewEvaluator(packageInfoPolicy{pkg}, user)
}

func (p packageInfoPolicy) Contributors() []string { return p.pkg.Moderators }

func (p packageInfoPolicy) Moderators() []string { return p.pkg.Moderators }

func (packageInfoPolicy) UserEquivalentOwnerGroups() []string { return []string{""} }
