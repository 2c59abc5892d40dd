package integration

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/toshiba/sw360/pkg/datahandler"
	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/moderation"
	gormstore "github.com/toshiba/sw360/pkg/store/gorm"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc *TestContext

	licenses *datahandler.LicenseHandler
	users    *datahandler.UserHandler
	requests moderation.RequestsStore

	departmentModerators map[string][]string
	knownUsers           map[string]*model.User
	lastStatus           model.RequestStatus
}

// NewStepsContext wires the handler stack onto the test database.
func NewStepsContext(tc *TestContext) *StepsContext {
	s := &StepsContext{
		tc:                   tc,
		departmentModerators: make(map[string][]string),
		knownUsers:           make(map[string]*model.User),
	}

	licenses := gormstore.NewLicenses(tc.DB)
	s.requests = moderation.NewRequests(gormstore.NewModerationRequests(tc.DB))
	s.licenses = datahandler.NewLicenseHandler(
		licenses,
		gormstore.NewLicenseTypes(tc.DB),
		gormstore.NewObligations(tc.DB),
		gormstore.NewObligationNodes(tc.DB),
		gormstore.NewObligationElements(tc.DB),
		gormstore.NewReleases(tc.DB),
		s.requests,
		func(department string) []string { return s.departmentModerators[department] },
	)
	s.users = datahandler.NewUserHandler(gormstore.NewUsers(tc.DB))

	return s
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.reset()
	})

	// Background steps
	sc.Step(`^a user "([^"]*)" in department "([^"]*)" with group "([^"]*)"$`, s.aUserInDepartmentWithGroup)
	sc.Step(`^department "([^"]*)" is moderated by "([^"]*)"$`, s.departmentIsModeratedBy)
	sc.Step(`^a license "([^"]*)" with fullname "([^"]*)"$`, s.aLicenseWithFullname)

	// Write steps
	sc.Step(`^"([^"]*)" updates license "([^"]*)" with fullname "([^"]*)"$`, s.userUpdatesLicenseFullname)
	sc.Step(`^"([^"]*)" accepts the moderation request for "([^"]*)" with comment "([^"]*)"$`, s.userAcceptsModerationRequest)
	sc.Step(`^"([^"]*)" rejects the moderation request for "([^"]*)" with comment "([^"]*)"$`, s.userRejectsModerationRequest)

	// Assertion steps
	sc.Step(`^the request status is "([^"]*)"$`, s.theRequestStatusIs)
	sc.Step(`^a pending moderation request for "([^"]*)" exists$`, s.aPendingModerationRequestExists)
	sc.Step(`^no moderation request for "([^"]*)" exists$`, s.noModerationRequestExists)
	sc.Step(`^the moderation request for "([^"]*)" is assigned to "([^"]*)"$`, s.theModerationRequestIsAssignedTo)
	sc.Step(`^the moderation request for "([^"]*)" is "([^"]*)"$`, s.theModerationRequestStateIs)
	sc.Step(`^the stored license "([^"]*)" has fullname "([^"]*)"$`, s.theStoredLicenseHasFullname)
}

// reset wipes the document store between scenarios.
func (s *StepsContext) reset() error {
	if err := s.tc.DB.Exec(`DELETE FROM document_indexes`).Error; err != nil {
		return err
	}
	if err := s.tc.DB.Exec(`DELETE FROM documents`).Error; err != nil {
		return err
	}
	s.departmentModerators = make(map[string][]string)
	s.knownUsers = make(map[string]*model.User)
	s.lastStatus = model.RequestStatusSuccess
	return nil
}

// Background steps

func (s *StepsContext) aUserInDepartmentWithGroup(email, department, group string) error {
	userGroup, err := model.UserGroupString(group)
	if err != nil {
		return fmt.Errorf("unknown user group %q: %w", group, err)
	}

	user := model.NewUser(email, department)
	user.UserGroup = userGroup
	if status := s.users.AddUser(user); status != model.RequestStatusSuccess {
		return fmt.Errorf("failed to add user %s: %s", email, status)
	}

	s.knownUsers[email] = user
	return nil
}

func (s *StepsContext) departmentIsModeratedBy(department, email string) error {
	s.departmentModerators[department] = append(s.departmentModerators[department], email)
	return nil
}

func (s *StepsContext) aLicenseWithFullname(id, fullname string) error {
	lic := model.NewLicense(id)
	lic.ID = id
	lic.Fullname = model.String(fullname)

	admin := model.NewUser("setup@example.org", "SETUP")
	admin.UserGroup = model.UserGroupAdmin
	if status := s.licenses.AddLicense(lic, admin); status != model.RequestStatusSuccess {
		return fmt.Errorf("failed to add license %s: %s", id, status)
	}
	return nil
}

// Write steps

func (s *StepsContext) userUpdatesLicenseFullname(email, id, fullname string) error {
	user, err := s.user(email)
	if err != nil {
		return err
	}

	update, err := s.licenses.GetLicenseForOrganisation(id, user.Department)
	if err != nil {
		return err
	}

	update.Fullname = model.String(fullname)
	s.lastStatus = s.licenses.UpdateLicense(update, user)
	return nil
}

func (s *StepsContext) userAcceptsModerationRequest(email, documentID, comment string) error {
	user, err := s.user(email)
	if err != nil {
		return err
	}
	req, err := s.openRequest(documentID)
	if err != nil {
		return err
	}

	s.lastStatus = s.licenses.AcceptModerationRequest(req, comment, user)
	return nil
}

func (s *StepsContext) userRejectsModerationRequest(email, documentID, comment string) error {
	user, err := s.user(email)
	if err != nil {
		return err
	}
	req, err := s.openRequest(documentID)
	if err != nil {
		return err
	}

	s.lastStatus = s.licenses.RejectModerationRequest(req, comment, user)
	return nil
}

// Assertion steps

func (s *StepsContext) theRequestStatusIs(expected string) error {
	if s.lastStatus.String() != expected {
		return fmt.Errorf("expected request status %s, got %s", expected, s.lastStatus)
	}
	return nil
}

func (s *StepsContext) aPendingModerationRequestExists(documentID string) error {
	_, err := s.openRequest(documentID)
	return err
}

func (s *StepsContext) noModerationRequestExists(documentID string) error {
	requests, err := s.requests.RequestsForDocument(documentID)
	if err != nil {
		return err
	}
	if len(requests) > 0 {
		return fmt.Errorf("expected no moderation requests for %s, found %d", documentID, len(requests))
	}
	return nil
}

func (s *StepsContext) theModerationRequestIsAssignedTo(documentID, email string) error {
	req, err := s.openRequest(documentID)
	if err != nil {
		return err
	}
	for _, moderator := range req.Moderators {
		if moderator == email {
			return nil
		}
	}
	return fmt.Errorf("moderation request for %s is not assigned to %s (moderators: %v)", documentID, email, req.Moderators)
}

func (s *StepsContext) theModerationRequestStateIs(documentID, expected string) error {
	requests, err := s.requests.RequestsForDocument(documentID)
	if err != nil {
		return err
	}
	if len(requests) == 0 {
		return fmt.Errorf("no moderation request for %s", documentID)
	}
	state := requests[0].ModerationState.String()
	if state != expected {
		return fmt.Errorf("expected moderation state %s, got %s", expected, state)
	}
	return nil
}

func (s *StepsContext) theStoredLicenseHasFullname(id, fullname string) error {
	lic, err := s.licenses.GetLicenseForOrganisation(id, "")
	if err != nil {
		return err
	}
	if lic.GetFullname() != fullname {
		return fmt.Errorf("expected license %s fullname %q, got %q", id, fullname, lic.GetFullname())
	}
	return nil
}

// Helpers

func (s *StepsContext) user(email string) (*model.User, error) {
	if user, ok := s.knownUsers[email]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("unknown user %s", email)
}

func (s *StepsContext) openRequest(documentID string) (*model.ModerationRequest, error) {
	requests, err := s.requests.RequestsForDocument(documentID)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].IsOpen() {
			return &requests[i], nil
		}
	}
	return nil, fmt.Errorf("no open moderation request for %s", documentID)
}
