package integration

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	authToken    string
	users        map[string]uuid.UUID
	lastRecordID string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:    tc,
		users: make(map[string]uuid.UUID),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a back-office server is running$`, s.aBackOfficeServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists with role "([^"]*)"$`, s.aUserExistsWithRole)
	sc.Step(`^a user "([^"]*)" exists with no role$`, s.aUserExistsWithNoRole)
	sc.Step(`^a governed table "([^"]*)" exists$`, s.aGovernedTableExists)
	sc.Step(`^I am signed in as "([^"]*)"$`, s.iAmSignedInAs)

	// Permission setup steps
	sc.Step(`^role "([^"]*)" is granted "([^"]*)" on "([^"]*)"$`, s.roleIsGrantedOn)
	sc.Step(`^user "([^"]*)" has an override on "([^"]*)" allowing "([^"]*)"$`, s.userHasOverrideAllowing)
	sc.Step(`^user "([^"]*)" has an override on "([^"]*)" allowing nothing$`, s.userHasOverrideAllowingNothing)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response body should be "([^"]*)"$`, s.theResponseBodyShouldBe)

	s.registerGovernanceSteps(sc)
}

// Background steps

func (s *StepsContext) aBackOfficeServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExistsWithRole(fullName, role string) error {
	if err := s.aUserExistsWithNoRole(fullName); err != nil {
		return err
	}

	if err := s.tc.DB.Exec(`
		INSERT INTO roles (level) VALUES (?) ON CONFLICT (level) DO NOTHING
	`, role).Error; err != nil {
		return err
	}

	return s.tc.DB.Exec(`
		INSERT INTO user_roles (user_id, role) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role, updated_at = now()
	`, s.users[fullName], role).Error
}

func (s *StepsContext) aUserExistsWithNoRole(fullName string) error {
	if _, ok := s.users[fullName]; ok {
		return nil
	}

	// Steps contexts are per-scenario but the database is shared, so an
	// existing row keeps its id.
	email := strings.ToLower(strings.ReplaceAll(fullName, " ", ".")) + "@franqsuite.test"
	var userID uuid.UUID
	err := s.tc.DB.Raw(`
		INSERT INTO users (full_name, email) VALUES (?, ?)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, fullName, email).Scan(&userID).Error
	if err != nil {
		return err
	}

	s.users[fullName] = userID
	return nil
}

func (s *StepsContext) aGovernedTableExists(tableName string) error {
	if err := s.tc.DB.Exec(`
		INSERT INTO governed_tables (table_name, display_name) VALUES (?, ?)
		ON CONFLICT (table_name) DO NOTHING
	`, tableName, tableName).Error; err != nil {
		return err
	}

	// The physical table backing the governed entry. Test rows only carry
	// a couple of free-form columns.
	return s.tc.DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			nome text,
			notas text
		)
	`, tableName)).Error
}

func (s *StepsContext) iAmSignedInAs(fullName string) error {
	userID, ok := s.users[fullName]
	if !ok {
		return fmt.Errorf("unknown user %q, create it first", fullName)
	}

	token, err := s.tc.Sessions.IssueToken(userID, fullName)
	if err != nil {
		return err
	}
	s.authToken = token
	return nil
}

// Permission setup steps

func parsePrivileges(privileges string) (create, read, update, del bool) {
	for _, p := range strings.Split(privileges, ",") {
		switch strings.TrimSpace(p) {
		case "create":
			create = true
		case "read":
			read = true
		case "update":
			update = true
		case "delete":
			del = true
		}
	}
	return
}

func (s *StepsContext) roleIsGrantedOn(role, privileges, tableName string) error {
	create, read, update, del := parsePrivileges(privileges)
	return s.tc.DB.Exec(`
		INSERT INTO role_table_permissions (role, table_name, can_create, can_read, can_update, can_delete)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (role, table_name) DO UPDATE SET
			can_create = EXCLUDED.can_create,
			can_read = EXCLUDED.can_read,
			can_update = EXCLUDED.can_update,
			can_delete = EXCLUDED.can_delete
	`, role, tableName, create, read, update, del).Error
}

func (s *StepsContext) userHasOverrideAllowing(fullName, tableName, privileges string) error {
	userID, ok := s.users[fullName]
	if !ok {
		return fmt.Errorf("unknown user %q, create it first", fullName)
	}

	create, read, update, del := parsePrivileges(privileges)
	return s.tc.DB.Exec(`
		INSERT INTO user_table_permissions (user_id, table_name, can_create, can_read, can_update, can_delete)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, table_name) DO UPDATE SET
			can_create = EXCLUDED.can_create,
			can_read = EXCLUDED.can_read,
			can_update = EXCLUDED.can_update,
			can_delete = EXCLUDED.can_delete,
			updated_at = now()
	`, userID, tableName, create, read, update, del).Error
}

func (s *StepsContext) userHasOverrideAllowingNothing(fullName, tableName string) error {
	return s.userHasOverrideAllowing(fullName, tableName, "")
}

// HTTP plumbing

func (s *StepsContext) doRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseBodyShouldBe(expected string) error {
	actual := strings.TrimSpace(string(s.responseBody))
	if actual != expected {
		return fmt.Errorf("expected body %q, got %q", expected, actual)
	}
	return nil
}
