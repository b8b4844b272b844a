package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"
)

// registerGovernanceSteps wires the steps that exercise governed record
// CRUD, effective permission resolution, the audit trail and the delivery
// ledger.
func (s *StepsContext) registerGovernanceSteps(sc *godog.ScenarioContext) {
	// Record steps
	sc.Step(`^I create a record in "([^"]*)" with:$`, s.iCreateARecordInWith)
	sc.Step(`^I list the records of "([^"]*)"$`, s.iListTheRecordsOf)
	sc.Step(`^I update the record in "([^"]*)" with:$`, s.iUpdateTheRecordInWith)
	sc.Step(`^I delete the record from "([^"]*)"$`, s.iDeleteTheRecordFrom)
	sc.Step(`^the record list should have (\d+) entries$`, s.theRecordListShouldHaveEntries)

	// Effective permission steps
	sc.Step(`^I fetch the effective permissions of "([^"]*)" on "([^"]*)"$`, s.iFetchTheEffectivePermissionsOf)
	sc.Step(`^the permission source should be "([^"]*)"$`, s.thePermissionSourceShouldBe)
	sc.Step(`^the permissions should allow "([^"]*)" and deny "([^"]*)"$`, s.thePermissionsShouldAllowAndDeny)

	// Audit steps
	sc.Step(`^I list the audit trail$`, s.iListTheAuditTrail)
	sc.Step(`^the audit trail should have (\d+) entries for table "([^"]*)"$`, s.theAuditTrailShouldHaveEntriesForTable)
	sc.Step(`^the latest audit entry should record a "([^"]*)" on "([^"]*)" by "([^"]*)"$`, s.theLatestAuditEntryShouldRecord)

	// Delivery ledger steps
	sc.Step(`^I record a delivery attempt with status (\d+)$`, s.iRecordADeliveryAttemptWithStatus)
	sc.Step(`^I record a failed delivery attempt with error "([^"]*)"$`, s.iRecordAFailedDeliveryAttempt)
	sc.Step(`^I list the delivery attempts$`, s.iListTheDeliveryAttempts)
	sc.Step(`^the delivery list should have (\d+) entries$`, s.theDeliveryListShouldHaveEntries)
	sc.Step(`^I purge the delivery ledger$`, s.iPurgeTheDeliveryLedger)
	sc.Step(`^the purge count should be (\d+)$`, s.thePurgeCountShouldBe)
}

// Record steps

func (s *StepsContext) iCreateARecordInWith(tableName string, body *godog.DocString) error {
	path := fmt.Sprintf("/tables/%s/records", url.PathEscape(tableName))
	if err := s.doRequest(http.MethodPost, path, bytes.NewReader([]byte(body.Content))); err != nil {
		return err
	}

	// Remember the id for follow-up update/delete steps
	if s.response.StatusCode == http.StatusCreated {
		var created map[string]string
		if err := json.Unmarshal(s.responseBody, &created); err == nil {
			s.lastRecordID = created["id"]
		}
	}
	return nil
}

func (s *StepsContext) iListTheRecordsOf(tableName string) error {
	path := fmt.Sprintf("/tables/%s/records", url.PathEscape(tableName))
	return s.doRequest(http.MethodGet, path, nil)
}

func (s *StepsContext) iUpdateTheRecordInWith(tableName string, body *godog.DocString) error {
	if s.lastRecordID == "" {
		return fmt.Errorf("no record has been created yet")
	}
	path := fmt.Sprintf("/tables/%s/records/%s", url.PathEscape(tableName), s.lastRecordID)
	return s.doRequest(http.MethodPut, path, bytes.NewReader([]byte(body.Content)))
}

func (s *StepsContext) iDeleteTheRecordFrom(tableName string) error {
	if s.lastRecordID == "" {
		return fmt.Errorf("no record has been created yet")
	}
	path := fmt.Sprintf("/tables/%s/records/%s", url.PathEscape(tableName), s.lastRecordID)
	return s.doRequest(http.MethodDelete, path, nil)
}

func (s *StepsContext) theRecordListShouldHaveEntries(expected int) error {
	var rows []map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &rows); err != nil {
		return fmt.Errorf("failed to parse record list: %w", err)
	}
	if len(rows) != expected {
		return fmt.Errorf("expected %d records, got %d", expected, len(rows))
	}
	return nil
}

// Effective permission steps

func (s *StepsContext) iFetchTheEffectivePermissionsOf(fullName, tableName string) error {
	userID, ok := s.users[fullName]
	if !ok {
		return fmt.Errorf("unknown user %q, create it first", fullName)
	}
	path := fmt.Sprintf("/permissions/effective/%s/%s", userID, url.PathEscape(tableName))
	return s.doRequest(http.MethodGet, path, nil)
}

func (s *StepsContext) thePermissionSourceShouldBe(expected string) error {
	var result map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	source, _ := result["source"].(string)
	if source != expected {
		return fmt.Errorf("expected source %q, got %q", expected, source)
	}
	return nil
}

func (s *StepsContext) thePermissionsShouldAllowAndDeny(allowed, denied string) error {
	var result map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	check := func(privileges string, want bool) error {
		aCreate, aRead, aUpdate, aDelete := parsePrivileges(privileges)
		for field, expected := range map[string]bool{
			"can_create": aCreate,
			"can_read":   aRead,
			"can_update": aUpdate,
			"can_delete": aDelete,
		} {
			if !expected {
				continue
			}
			actual, _ := result[field].(bool)
			if actual != want {
				return fmt.Errorf("expected %s=%v, got %v", field, want, actual)
			}
		}
		return nil
	}

	if err := check(allowed, true); err != nil {
		return err
	}
	return check(denied, false)
}

// Audit steps

func (s *StepsContext) iListTheAuditTrail() error {
	return s.doRequest(http.MethodGet, "/audit", nil)
}

func (s *StepsContext) theAuditTrailShouldHaveEntriesForTable(expected int, tableName string) error {
	var count int64
	if err := s.tc.DB.Raw(`
		SELECT COUNT(*) FROM audit_logs WHERE table_name = ?
	`, tableName).Scan(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d audit entries for %s, got %d", expected, tableName, count)
	}
	return nil
}

func (s *StepsContext) theLatestAuditEntryShouldRecord(action, tableName, fullName string) error {
	var result struct {
		Entries []struct {
			Action       string `json:"action"`
			TableName    string `json:"table_name"`
			UserFullName string `json:"user_full_name"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse audit response: %w", err)
	}
	if len(result.Entries) == 0 {
		return fmt.Errorf("audit trail is empty")
	}

	latest := result.Entries[0]
	if latest.Action != action {
		return fmt.Errorf("expected action %q, got %q", action, latest.Action)
	}
	if latest.TableName != tableName {
		return fmt.Errorf("expected table %q, got %q", tableName, latest.TableName)
	}
	if latest.UserFullName != fullName {
		return fmt.Errorf("expected user %q, got %q", fullName, latest.UserFullName)
	}
	return nil
}

// Delivery ledger steps

func (s *StepsContext) iRecordADeliveryAttemptWithStatus(status int) error {
	success := status >= 200 && status < 300
	payload := map[string]interface{}{
		"status_code":  status,
		"success":      success,
		"attempt":      1,
		"request_body": map[string]interface{}{"evento": "novo_cliente"},
		"response_body": map[string]interface{}{
			"recebido": success,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.doRequest(http.MethodPost, "/deliveries", bytes.NewReader(body))
}

func (s *StepsContext) iRecordAFailedDeliveryAttempt(errorMessage string) error {
	payload := map[string]interface{}{
		"success":       false,
		"attempt":       1,
		"error_message": errorMessage,
		"request_body":  map[string]interface{}{"evento": "novo_cliente"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.doRequest(http.MethodPost, "/deliveries", bytes.NewReader(body))
}

func (s *StepsContext) iListTheDeliveryAttempts() error {
	return s.doRequest(http.MethodGet, "/deliveries", nil)
}

func (s *StepsContext) theDeliveryListShouldHaveEntries(expected int) error {
	var rows []map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &rows); err != nil {
		return fmt.Errorf("failed to parse delivery list: %w", err)
	}
	if len(rows) != expected {
		return fmt.Errorf("expected %d delivery attempts, got %d", expected, len(rows))
	}
	return nil
}

func (s *StepsContext) iPurgeTheDeliveryLedger() error {
	return s.doRequest(http.MethodDelete, "/deliveries", nil)
}

func (s *StepsContext) thePurgeCountShouldBe(expected int) error {
	var result struct {
		Deleted int64 `json:"deleted"`
	}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse purge response: %w", err)
	}
	if result.Deleted != int64(expected) {
		return fmt.Errorf("expected %d deleted, got %d", expected, result.Deleted)
	}
	return nil
}
