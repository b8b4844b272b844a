package audit

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := MutationEvent{
		UserID:   "5f4c2f7e-9a6e-4e5d-8f3a-111111111111",
		Action:   "update",
		Table:    "clientes",
		RecordID: "42",
	}

	mock.ExpectExec(`INSERT INTO operator_messages`).
		WithArgs(
			FacilityAuthPriv,  // facility
			int(SeverityInfo), // severity
			sqlmock.AnyArg(),  // timestamp
			sqlmock.AnyArg(),  // hostname
			"backoffice",      // appname
			sqlmock.AnyArg(),  // procid
			"update",          // msgid
			sqlmock.AnyArg(),  // sdata (JSON)
			sqlmock.AnyArg(),  // message
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveWriteFailureEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	store := NewStoreWithDB(db)

	event := WriteFailureEvent{
		UserID:       "5f4c2f7e-9a6e-4e5d-8f3a-111111111111",
		Action:       "delete",
		Table:        "franquias",
		RecordID:     "7",
		ErrorMessage: "connection refused",
	}

	mock.ExpectExec(`INSERT INTO operator_messages`).
		WithArgs(
			FacilityAuthPriv,
			int(SeverityError),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"backoffice",
			sqlmock.AnyArg(),
			"audit-failure",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Save(event)
	if err != nil {
		t.Errorf("Save() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestStoreSaveNilDB(t *testing.T) {
	store := &Store{}

	err := store.Save(MutationEvent{Action: "create", Table: "clientes"})
	if err != nil {
		t.Errorf("Save() with nil db should be a no-op, got error = %v", err)
	}
}
