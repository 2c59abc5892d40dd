package gorm

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/toshiba/sw360/pkg/model"
	"github.com/toshiba/sw360/pkg/store"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	return gormDB, mock
}

func licenseBody(t *testing.T, lic *model.License) []byte {
	body, err := json.Marshal(lic)
	require.NoError(t, err)
	return body
}

func TestCollectionGet(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	stored := model.NewLicense("Apache-2.0")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "documents" WHERE doc_type = $1 AND id = $2 LIMIT 1`)).
		WithArgs(model.TypeLicense, "Apache-2.0").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc_type", "revision", "body"}).
			AddRow("Apache-2.0", model.TypeLicense, "3-abc123", licenseBody(t, stored)))

	lic, err := licenses.Get("Apache-2.0")
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0", lic.ID)
	assert.Equal(t, "3-abc123", lic.Revision)
	assert.Equal(t, "Apache-2.0", lic.GetShortname())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionGetNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "documents" WHERE doc_type = $1 AND id = $2 LIMIT 1`)).
		WithArgs(model.TypeLicense, "nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc_type", "revision", "body"}))

	_, err := licenses.Get("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionAddAssignsIDAndRevision(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "documents" ("id","doc_type","revision","body") VALUES ($1,$2,$3,$4)`)).
		WithArgs(sqlmock.AnyArg(), model.TypeLicense, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	lic := model.NewLicense("MIT")
	err := licenses.Add(lic)
	require.NoError(t, err)
	assert.NotEmpty(t, lic.ID)
	assert.Regexp(t, `^1-[0-9a-f]{16}$`, lic.Revision)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionAddKeepsCallerID(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "documents" ("id","doc_type","revision","body") VALUES ($1,$2,$3,$4)`)).
		WithArgs("EPL-1.0", model.TypeLicense, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	lic := model.NewLicense("EPL-1.0")
	lic.ID = "EPL-1.0"
	err := licenses.Add(lic)
	require.NoError(t, err)
	assert.Equal(t, "EPL-1.0", lic.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionAddWritesIndexes(t *testing.T) {
	db, mock := setupTestDB(t)
	requests := NewModerationRequests(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "documents" ("id","doc_type","revision","body") VALUES ($1,$2,$3,$4)`)).
		WithArgs(sqlmock.AnyArg(), model.TypeModerationRequest, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "document_indexes" ("doc_type","index_name","index_key","doc_id") VALUES ($1,$2,$3,$4)`)).
		WithArgs(model.TypeModerationRequest, store.IndexByDocumentID, "Apache-2.0", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := &model.ModerationRequest{
		Type:         model.TypeModerationRequest,
		DocumentID:   "Apache-2.0",
		DocumentType: model.TypeLicense,
	}
	err := requests.Add(req)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionUpdate(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "documents" SET "body"=$1,"revision"=$2 WHERE doc_type = $3 AND id = $4 AND revision = $5`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), model.TypeLicense, "MIT", "1-old").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "document_indexes" WHERE doc_type = $1 AND doc_id = $2`)).
		WithArgs(model.TypeLicense, "MIT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	lic := model.NewLicense("MIT")
	lic.ID = "MIT"
	lic.Revision = "1-old"
	err := licenses.Update(lic)
	require.NoError(t, err)
	assert.Regexp(t, `^2-[0-9a-f]{16}$`, lic.Revision)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionUpdateStaleRevision(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "documents" SET "body"=$1,"revision"=$2 WHERE doc_type = $3 AND id = $4 AND revision = $5`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), model.TypeLicense, "MIT", "1-stale").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count`).
		WithArgs(model.TypeLicense, "MIT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	lic := model.NewLicense("MIT")
	lic.ID = "MIT"
	lic.Revision = "1-stale"
	err := licenses.Update(lic)
	assert.ErrorIs(t, err, store.ErrConflict)
	// The document keeps its revision so the caller can re-fetch and retry.
	assert.Equal(t, "1-stale", lic.Revision)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionUpdateMissingDocument(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE "documents" SET "body"=$1,"revision"=$2 WHERE doc_type = $3 AND id = $4 AND revision = $5`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), model.TypeLicense, "gone", "1-old").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count`).
		WithArgs(model.TypeLicense, "gone").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	lic := model.NewLicense("gone")
	lic.ID = "gone"
	lic.Revision = "1-old"
	err := licenses.Update(lic)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRemove(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "documents" WHERE doc_type = $1 AND id = $2`)).
		WithArgs(model.TypeLicense, "MIT").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "document_indexes" WHERE doc_type = $1 AND doc_id = $2`)).
		WithArgs(model.TypeLicense, "MIT").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	lic := model.NewLicense("MIT")
	lic.ID = "MIT"
	err := licenses.Remove(lic)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRemoveNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	licenses := NewLicenses(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM "documents" WHERE doc_type = $1 AND id = $2`)).
		WithArgs(model.TypeLicense, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	lic := model.NewLicense("gone")
	lic.ID = "gone"
	err := licenses.Remove(lic)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionGetManyEmpty(t *testing.T) {
	db, _ := setupTestDB(t)
	licenses := NewLicenses(db)

	docs, err := licenses.GetMany(nil)
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCollectionQueryByIndex(t *testing.T) {
	db, mock := setupTestDB(t)
	requests := NewModerationRequests(db)

	stored := &model.ModerationRequest{
		Type:         model.TypeModerationRequest,
		DocumentID:   "Apache-2.0",
		DocumentType: model.TypeLicense,
	}
	body, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "documents" JOIN document_indexes`).
		WithArgs(model.TypeModerationRequest, store.IndexByDocumentID, "Apache-2.0").
		WillReturnRows(sqlmock.NewRows([]string{"id", "doc_type", "revision", "body"}).
			AddRow("mr1", model.TypeModerationRequest, "1-aaa", body))

	found, err := requests.QueryByIndex(store.IndexByDocumentID, "Apache-2.0")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "mr1", found[0].ID)
	assert.Equal(t, "Apache-2.0", found[0].DocumentID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextRevision(t *testing.T) {
	next := nextRevision("3-deadbeef")
	assert.Regexp(t, `^4-[0-9a-f]{16}$`, next)

	// A malformed stamp restarts the generation counter.
	assert.Regexp(t, `^1-[0-9a-f]{16}$`, nextRevision("garbage"))
}
