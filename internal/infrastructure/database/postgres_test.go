package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dcastano/ventas-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestSeedAdminUserNoopWhenUnconfigured(t *testing.T) {
	db, mock := newMockDB(t)

	require.NoError(t, SeedAdminUser(db, &config.AdminConfig{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUserSkipsExisting(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "admin"))

	err := SeedAdminUser(db, &config.AdminConfig{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUserCreatesWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := SeedAdminUser(db, &config.AdminConfig{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUserPropagatesLookupError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM "users"`).
		WillReturnError(assert.AnError)

	err := SeedAdminUser(db, &config.AdminConfig{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "s3cret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
