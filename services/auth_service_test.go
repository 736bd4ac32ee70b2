package services

import (
	"testing"
	"time"

	"github.com/dizzyfrogs/chunklog/config"
	"github.com/dizzyfrogs/chunklog/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func userRow(t *testing.T, id uint, username, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "activity_level"}).
		AddRow(id, username, email, hash, "sedentary")
}

func TestLogin_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "correct-horse"))

	pair, err := svc.Login("alice@example.com", "correct-horse")
	require.NoError(t, err)

	userID, err := utils.VerifyToken(pair.AccessToken, utils.TokenPurposeAccess, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	userID, err = utils.VerifyToken(pair.RefreshToken, utils.TokenPurposeRefresh, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Mixed-case identifiers are normalized before the lookup, so
// "Alice@Example.com" behaves exactly like "alice@example.com".
func TestLogin_CaseInsensitiveIdentifier(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "correct-horse"))

	_, err := svc.Login("Alice@Example.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_FallsBackToUsername(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice", 1).
		WillReturnError(errRecordNotFound())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "correct-horse"))

	_, err := svc.Login("alice", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Unknown user and wrong password are indistinguishable to the caller.
func TestLogin_InvalidCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewAuthService(db, testConfig())

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnError(errRecordNotFound())
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
			WillReturnError(errRecordNotFound())

		_, err := svc.Login("ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewAuthService(db, testConfig())

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "correct-horse"))

		_, err := svc.Login("alice@example.com", "wrong-battery-staple")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegister_DuplicateEmailCheckedFirst(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	// Only the email lookup runs; a username collision is never reached.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("bob@example.com", 1).
		WillReturnRows(userRow(t, 3, "bob", "bob@example.com", "pw-irrelevant"))

	_, err := svc.Register("Bob", "Bob@Example.com", "some-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(errRecordNotFound())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("bob", 1).
		WillReturnRows(userRow(t, 3, "bob", "other@example.com", "pw-irrelevant"))

	_, err := svc.Register("Bob", "new@example.com", "some-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(errRecordNotFound())
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnError(errRecordNotFound())
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	user, err := svc.Register(" Carol ", "Carol@Example.COM", "some-password")
	require.NoError(t, err)

	assert.Equal(t, "carol", user.Username)
	assert.Equal(t, "carol@example.com", user.Email)
	assert.NotEqual(t, "some-password", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("some-password", user.PasswordHash))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	access, err := utils.GenerateToken(7, utils.TokenPurposeAccess, []byte("test-secret"), time.Hour)
	require.NoError(t, err)

	_, err = svc.Refresh(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	refresh, err := utils.GenerateToken(7, utils.TokenPurposeRefresh, []byte("test-secret"), time.Hour)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(t, 7, "alice", "alice@example.com", "pw"))

	access, err := svc.Refresh(refresh)
	require.NoError(t, err)

	userID, err := utils.VerifyToken(access, utils.TokenPurposeAccess, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}
