package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quiz-admin-backend/internal/models"
)

const operatorEmail = "admin@gmail.com"

type AuthServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
	ctx     context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAuthService(s.db, "test-secret", operatorEmail, zap.NewNop().Sugar())
	s.ctx = context.Background()
}

func (s *AuthServiceSuite) seedIdentity(uid, email, name, password string) *models.Identity {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	identity := models.Identity{
		UID:          uid,
		Email:        email,
		DisplayName:  name,
		PasswordHash: string(hash),
	}
	s.Require().NoError(s.db.Create(&identity).Error)
	return &identity
}

// Sign-in

func (s *AuthServiceSuite) TestSignInSucceeds() {
	s.seedIdentity("u1", "someone@x.com", "Someone", "secret123")

	identity, token, err := s.service.SignIn(s.ctx, "someone@x.com", "secret123")
	s.Require().NoError(err)
	s.Equal("u1", identity.UID)
	s.NotEmpty(token)
}

func (s *AuthServiceSuite) TestSignInWrongPassword() {
	s.seedIdentity("u1", "someone@x.com", "Someone", "secret123")

	_, _, err := s.service.SignIn(s.ctx, "someone@x.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestSignInUnknownEmail() {
	_, _, err := s.service.SignIn(s.ctx, "nobody@x.com", "secret123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestTokenRoundTrip() {
	token, err := s.service.GenerateToken("u42")
	s.Require().NoError(err)

	uid, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal("u42", uid)
}

func (s *AuthServiceSuite) TestValidateTokenRejectsGarbage() {
	_, err := s.service.ValidateToken("not-a-token")
	s.Error(err)
}

// Authorization algorithm

func (s *AuthServiceSuite) TestAuthorizeByUIDRecord() {
	identity := s.seedIdentity("u1", "someone@x.com", "Someone", "pw")
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "u1", Email: "someone@x.com", IsAdmin: true}).Error)

	record, err := s.service.Authorize(s.ctx, identity)
	s.Require().NoError(err)
	s.Equal("u1", record.ID)
	s.True(record.IsAdmin)
}

func (s *AuthServiceSuite) TestAuthorizeUIDRecordWithoutAdminFallsThrough() {
	identity := s.seedIdentity("u1", "someone@x.com", "Someone", "pw")
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "u1", Email: "someone@x.com"}).Error)

	_, err := s.service.Authorize(s.ctx, identity)
	s.ErrorIs(err, ErrAdminOnly)
}

func (s *AuthServiceSuite) TestAuthorizeByEmailBackfillsUIDRecord() {
	identity := s.seedIdentity("u9", "boss@x.com", "Boss", "pw")
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "legacy-id", Email: "boss@x.com", IsAdmin: true, KBSQuiz: true}).Error)

	record, err := s.service.Authorize(s.ctx, identity)
	s.Require().NoError(err)
	s.True(record.IsAdmin)

	var backfilled models.UserRecord
	s.Require().NoError(s.db.First(&backfilled, "id = ?", "u9").Error)
	s.True(backfilled.IsAdmin)
	s.True(backfilled.KBSQuiz)
	s.Equal("boss@x.com", backfilled.Email)
}

func (s *AuthServiceSuite) TestAuthorizeBackfillFailureIsNonFatal() {
	// A non-admin record already occupies the uid key, so the backfill
	// insert conflicts. Authorization must still succeed off the email match.
	identity := s.seedIdentity("u9", "boss@x.com", "Boss", "pw")
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "u9", Email: "old@x.com"}).Error)
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "legacy-id", Email: "boss@x.com", IsAdmin: true}).Error)

	record, err := s.service.Authorize(s.ctx, identity)
	s.Require().NoError(err)
	s.True(record.IsAdmin)
}

func (s *AuthServiceSuite) TestAuthorizeAmbiguousEmailDenies() {
	identity := s.seedIdentity("u9", "boss@x.com", "Boss", "pw")
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "a1", Email: "boss@x.com", IsAdmin: true}).Error)
	s.Require().NoError(s.db.Create(&models.UserRecord{ID: "a2", Email: "boss@x.com", IsAdmin: true}).Error)

	_, err := s.service.Authorize(s.ctx, identity)
	s.ErrorIs(err, ErrAdminOnly)
}

func (s *AuthServiceSuite) TestAuthorizeOperatorBootstrap() {
	identity := s.seedIdentity("u1", operatorEmail, "Operator", "pw")

	record, err := s.service.Authorize(s.ctx, identity)
	s.Require().NoError(err)
	s.True(record.IsAdmin)

	var created models.UserRecord
	s.Require().NoError(s.db.First(&created, "id = ?", "u1").Error)
	s.True(created.IsAdmin)
	s.Equal(operatorEmail, created.Email)
}

func (s *AuthServiceSuite) TestAuthorizeDeniesNonAdmin() {
	identity := s.seedIdentity("u2", "player@x.com", "Player", "pw")

	_, err := s.service.Authorize(s.ctx, identity)
	s.ErrorIs(err, ErrAdminOnly)
	s.EqualError(err, "Access denied: admin only")

	// denial must not create any login record
	var count int64
	s.Require().NoError(s.db.Model(&models.UserRecord{}).Count(&count).Error)
	s.Zero(count)
}
