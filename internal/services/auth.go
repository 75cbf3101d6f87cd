package services

import (
	"context"
	"errors"
	"time"

	"quiz-admin-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminOnly          = errors.New("Access denied: admin only")
)

type AuthService struct {
	db            *gorm.DB
	jwtSecret     []byte
	operatorEmail string
	log           *zap.SugaredLogger
}

func NewAuthService(db *gorm.DB, jwtSecret, operatorEmail string, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		db:            db,
		jwtSecret:     []byte(jwtSecret),
		operatorEmail: operatorEmail,
		log:           log,
	}
}

// SignIn resolves credentials against the identity store and returns the
// identity plus a session token. Failures collapse into one message; callers
// never learn whether the email or the password was wrong.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Identity, string, error) {
	var identity models.Identity
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(identity.UID)
	if err != nil {
		return nil, "", err
	}
	return &identity, token, nil
}

// Resolve loads the identity for a uid. The caller bounds the wait through
// ctx; a deadline is reported as-is so it can be treated as signed out.
func (s *AuthService) Resolve(ctx context.Context, uid string) (*models.Identity, error) {
	var identity models.Identity
	if err := s.db.WithContext(ctx).First(&identity, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

// Authorize decides whether the identity may use the admin panel, evaluated
// once per resolved identity:
//  1. a login record keyed by the uid marked admin authorizes;
//  2. else exactly one admin-marked login record matching the email
//     authorizes, and a record keyed by the uid is backfilled best-effort;
//  3. else the operator email bootstraps a fresh admin record;
//  4. else ErrAdminOnly, and no further reads happen for this request.
func (s *AuthService) Authorize(ctx context.Context, identity *models.Identity) (*models.UserRecord, error) {
	db := s.db.WithContext(ctx)

	var record models.UserRecord
	err := db.First(&record, "id = ?", identity.UID).Error
	if err == nil && record.IsAdmin {
		return &record, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var byEmail []models.UserRecord
	if err := db.Where("email = ?", identity.Email).Find(&byEmail).Error; err != nil {
		return nil, err
	}
	admins := make([]models.UserRecord, 0, len(byEmail))
	for _, r := range byEmail {
		if r.IsAdmin {
			admins = append(admins, r)
		}
	}
	if len(admins) == 1 {
		matched := admins[0]
		if matched.ID != identity.UID {
			backfill := matched
			backfill.ID = identity.UID
			if err := db.Create(&backfill).Error; err != nil {
				// non-fatal: the email match already authorized the identity
				s.log.Warnf("auth: backfill of login record %s failed: %v", identity.UID, err)
			}
		}
		return &matched, nil
	}

	if s.operatorEmail != "" && identity.Email == s.operatorEmail {
		bootstrap := models.UserRecord{
			ID:      identity.UID,
			Name:    identity.DisplayName,
			Email:   identity.Email,
			IsAdmin: true,
		}
		if err := db.Create(&bootstrap).Error; err != nil {
			return nil, err
		}
		s.log.Infof("auth: bootstrapped admin record for operator %s", identity.Email)
		return &bootstrap, nil
	}

	return nil, ErrAdminOnly
}

func (s *AuthService) GenerateToken(uid string) (string, error) {
	claims := jwt.MapClaims{
		"sub": uid,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	uid, ok := claims["sub"].(string)
	if !ok || uid == "" {
		return "", errors.New("invalid subject in token")
	}
	return uid, nil
}
