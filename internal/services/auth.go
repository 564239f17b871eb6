package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xevscan/scan-api/internal/logger"
	"github.com/xevscan/scan-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingFields            = errors.New("missing required fields")
	ErrInvalidEmail             = errors.New("invalid email address")
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrEmailNotVerified         = errors.New("email not verified")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrUserNotFound             = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// VerificationMailer delivers account verification links.
type VerificationMailer interface {
	SendVerification(ctx context.Context, email, token string) error
}

// AuthService handles registration, verification and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	devices DeviceReader
	jwt     JWTGenerator
	mailer  VerificationMailer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	devices DeviceReader,
	jwt JWTGenerator,
	mailer VerificationMailer,
) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		devices: devices,
		jwt:     jwt,
		mailer:  mailer,
	}
}

// Register creates an unverified account and sends the verification link.
// A failed mail delivery does not fail the registration.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !govalidator.IsEmail(email) {
		return uuid.Nil, ErrInvalidEmail
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return uuid.Nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	token, err := newVerificationToken()
	if err != nil {
		logger.Log.Errorw("failed to generate verification token", "err", err)
		return uuid.Nil, err
	}

	user := &models.UserDB{
		ID:                uuid.New(),
		Email:             email,
		PasswordHash:      string(hashedPassword),
		Name:              name,
		IsVerified:        false,
		VerificationToken: &token,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrEmailAlreadyRegistered
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	if err := svc.mailer.SendVerification(ctx, email, token); err != nil {
		logger.Log.Errorw("failed to send verification email", "email", email, "err", err)
	}

	return user.ID, nil
}

// Login authenticates a verified user and returns a JWT token plus profile.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", models.UserProfile{}, err
	}
	if user == nil {
		logger.Log.Errorw("unknown email", "email", email)
		return "", models.UserProfile{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", models.UserProfile{}, ErrInvalidCredentials
	}

	if !user.IsVerified {
		logger.Log.Errorw("login before verification", "email", email)
		return "", models.UserProfile{}, ErrEmailNotVerified
	}

	deviceIDs, err := svc.devices.DeviceIDs(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return "", models.UserProfile{}, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", models.UserProfile{}, err
	}

	return token, user.Profile(deviceIDs), nil
}

// Verify consumes a verification token. The transition happens once; the
// token is cleared and never matches again.
func (svc *AuthService) Verify(ctx context.Context, token string) error {
	user, err := svc.reader.GetByVerificationToken(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to look up verification token", "err", err)
		return err
	}
	if user == nil {
		return ErrInvalidVerificationToken
	}

	if err := svc.writer.MarkVerified(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to mark user verified", "err", err)
		return err
	}

	return nil
}

// Profile returns the caller's own account with linked device ids.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return models.UserProfile{}, err
	}
	if user == nil {
		return models.UserProfile{}, ErrUserNotFound
	}

	deviceIDs, err := svc.devices.DeviceIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user devices", "err", err)
		return models.UserProfile{}, err
	}

	return user.Profile(deviceIDs), nil
}

// newVerificationToken returns a URL-safe single-use token.
func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation, the storage-level backstop for duplicate emails and duplicate
// device links under concurrent requests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
