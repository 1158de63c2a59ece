package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/repos"
	"github.com/dorotad/contacts-backend/internal/requestdata"
	"github.com/dorotad/contacts-backend/internal/types"
	"github.com/dorotad/contacts-backend/internal/utils"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (*types.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *types.User, error)
	LogoutUser(ctx context.Context) error
	VerifyEmail(ctx context.Context, verificationToken string) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	emailService EmailService
	jwtSecretKey string
	tokenTTL     time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	emailService EmailService,
	jwtSecretKey string,
	tokenTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		userRepo:     userRepo,
		emailService: emailService,
		jwtSecretKey: jwtSecretKey,
		tokenTTL:     tokenTTL,
	}
}

func (as *authService) RegisterUser(ctx context.Context, email, password string) (*types.User, error) {
	email = strings.TrimSpace(email)

	// Fast path only. The unique index on user.email decides the race.
	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, ErrEmailInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken := uuid.New().String()
	user := &types.User{
		ID:                uuid.New(),
		Email:             email,
		Password:          string(hashed),
		Subscription:      types.DefaultSubscription,
		AvatarURL:         utils.GravatarURL(email),
		VerificationToken: &verificationToken,
		Verify:            false,
	}

	if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Best effort: registration success is not coupled to deliverability.
	if err := as.emailService.SendVerificationEmail(ctx, user.Email, verificationToken); err != nil {
		as.log.Warn("Verification email dispatch failed", "email", user.Email, "error", err)
	}

	return user, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, *types.User, error) {
	email = strings.TrimSpace(email)

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return "", nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	if len(users) == 0 {
		return "", nil, ErrInvalidCredentials
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	if err := as.userRepo.UpdateFields(ctx, nil, user.ID, map[string]interface{}{"token": token}); err != nil {
		return "", nil, fmt.Errorf("failed to store session token: %w", err)
	}
	user.Token = token

	return token, user, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return ErrNoIdentity
	}
	// Revocation by overwrite: clearing the stored token invalidates the
	// session the gate would otherwise accept.
	return as.userRepo.UpdateFields(ctx, nil, rd.UserID, map[string]interface{}{"token": ""})
}

func (as *authService) VerifyEmail(ctx context.Context, verificationToken string) error {
	users, err := as.userRepo.GetByVerificationTokens(ctx, nil, []string{verificationToken})
	if err != nil {
		return fmt.Errorf("error retrieving user by verification token: %w", err)
	}
	if len(users) == 0 {
		return ErrNotFound
	}

	// Single use: nulling the token makes a replay miss with 404.
	return as.userRepo.UpdateFields(ctx, nil, users[0].ID, map[string]interface{}{
		"verification_token": nil,
		"verify":             true,
	})
}

func (as *authService) generateToken(user *types.User) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

// SetContextFromToken verifies a bearer token and attaches the resolved
// identity to the context. The presented token must also equal the one
// stored on the user record, so a logged-out token is rejected even while
// its signature is still valid.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return ctx, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("invalid or expired token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve token user: %w", err)
	}
	if len(users) == 0 {
		return ctx, fmt.Errorf("token user does not exist")
	}
	user := users[0]
	if user.Token != tokenString {
		return ctx, fmt.Errorf("token has been revoked")
	}

	rd := &requestdata.RequestData{
		UserID:      user.ID,
		Email:       user.Email,
		TokenString: tokenString,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}
