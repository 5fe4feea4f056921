package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/auth"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/jwt"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		google:     google,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	// New registrations wait for admin approval before they can log in.
	newUser := user.User{
		Email:         req.Email,
		PasswordHash:  &hashedStr,
		Role:          user.RoleIntern,
		Status:        user.StatusPending,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Course:        req.Course,
		School:        req.School,
		Address:       req.Address,
	}

	created, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("intern registration received", "user_id", created.ID, "email", created.Email)
	return nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	usr, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if usr.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := checkAccountStatus(usr); err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(usr)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	usr, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if err := checkAccountStatus(usr); err != nil {
		return auth.TokenResponse{}, err
	}

	// Rotate: the old refresh token dies with the exchange.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(usr)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(userAgent string) string {
	state := a.google.GenerateState(userAgent)
	return a.google.RedirectURL(state)
}

// GoogleCallback implements auth.AuthService.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, state string, code string, userAgent string) (auth.TokenResponse, error) {
	if state == "" || code == "" {
		return auth.TokenResponse{}, auth.ErrOAuthStateMismatch
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google profile: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	usr, err := a.userRepo.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}

	if err := checkAccountStatus(usr); err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(usr)
}

func (a *AuthServiceImpl) issueTokens(usr user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:    accessToken,
		ExpiresAt:      accessExp,
		RefreshToken:   refreshToken,
		RefreshExpires: refreshExp,
		User:           user.ToResponse(usr),
	}, nil
}

func checkAccountStatus(usr user.User) error {
	switch usr.Status {
	case user.StatusApproved:
		return nil
	case user.StatusDisapproved:
		return user.ErrAccountDisapproved
	default:
		return user.ErrAccountNotApproved
	}
}
