package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hcorbage/corb3d/internal/config"
	"github.com/hcorbage/corb3d/internal/crypto"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

// TokenIssuer is the "iss" claim of every session token.
const TokenIssuer = "corb3d"

// authService is the concrete implementation of AuthService.
// It verifies credentials with a PasswordHasher, keeps sessions in the
// session repository and signs the cookie token with the session secret.
type authService struct {
	repos  *store.Repositories
	hasher crypto.PasswordHasher
	creds  crypto.CredentialGenerator
	ids    *utils.UUIDGenerator

	// sessionSecret signs and verifies session tokens.
	sessionSecret string

	// sessionTTL controls how long a session created at login stays valid.
	sessionTTL time.Duration

	// masterUsername is the reserved username of the master admin.
	masterUsername string

	// masterPassword, when set, lets EnsureMasterAdmin create the master admin.
	masterPassword string

	now    clock
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with session parameters from cfg.
func NewAuthService(repos *store.Repositories, hasher crypto.PasswordHasher, creds crypto.CredentialGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		repos:          repos,
		hasher:         hasher,
		creds:          creds,
		ids:            utils.NewUUIDGenerator(),
		sessionSecret:  cfg.SessionSecret,
		sessionTTL:     cfg.SessionTTL,
		masterUsername: cfg.MasterAdminUsername,
		masterPassword: cfg.MasterAdminPassword,
		now:            utcNow,
		logger:         logger,
	}
}

// Login authenticates a user and opens a session.
//
// On success the sole user of a fresh installation is promoted to admin, the
// material catalogue of the user is seeded when empty and expired sessions of
// the user are purged.
//
// Returns:
//   - ErrCredentialsRequired if username or password is blank.
//   - ErrInvalidCredentials if the user does not exist or the password does
//     not verify.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, models.Token, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return models.LoginResult{}, models.Token{}, ErrCredentialsRequired
	}

	user, err := a.repos.Users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", username).Msg("login for unknown user")
		return models.LoginResult{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, credentials.Password) {
		log.Info().Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResult{}, models.Token{}, ErrInvalidCredentials
	}

	if !user.IsAdmin {
		if user.IsAdmin, err = a.promoteSoleUser(ctx, user); err != nil {
			return models.LoginResult{}, models.Token{}, err
		}
	}

	if _, err = seedMaterials(ctx, a.repos.Materials, user.ID); err != nil {
		return models.LoginResult{}, models.Token{}, err
	}

	now := a.now()
	if purged, purgeErr := a.repos.Sessions.DeleteExpiredSessions(ctx, user.ID, now); purgeErr != nil {
		log.Warn().Err(purgeErr).Str("user_id", user.ID).Msg("failed to purge expired sessions")
	} else if purged > 0 {
		log.Debug().Str("user_id", user.ID).Int64("purged", purged).Msg("purged expired sessions")
	}

	session := models.Session{
		ID:            a.ids.Generate(),
		UserID:        user.ID,
		Username:      user.Username,
		IsAdmin:       user.IsAdmin,
		IsMasterAdmin: user.Username == a.masterUsername,
		CreatedAt:     now,
		ExpiresAt:     now.Add(a.sessionTTL),
	}
	if err = a.repos.Sessions.CreateSession(ctx, session); err != nil {
		return models.LoginResult{}, models.Token{}, fmt.Errorf("creating session: %w", err)
	}

	token, err := utils.GenerateSessionToken(TokenIssuer, session.ID, user.ID, session.ExpiresAt, a.sessionSecret)
	if err != nil {
		return models.LoginResult{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("user_id", user.ID).Bool("is_admin", session.IsAdmin).Msg("user logged in")

	return models.LoginResult{
		CurrentUser:        session.CurrentUser(),
		MustChangePassword: user.MustChangePassword,
	}, token, nil
}

// promoteSoleUser makes user an admin when it is the only account in the
// system. Once promoted the check never runs again for that user.
func (a *authService) promoteSoleUser(ctx context.Context, user models.User) (bool, error) {
	count, err := a.repos.Users.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	if count != 1 {
		return false, nil
	}

	if err = a.repos.Users.SetAdmin(ctx, user.ID, true); err != nil {
		return false, fmt.Errorf("promoting first user: %w", err)
	}
	logger.FromContext(ctx).Info().Str("user_id", user.ID).Msg("first user promoted to admin")
	return true, nil
}

// Logout deletes the session. Unknown sessions are ignored.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := a.repos.Sessions.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Authenticate resolves the session named by a cookie token. Any failure is
// reported as ErrNotAuthenticated; infrastructure errors are wrapped as-is.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	if tokenString == "" {
		return models.Session{}, ErrNotAuthenticated
	}

	token, err := utils.ParseSessionToken(tokenString, a.sessionSecret, TokenIssuer)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	session, err := a.repos.Sessions.GetSession(ctx, token.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("loading session: %w", err)
	}

	if session.UserID != token.Subject {
		return models.Session{}, ErrNotAuthenticated
	}
	if session.Expired(a.now()) {
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, ErrSessionExpired)
	}

	return session, nil
}

// CheckAdmin reports whether username belongs to an admin. Blank and unknown
// usernames are not admins.
func (a *authService) CheckAdmin(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	user, err := a.repos.Users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user search by username failed: %w", err)
	}
	return user.IsAdmin, nil
}

// ResetPassword replaces the password of the named user with a generated
// temporary one and flags the account for a forced change.
//
// Admin accounts require the national id and birthdate on file:
//   - ErrIdentityProofRequired if either is missing from req.
//   - ErrIdentityProofMismatch if they do not match.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResult, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return models.ResetPasswordResult{}, ErrUsernameRequired
	}

	user, err := a.repos.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return models.ResetPasswordResult{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.IsAdmin {
		if strings.TrimSpace(req.NationalID) == "" || strings.TrimSpace(req.Birthdate) == "" {
			return models.ResetPasswordResult{}, ErrIdentityProofRequired
		}
		if !matches(user.NationalID, utils.OnlyDigits(req.NationalID)) || !matches(user.Birthdate, req.Birthdate) {
			log.Warn().Str("user_id", user.ID).Msg("identity proof mismatch on password reset")
			return models.ResetPasswordResult{}, ErrIdentityProofMismatch
		}
	}

	temp, err := a.creds.TempPassword()
	if err != nil {
		return models.ResetPasswordResult{}, fmt.Errorf("generating temporary password: %w", err)
	}
	hash, err := a.hasher.Hash(temp)
	if err != nil {
		return models.ResetPasswordResult{}, fmt.Errorf("hashing temporary password: %w", err)
	}

	if err = a.repos.Users.UpdatePassword(ctx, store.PasswordUpdate{
		UserID:             user.ID,
		PasswordHash:       hash,
		MustChangePassword: true,
	}); err != nil {
		return models.ResetPasswordResult{}, fmt.Errorf("storing temporary password: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("password reset")
	return models.ResetPasswordResult{TempPassword: temp}, nil
}

func matches(stored *string, given string) bool {
	return stored != nil && *stored == given
}

// ForceChangePassword sets the caller's password and clears the
// must-change flag. The stored hint is kept.
func (a *authService) ForceChangePassword(ctx context.Context, p policy.Principal, newPassword string) error {
	if p.UserID == "" {
		return ErrNotAuthenticated
	}
	if err := checkPasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err = a.repos.Users.UpdatePassword(ctx, store.PasswordUpdate{
		UserID:             p.UserID,
		PasswordHash:       hash,
		MustChangePassword: false,
	}); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}
	return nil
}

// PasswordHint returns the stored hint of username, nil when none is set.
func (a *authService) PasswordHint(ctx context.Context, username string) (*string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user, err := a.repos.Users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}
	return utils.TrimmedOrNil(user.PasswordHint), nil
}

// AdminContact returns the contact phone stored in the settings of the first
// admin, so a locked-out user knows whom to ask. username must exist.
func (a *authService) AdminContact(ctx context.Context, username string) (*string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	if _, err := a.repos.Users.GetUserByUsername(ctx, username); err != nil {
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	admin, err := a.repos.Users.GetFirstAdmin(ctx)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, ErrNoAdminFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading first admin: %w", err)
	}

	settings, err := a.repos.Settings.GetSettings(ctx, admin.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading admin settings: %w", err)
	}
	return utils.TrimmedOrNil(settings.AdminContactPhone), nil
}

// EnsureMasterAdmin creates the master admin at startup when a bootstrap
// password is configured and no user holds the reserved username yet.
func (a *authService) EnsureMasterAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.masterPassword == "" {
		log.Debug().Msg("master admin bootstrap disabled")
		return nil
	}

	_, err := a.repos.Users.GetUserByUsername(ctx, a.masterUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("looking up master admin: %w", err)
	}

	if err = checkPasswordStrength(a.masterPassword); err != nil {
		return fmt.Errorf("master admin password: %w", err)
	}
	hash, err := a.hasher.Hash(a.masterPassword)
	if err != nil {
		return fmt.Errorf("hashing master admin password: %w", err)
	}

	user, err := a.repos.Users.CreateUser(ctx, models.User{
		Username:     a.masterUsername,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating master admin: %w", err)
	}

	if _, err = seedMaterials(ctx, a.repos.Materials, user.ID); err != nil {
		return err
	}

	log.Info().Str("username", a.masterUsername).Msg("master admin created")
	return nil
}
