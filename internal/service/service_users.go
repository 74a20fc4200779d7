package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hcorbage/corb3d/internal/crypto"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/policy"
	"github.com/hcorbage/corb3d/internal/store"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

type userService struct {
	repos  *store.Repositories
	tx     store.Transactor
	policy *policy.Policy
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(repos *store.Repositories, tx store.Transactor, pol *policy.Policy, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		repos:  repos,
		tx:     tx,
		policy: pol,
		hasher: hasher,
		logger: logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, p policy.Principal) ([]models.User, error) {
	if _, err := scopeOf(ctx, s.policy, p, policy.User, policy.Read); err != nil {
		return nil, err
	}

	users, err := s.repos.Users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// CreateUser registers a new tenant admin. The account gets its own material
// catalogue in the same transaction.
func (s *userService) CreateUser(ctx context.Context, p policy.Principal, req models.CreateUserRequest) (models.CreatedUser, error) {
	if _, err := scopeOf(ctx, s.policy, p, policy.User, policy.Write); err != nil {
		return models.CreatedUser{}, err
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return models.CreatedUser{}, ErrCredentialsRequired
	}
	if err := checkPasswordStrength(req.Password); err != nil {
		return models.CreatedUser{}, err
	}
	nationalID := utils.OnlyDigits(req.NationalID)
	birthdate := strings.TrimSpace(req.Birthdate)
	if nationalID == "" || birthdate == "" {
		return models.CreatedUser{}, ErrIdentityProofRequired
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.CreatedUser{}, fmt.Errorf("hashing password: %w", err)
	}

	var created models.User
	err = s.tx.InTx(ctx, func(repos *store.Repositories) error {
		created, err = repos.Users.CreateUser(ctx, models.User{
			Username:     username,
			PasswordHash: hash,
			IsAdmin:      true,
			PasswordHint: utils.TrimmedOrNil(req.PasswordHint),
			NationalID:   &nationalID,
			Birthdate:    &birthdate,
		})
		if err != nil {
			return err
		}
		_, err = seedMaterials(ctx, repos.Materials, created.ID)
		return err
	})
	if err != nil {
		return models.CreatedUser{}, fmt.Errorf("creating user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", created.ID).Str("created_by", p.UserID).Msg("user created")
	return models.CreatedUser{ID: created.ID, Username: created.Username}, nil
}

// ChangePassword changes the password of targetUserID. Users may change their
// own password by proving the current one; the master admin may change anyone's.
func (s *userService) ChangePassword(ctx context.Context, p policy.Principal, targetUserID string, req models.ChangePasswordRequest) error {
	self := p.UserID != "" && p.UserID == targetUserID
	if !self && !p.IsMasterAdmin {
		return ErrForbidden
	}

	user, err := s.repos.Users.GetUserByID(ctx, targetUserID)
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}

	if self {
		if req.CurrentPassword == "" {
			return ErrCurrentPasswordRequired
		}
		if !s.hasher.Verify(user.PasswordHash, req.CurrentPassword) {
			return ErrWrongCurrentPassword
		}
	}

	if err = checkPasswordStrength(req.NewPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err = s.repos.Users.UpdatePassword(ctx, store.PasswordUpdate{
		UserID:             user.ID,
		PasswordHash:       hash,
		MustChangePassword: user.MustChangePassword,
		Hint:               req.PasswordHint,
	}); err != nil {
		return fmt.Errorf("storing password: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", user.ID).Bool("self", self).Msg("password changed")
	return nil
}

// DeleteUser removes targetUserID together with everything it owns.
func (s *userService) DeleteUser(ctx context.Context, p policy.Principal, targetUserID string) error {
	if _, err := scopeOf(ctx, s.policy, p, policy.User, policy.Write); err != nil {
		return err
	}
	if targetUserID == p.UserID {
		return ErrCannotDeleteSelf
	}

	err := s.tx.InTx(ctx, func(repos *store.Repositories) error {
		return repos.Users.DeleteUser(ctx, targetUserID)
	})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", targetUserID).Str("deleted_by", p.UserID).Msg("user deleted")
	return nil
}
