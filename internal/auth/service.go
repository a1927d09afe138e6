package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gonotes/internal/hash"
	"gonotes/internal/models"
	"gonotes/internal/otp"
	"gonotes/internal/util"
)

// Service orchestrates the account flows: signup with emailed verification
// codes, login, profile email changes and password recovery.
type Service struct {
	users  models.UserStore
	tokens models.TokenManager
	mailer models.Mailer
	logger *zap.Logger
}

// NewService wires the flow controller with its collaborators.
func NewService(users models.UserStore, tokens models.TokenManager, mailer models.Mailer, logger *zap.Logger) *Service {
	return &Service{users: users, tokens: tokens, mailer: mailer, logger: logger}
}

// Signup registers a new account and returns it with a bearer token. The
// verification mail goes out before anything is persisted, so a user is never
// created without a deliverable code. The token is usable immediately;
// verification only flips the flag later.
func (s *Service) Signup(ctx context.Context, fullname, email, password string) (*models.User, string, error) {
	if fullname == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: fullname, email and password are required", models.ErrValidation)
	}
	if !util.ValidateEmail(email) {
		return nil, "", fmt.Errorf("%w: invalid email format", models.ErrValidation)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", models.ErrAlreadyExists
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, "", err
	}

	code, expires, err := otp.Generate()
	if err != nil {
		return nil, "", err
	}
	if err := s.sendOTP(ctx, email, fullname, code); err != nil {
		return nil, "", err
	}

	passwordHash, err := hash.Secret(password)
	if err != nil {
		return nil, "", err
	}
	otpHash, err := hash.Secret(code)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, models.User{
		Fullname:   fullname,
		Email:      email,
		Password:   passwordHash,
		EmailOTP:   otpHash,
		OTPExpires: expires,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("account created", zap.String("email", email))
	return user, token, nil
}

// Login authenticates by email and password and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", models.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if !hash.Matches(user.Password, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// VerifySignupOTP marks the account verified when the submitted code matches
// the stored pair and has not expired. The pair is consumed, so replaying the
// same code fails.
func (s *Service) VerifySignupOTP(ctx context.Context, email, code string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := checkOTP(user, code); err != nil {
		return err
	}
	return s.users.MarkEmailVerified(ctx, user.ID)
}

// CurrentUser re-fetches the user behind a verified claim. Token payloads are
// never trusted for current account state.
func (s *Service) CurrentUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a fullname change directly. A changed email only
// records a pending address: the code is mailed to the new address first and
// nothing is persisted when dispatch fails. Returns whether a code was sent.
func (s *Service) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullname, email *string) (bool, error) {
	if fullname != nil && *fullname == "" {
		return false, fmt.Errorf("%w: fullname cannot be empty", models.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	changeEmail := email != nil && *email != user.Email
	if fullname == nil && !changeEmail {
		return false, models.ErrNoChanges
	}

	otpSent := false
	if changeEmail {
		if !util.ValidateEmail(*email) {
			return false, fmt.Errorf("%w: invalid email format", models.ErrValidation)
		}
		if _, err := s.users.GetByEmail(ctx, *email); err == nil {
			return false, models.ErrAlreadyExists
		} else if !errors.Is(err, models.ErrNotFound) {
			return false, err
		}

		code, expires, err := otp.Generate()
		if err != nil {
			return false, err
		}
		if err := s.sendOTP(ctx, *email, user.Fullname, code); err != nil {
			return false, err
		}
		otpHash, err := hash.Secret(code)
		if err != nil {
			return false, err
		}
		if err := s.users.SetPendingEmail(ctx, id, *email, otpHash, expires); err != nil {
			return false, err
		}
		otpSent = true
	}

	if fullname != nil {
		if err := s.users.SetFullname(ctx, id, *fullname); err != nil {
			return otpSent, err
		}
	}
	return otpSent, nil
}

// VerifyEmailChangeOTP promotes the pending address once the code checks out.
func (s *Service) VerifyEmailChangeOTP(ctx context.Context, id primitive.ObjectID, code string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.PendingEmail == "" {
		return models.ErrNoPendingChange
	}
	if err := checkOTP(user, code); err != nil {
		return err
	}

	if err := s.users.CompleteEmailChange(ctx, user.ID, user.PendingEmail); err != nil {
		return err
	}
	s.logger.Info("email changed", zap.String("email", user.PendingEmail))
	return nil
}

// ChangePassword replaces the password for an authenticated caller after
// checking the current one.
func (s *Service) ChangePassword(ctx context.Context, id primitive.ObjectID, current, newPassword string) error {
	if current == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new password are required", models.ErrValidation)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !hash.Matches(user.Password, current) {
		return models.ErrInvalidCredentials
	}

	h, err := hash.Secret(newPassword)
	if err != nil {
		return err
	}
	return s.users.SetPassword(ctx, id, h)
}

// ForgotPassword mails a reset code to a known address. The pair is only
// stored once the mail is out, so no account ends up waiting on a code that
// never left.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, expires, err := otp.Generate()
	if err != nil {
		return err
	}
	if err := s.sendOTP(ctx, user.Email, user.Fullname, code); err != nil {
		return err
	}
	otpHash, err := hash.Secret(code)
	if err != nil {
		return err
	}
	return s.users.SetOTP(ctx, user.ID, otpHash, expires)
}

// VerifyResetOTP checks a reset code without consuming it; the same code is
// presented again at the final reset call.
func (s *Service) VerifyResetOTP(ctx context.Context, email, code string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return checkOTP(user, code)
}

// ResetPassword re-validates the code before accepting the new password, then
// consumes the pair.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", models.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := checkOTP(user, code); err != nil {
		return err
	}

	h, err := hash.Secret(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.SetPassword(ctx, user.ID, h); err != nil {
		return err
	}
	s.logger.Info("password reset", zap.String("email", email))
	return nil
}

// checkOTP validates a submitted code against the stored hashed pair.
func checkOTP(user *models.User, code string) error {
	if user.EmailOTP == "" || code == "" {
		return models.ErrInvalidOTP
	}
	if time.Now().After(user.OTPExpires) {
		return models.ErrInvalidOTP
	}
	if !hash.Matches(user.EmailOTP, code) {
		return models.ErrInvalidOTP
	}
	return nil
}

func (s *Service) sendOTP(ctx context.Context, to, name, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Dear %s,\n\nYour verification code is: %s\nIt is valid for 10 minutes.\n\nRegards,\nThe Gonotes Team", name, code)
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		s.logger.Error("otp mail dispatch failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%w: %v", models.ErrMailUnreachable, err)
	}
	return nil
}
