package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
//
// With a nil hasher passwords are stored exactly as typed and sign-in is a
// single exact-match lookup in the store. With a hasher the stored value is a
// hash and sign-in compares against it after fetching the user by username.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator rejects empty usernames and passwords.
	validator validators.Validator

	// hasher is nil when passwords are kept in plain text.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Pass a nil hasher to keep
// passwords in plain text.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         hasher,
		logger:         logger,
	}
}

// CreateAccount creates a new account and returns its id.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty.
//   - an error matching store.ErrLoginAlreadyExists if the username is taken.
//   - a wrapped storage error otherwise.
func (a *authService) CreateAccount(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)

	user := models.User{Login: username, Password: password}
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Str("func", "*authService.CreateAccount").Msg("invalid user data provided")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if a.hasher != nil {
		hashed, err := a.hasher.Hash(password)
		if err != nil {
			log.Warn().Err(err).Str("func", "*authService.CreateAccount").Msg("password hashing failed")
			return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		user.Password = hashed
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateAccount").Str("login", username).Msg("user creation ended with error")
		return 0, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.CreateAccount").Int64("user_id", created.UserID).Msg("account created")

	return created.UserID, nil
}

// SignIn authenticates a user and returns its id.
//
// Returns ErrWrongCredentials for an unknown username or a wrong password
// and a wrapped storage error for anything else.
func (a *authService) SignIn(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)

	var (
		user models.User
		err  error
	)
	if a.hasher == nil {
		user, err = a.userRepository.AuthenticateUser(ctx, username, password)
	} else {
		user, err = a.signInHashed(ctx, username, password)
	}

	if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, ErrWrongCredentials) {
		log.Info().Str("func", "*authService.SignIn").Str("login", username).Msg("wrong username or password")
		return 0, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignIn").Msg("user authentication failed")
		return 0, fmt.Errorf("user authentication failed: %w", err)
	}

	return user.UserID, nil
}

func (a *authService) signInHashed(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.userRepository.FindUserByLogin(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	ok, err := a.hasher.Compare(user.Password, password)
	if err != nil {
		// accounts created before hashing was enabled hold a plain password
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*authService.signInHashed").
			Int64("user_id", user.UserID).
			Msg("stored password is not a hash")
		return models.User{}, ErrWrongCredentials
	}
	if !ok {
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// GetUser returns the account details, or an error matching
// store.ErrNoUserWasFound.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*authService.GetUser").Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
