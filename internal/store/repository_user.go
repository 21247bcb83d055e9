package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account with streak 0 and returns it with the
// store-assigned id.
//
// Error handling:
//   - unique violation on username → [ErrLoginAlreadyExists], no row written.
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	var userID int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID); err != nil {
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("login already exists")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", userID).Msg("user created")

	return models.User{
		UserID:   userID,
		Login:    user.Login,
		Password: user.Password,
		Streak:   0,
	}, nil
}

// AuthenticateUser returns the user whose username and password both match
// exactly. A mismatch on either is [ErrNoUserWasFound].
func (r *userRepository) AuthenticateUser(ctx context.Context, login, password string) (models.User, error) {
	query, args, err := r.db.buildAuthenticateUserQuery(login, password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.AuthenticateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.AuthenticateUser", query, args)
}

// GetUserByID returns the account with the given id.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := r.db.buildGetUserByIDQuery(userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUserByID").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.GetUserByID", query, args)
}

// FindUserByLogin returns the account with the given username regardless of
// its password. Used when passwords are stored hashed.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	query, args, err := r.db.buildFindUserByLoginQuery(login)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUser(ctx, "*userRepository.FindUserByLogin", query, args)
}

func (r *userRepository) queryUser(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("no user was found")
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
