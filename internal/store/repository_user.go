package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/jackc/pgerrcode"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] on top of db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.ResetToken, &user.ResetTokenExpires, &user.CreatedAt)
	return user, err
}

// CreateUser inserts a user with email and password hash and returns the
// stored row. A duplicate email yields [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, "CreateUser", func() error {
		var scanErr error
		created, scanErr = scanUser(r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash))
		return scanErr
	})
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "FindUserByID", findUserByID, userID)
}

// FindUserByValidResetToken is not on the reset path; ConsumeResetToken checks
// the token inside its update.
func (r *userRepository) FindUserByValidResetToken(ctx context.Context, token string, now time.Time) (models.User, error) {
	return r.findOne(ctx, "FindUserByValidResetToken", findUserByValidResetToken, token, now)
}

// findOne runs a single-row user query; no rows maps to [ErrNoUserWasFound].
func (r *userRepository) findOne(ctx context.Context, op, query string, args ...any) (models.User, error) {
	var user models.User
	err := r.db.withRetry(ctx, op, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+op).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// SetPasswordHash and ClearResetToken update one field each. The reset flow
// uses ConsumeResetToken instead.
func (r *userRepository) SetPasswordHash(ctx context.Context, userID int64, hash string) error {
	return r.execOne(ctx, "SetPasswordHash", setPasswordHash, hash, userID)
}

func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.execOne(ctx, "SetResetToken", setResetToken, token, expires, userID)
}

func (r *userRepository) ClearResetToken(ctx context.Context, userID int64) error {
	return r.execOne(ctx, "ClearResetToken", clearResetToken, userID)
}

// execOne runs an UPDATE that must touch exactly one user row.
func (r *userRepository) execOne(ctx context.Context, op, query string, args ...any) error {
	var affected int64
	err := r.db.withRetry(ctx, op, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+op).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ConsumeResetToken stores hash and clears the reset pair if token is still
// valid at now. A used, unknown or expired token yields [ErrNoUserWasFound].
func (r *userRepository) ConsumeResetToken(ctx context.Context, token, hash string, now time.Time) (models.User, error) {
	var user models.User
	err := r.db.withRetry(ctx, "ConsumeResetToken", func() error {
		return r.db.QueryRowContext(ctx, consumeResetToken, hash, token, now).Scan(&user.UserID, &user.Email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ConsumeResetToken").Msg("error consuming reset token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.PasswordHash = hash
	return user, nil
}

func (r *userRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildClearExpiredResetTokensQuery(now)
	if err != nil {
		return 0, err
	}

	var cleared int64
	err = r.db.withRetry(ctx, "ClearExpiredResetTokens", func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		cleared, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ClearExpiredResetTokens").Msg("error clearing expired tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cleared, nil
}
