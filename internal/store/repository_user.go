package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/models"
)

type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the given user row and returns it with the id assigned
// by the database. The password field must already contain a hash.
//
// A unique-constraint violation on username is reported as
// [ErrUsernameTaken]; any other failure is wrapped and returned as-is.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Email,
		user.BirthDate,
		user.ProfilePicture,
	)

	var created models.User
	if err := row.Scan(
		&created.ID,
		&created.Username,
		&created.PasswordHash,
		&created.FirstName,
		&created.LastName,
		&created.Email,
		&created.BirthDate,
		&created.ProfilePicture,
	); err != nil {
		if isUniqueViolation(err) {
			r.logger.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameTaken
		}

		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername returns the full user row, password hash included.
// Used only by the auth service; every other caller goes through GetUserByID.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(
		&foundUser.ID,
		&foundUser.Username,
		&foundUser.PasswordHash,
		&foundUser.FirstName,
		&foundUser.LastName,
		&foundUser.Email,
		&foundUser.BirthDate,
		&foundUser.ProfilePicture,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetUserByID returns the sanitized projection of the user with the given id.
// The password column is never selected on this path.
func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.UserView, error) {
	var view models.UserView
	row := r.db.QueryRowContext(ctx, getUserByID, id)

	if err := row.Scan(
		&view.ID,
		&view.Username,
		&view.FirstName,
		&view.LastName,
		&view.Email,
		&view.BirthDate,
		&view.ProfilePicture,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserView{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.GetUserByID").Msg("error: scanning error")
		return models.UserView{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return view, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported backend.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return postgresError(err) == pgerrcode.UniqueViolation
}
