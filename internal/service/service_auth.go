package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/store"
	"github.com/reut-b/profile-site/internal/utils"
	"github.com/reut-b/profile-site/models"
)

// authService is the concrete implementation of AuthService.
// It composes the user repository and the picture storage; passwords are
// hashed with bcrypt before they reach the repository.
type authService struct {
	userRepository store.UserRepository
	pictures       store.PicturesStorage
	logger         *logger.Logger

	// now is the clock used for stored picture names. Overridable in tests.
	now func() time.Time
}

// NewAuthService constructs a new AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, pictures store.PicturesStorage, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		pictures:       pictures,
		logger:         logger,
		now:            time.Now,
	}
}

// Signup registers a new account. See [AuthService] for the contract.
//
// The intra-request ordering is deliberate and must not be rearranged:
// the existence check runs before the file move so an obviously taken
// username never leaves a file behind, and the file move runs before the
// insert so a move failure never leaves an orphaned row. The reverse case,
// an orphaned file after a failed insert, is accepted.
func (a *authService) Signup(ctx context.Context, input SignupInput) (models.UserView, error) {
	log := logger.FromContext(ctx)

	if input.Username == "" || input.Password == "" || input.FirstName == "" ||
		input.LastName == "" || input.Email == "" || input.BirthDate == "" {
		log.Error().Str("username", input.Username).Msg("signup with missing required fields")
		return models.UserView{}, ErrInvalidDataProvided
	}

	if input.Picture.Data == nil {
		log.Error().Str("username", input.Username).Msg("signup without profile picture")
		return models.UserView{}, ErrMissingUpload
	}

	// existence pre-check; the UNIQUE constraint remains the authority
	// for concurrent signups racing on the same name
	_, err := a.userRepository.FindUserByUsername(ctx, input.Username)
	if err == nil {
		return models.UserView{}, store.ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", input.Username).Msg("username existence check failed")
		return models.UserView{}, fmt.Errorf("username existence check failed: %w", err)
	}

	pictureName := a.storedPictureName(input.Username, input.Picture.FileName)
	if err := a.pictures.Save(ctx, pictureName, input.Picture.Data); err != nil {
		log.Err(err).Str("username", input.Username).Str("picture", pictureName).Msg("saving profile picture failed")
		return models.UserView{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Err(err).Str("username", input.Username).Msg("password hashing failed")
		return models.UserView{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:       input.Username,
		PasswordHash:   passwordHash,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		BirthDate:      input.BirthDate,
		ProfilePicture: pictureName,
	})
	if err != nil {
		// a lost race on the unique constraint surfaces exactly like the
		// pre-check; the orphaned picture file is not cleaned up
		log.Err(err).Str("username", input.Username).Msg("user creation ended with error")
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.UserView{}, store.ErrUsernameTaken
		}
		return models.UserView{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("user registered")
	return created.View(), nil
}

// Authenticate verifies credentials and returns the sanitized user view.
// Unknown username and wrong password are indistinguishable to the caller.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.UserView, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.UserView{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.UserView{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.UserView{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password check failed")
		return models.UserView{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Info().Int64("id", foundUser.ID).Str("username", username).Msg("wrong password")
		return models.UserView{}, ErrInvalidCredentials
	}

	return foundUser.View(), nil
}

// GetUserByID returns the sanitized projection of the given user.
func (a *authService) GetUserByID(ctx context.Context, id int64) (models.UserView, error) {
	view, err := a.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.UserView{}, err
	}

	return view, nil
}

// storedPictureName derives the on-disk name for an uploaded picture:
// <unix-millis>_<username><original extension>. Two signups for different
// usernames can never collide; the same username in the same millisecond
// is an accepted edge case (and loses on the unique constraint anyway).
func (a *authService) storedPictureName(username, originalName string) string {
	return fmt.Sprintf("%d_%s%s", a.now().UnixMilli(), username, filepath.Ext(originalName))
}
