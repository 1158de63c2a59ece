package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/repos"
	"github.com/dorotad/contacts-backend/internal/requestdata"
	"github.com/dorotad/contacts-backend/internal/types"
)

const avatarSize = 250

type UserService interface {
	GetCurrent(ctx context.Context) (*types.User, error)
	UpdateAvatar(ctx context.Context, tempPath, originalName string) (string, error)
}

type userService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  repos.UserRepo
	media     MediaProcessor
	avatarDir string
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, media MediaProcessor, avatarDir string) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:        db,
		log:       serviceLog,
		userRepo:  userRepo,
		media:     media,
		avatarDir: avatarDir,
	}
}

func (us *userService) GetCurrent(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, ErrNoIdentity
	}
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return users[0], nil
}

// UpdateAvatar resizes the uploaded temp file in place, then moves it to
// its final name under the avatars directory. The temp file is removed on
// every failure path; on success ownership transfers to the target, so the
// temp path no longer exists.
func (us *userService) UpdateAvatar(ctx context.Context, tempPath, originalName string) (string, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		us.removeTemp(tempPath)
		return "", ErrNoIdentity
	}

	if err := us.media.ResizeInPlace(tempPath, avatarSize, avatarSize); err != nil {
		us.removeTemp(tempPath)
		return "", fmt.Errorf("resize avatar: %w", err)
	}

	targetPath := filepath.Join(us.avatarDir, rd.UserID.String()+"_"+filepath.Base(originalName))
	if err := os.Rename(tempPath, targetPath); err != nil {
		us.removeTemp(tempPath)
		return "", fmt.Errorf("move avatar into place: %w", err)
	}

	if err := us.userRepo.UpdateFields(ctx, nil, rd.UserID, map[string]interface{}{"avatar_url": targetPath}); err != nil {
		return "", fmt.Errorf("persist avatar url: %w", err)
	}
	return targetPath, nil
}

func (us *userService) removeTemp(tempPath string) {
	if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
		us.log.Warn("Failed to remove temporary upload", "path", tempPath, "error", err)
	}
}
