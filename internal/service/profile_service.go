package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
)

type profileTeacherRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	UpdateProfile(ctx context.Context, teacher *models.Teacher) error
	UpdateProfilePicture(ctx context.Context, id int64, path string) error
}

type avatarStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// UpdateProfileRequest is a partial profile patch. Nil fields are left
// untouched; email is immutable and has no field here on purpose.
type UpdateProfileRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Bio            *string `json:"bio"`
	Phone          *string `json:"phone"`
	Room           *string `json:"room"`
	Achievements   *string `json:"achievements"`
	Awards         *string `json:"awards"`
	Certifications *string `json:"certifications"`
	School         *string `json:"school"`
	College        *string `json:"college"`
	University     *string `json:"university"`
	Degree         *string `json:"degree"`
	Publications   *string `json:"publications"`
}

// ProfileService serves and mutates the authenticated teacher's profile.
type ProfileService struct {
	repo         profileTeacherRepository
	storage      avatarStorage
	publicPath   string
	maxFileBytes int64
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(repo profileTeacherRepository, storage avatarStorage, publicPath string, maxFileBytes int64, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &ProfileService{repo: repo, storage: storage, publicPath: publicPath, maxFileBytes: maxFileBytes, validator: validate, logger: logger}
}

// Get returns the teacher's profile.
func (s *ProfileService) Get(ctx context.Context, teacherID int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}
	return teacher, nil
}

// Update applies the patch and returns the canonical profile. Only fields
// present in the patch change; the response is always the full server state.
func (s *ProfileService) Update(ctx context.Context, teacherID int64, req UpdateProfileRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	teacher, err := s.repo.FindByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}

	applyString(&teacher.Name, req.Name)
	applyString(&teacher.Bio, req.Bio)
	applyString(&teacher.Phone, req.Phone)
	applyString(&teacher.Room, req.Room)
	applyString(&teacher.Achievements, req.Achievements)
	applyString(&teacher.Awards, req.Awards)
	applyString(&teacher.Certifications, req.Certifications)
	applyString(&teacher.School, req.School)
	applyString(&teacher.College, req.College)
	applyString(&teacher.University, req.University)
	applyString(&teacher.Degree, req.Degree)
	applyString(&teacher.Publications, req.Publications)

	if err := s.repo.UpdateProfile(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return teacher, nil
}

// UploadAvatar stores the image and returns the refreshed profile. The file
// lands under avatars/ keyed by teacher ID so re-uploads replace in place.
func (s *ProfileService) UploadAvatar(ctx context.Context, teacherID int64, filename string, size int64, file io.Reader) (*models.Teacher, error) {
	if s.maxFileBytes > 0 && size > s.maxFileBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "profile picture exceeds the allowed size")
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported image type")
	}

	teacher, err := s.repo.FindByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load profile")
	}

	stored := fmt.Sprintf("avatars/%d%s", teacherID, ext)
	if _, err := s.storage.SaveStream(stored, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store profile picture")
	}

	publicPath := path.Join(s.publicPath, stored)
	if err := s.repo.UpdateProfilePicture(ctx, teacherID, publicPath); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile picture")
	}

	teacher.ProfilePicture = publicPath
	return teacher, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
