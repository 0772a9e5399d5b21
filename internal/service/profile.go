package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ProfileService определяет контракт для регистрации и загрузки профилей
type ProfileService interface {
	Register(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// Register создает новый профиль
func (s *profileService) Register(ctx context.Context, profile *models.Profile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "Register",
		"email":   profile.Email,
	})
	log.Info("Attempting to register a new profile")

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to create profile in repository")
		return fmt.Errorf("service: could not create profile: %w", err)
	}

	log.WithField("profile_id", profile.ID).Info("Profile registered successfully")
	return nil
}

// GetProfile загружает профиль по id
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "profile",
		"method":     "GetProfile",
		"profile_id": id,
	})

	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get profile from repository")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	return profile, nil
}
