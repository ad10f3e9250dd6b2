package service

import (
	"context"

	"github.com/google/uuid"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// UpdateProfileInput is the DTO for editing the business profile.
type UpdateProfileInput struct {
	BusinessTitle   *string `json:"business_title"`
	BusinessAddress *string `json:"business_address"`
	BusinessPhone   *string `json:"business_phone"`
	BusinessGST     *string `json:"business_gst"`
}

// ProfileService defines the business profile contract.
type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.UserProfile, error)
}

type profileService struct {
	repo port.ProfileRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(repo port.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.UserProfile, error) {
	profile, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.BusinessTitle != nil {
		profile.BusinessTitle = *input.BusinessTitle
	}
	if input.BusinessAddress != nil {
		profile.BusinessAddress = *input.BusinessAddress
	}
	if input.BusinessPhone != nil {
		profile.BusinessPhone = *input.BusinessPhone
	}
	if input.BusinessGST != nil {
		profile.BusinessGST = *input.BusinessGST
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
