package services

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/validation"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
}

type profileService struct {
	api API
}

func NewProfileService(api API) ProfileService {
	return &profileService{api: api}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.GetProfile}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *profileService) Update(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	if err := validation.Struct(upd); err != nil {
		return nil, err
	}
	var p models.Profile
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.UpdateProfile, Body: upd}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
