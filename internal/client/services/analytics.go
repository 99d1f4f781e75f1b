package services

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Skills(ctx context.Context) (*models.SkillAnalytics, error)
}

type analyticsService struct {
	api API
}

func NewAnalyticsService(api API) AnalyticsService {
	return &analyticsService{api: api}
}

func (s *analyticsService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	out := models.Dashboard{}
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.Dashboard}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *analyticsService) Skills(ctx context.Context) (*models.SkillAnalytics, error) {
	var out models.SkillAnalytics
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.Skills}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
