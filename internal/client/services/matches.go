package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/client/validation"
)

type MatchService interface {
	Analyze(ctx context.Context, req models.MatchAnalysis) (*models.Match, error)
	Recommendations(ctx context.Context, matchID int64) (*models.Recommendation, error)
}

type matchService struct {
	api API
}

func NewMatchService(api API) MatchService {
	return &matchService{api: api}
}

func (s *matchService) Analyze(ctx context.Context, req models.MatchAnalysis) (*models.Match, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	var out models.Match
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.AnalyzeMatch, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *matchService) Recommendations(ctx context.Context, matchID int64) (*models.Recommendation, error) {
	var out models.Recommendation
	req := &client.Request{
		Endpoint: endpoints.MatchRecommendations,
		Query:    url.Values{"match_id": {strconv.FormatInt(matchID, 10)}},
	}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
