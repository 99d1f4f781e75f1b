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

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type JobService interface {
	List(ctx context.Context, page, perPage int) (*models.JobList, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Search(ctx context.Context, q models.JobSearch) (*models.JobList, error)
	// Matches lists jobs matched to the current user's profile. An empty
	// first page means matches are still being generated.
	Matches(ctx context.Context, page, perPage int) (*models.MatchList, error)
}

type jobService struct {
	api API
}

func NewJobService(api API) JobService {
	return &jobService{api: api}
}

// pagination clamps like the backend does: page from 1, per_page 1..100.
func pagination(page, perPage int) url.Values {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
}

func (s *jobService) List(ctx context.Context, page, perPage int) (*models.JobList, error) {
	var out models.JobList
	req := &client.Request{Endpoint: endpoints.ListJobs, Query: pagination(page, perPage)}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	var out models.Job
	req := &client.Request{
		Endpoint:   endpoints.GetJob,
		PathParams: map[string]string{"id": strconv.FormatInt(id, 10)},
	}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *jobService) Search(ctx context.Context, q models.JobSearch) (*models.JobList, error) {
	if err := validation.Struct(q); err != nil {
		return nil, err
	}
	var out models.JobList
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.SearchJobs, Body: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *jobService) Matches(ctx context.Context, page, perPage int) (*models.MatchList, error) {
	var out models.MatchList
	req := &client.Request{Endpoint: endpoints.JobMatches, Query: pagination(page, perPage)}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
