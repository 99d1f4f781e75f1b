package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// MaxResumeSize matches the backend's request size limit.
const MaxResumeSize = 16 << 20

var (
	ErrResumeTooLarge      = errors.New("resume exceeds 16MB")
	ErrResumeTypeForbidden = errors.New("resume must be pdf, docx, txt, odt or rtf")
)

var resumeTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".odt":  "application/vnd.oasis.opendocument.text",
	".rtf":  "application/rtf",
}

type ResumeService interface {
	List(ctx context.Context) ([]models.Resume, error)
	Get(ctx context.Context, id int64) (*models.Resume, error)
	Upload(ctx context.Context, filename string, content []byte) (*models.ResumeUpload, error)
}

type resumeService struct {
	api API
}

func NewResumeService(api API) ResumeService {
	return &resumeService{api: api}
}

func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.GetResume}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *resumeService) Get(ctx context.Context, id int64) (*models.Resume, error) {
	var out models.Resume
	req := &client.Request{
		Endpoint: endpoints.GetResume,
		Query:    url.Values{"id": {strconv.FormatInt(id, 10)}},
	}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *resumeService) Upload(ctx context.Context, filename string, content []byte) (*models.ResumeUpload, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := resumeTypes[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, ErrResumeTypeForbidden)
	}
	if len(content) > MaxResumeSize {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, ErrResumeTooLarge)
	}

	var out models.ResumeUpload
	req := &client.Request{
		Endpoint: endpoints.UploadResume,
		File: &client.File{
			Field:       "resume",
			Name:        filepath.Base(filename),
			ContentType: ct,
			Content:     content,
		},
	}
	if err := s.api.Do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
