package services

import (
	"context"

	"github.com/dmitrijs2005/jobmatch/internal/client/client"
	"github.com/dmitrijs2005/jobmatch/internal/client/endpoints"
	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	api API
}

func NewNotificationService(api API) NotificationService {
	return &notificationService{api: api}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.ListNotifications}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	var out models.UnreadCount
	if err := s.api.Do(ctx, &client.Request{Endpoint: endpoints.UnreadCount}, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.api.Do(ctx, &client.Request{
		Endpoint:   endpoints.MarkNotificationRead,
		PathParams: map[string]string{"id": id},
	}, nil)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.api.Do(ctx, &client.Request{Endpoint: endpoints.MarkAllRead}, nil)
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, &client.Request{
		Endpoint:   endpoints.DeleteNotification,
		PathParams: map[string]string{"id": id},
	}, nil)
}
