package service

import (
	"context"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, employeeID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	notes, count, err := s.noteRepo.List(ctx, employeeID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, wrapSystem(err)
	}
	return notes, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, employeeID, notificationID int32) error {
	if err := s.noteRepo.MarkAsRead(ctx, notificationID, employeeID); err != nil {
		return wrapSystem(err)
	}
	return nil
}
