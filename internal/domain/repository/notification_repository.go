package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// NotificationRepository puerto para las alertas de usuarios.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
}
