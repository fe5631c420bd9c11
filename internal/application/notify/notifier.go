package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// Service inserta alertas fire-and-forget. Un fallo aquí se loguea y se
// descarta: jamás bloquea, falla ni reintenta el flujo principal que lo llamó.
type Service struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewService construye el servicio de notificaciones.
func NewService(repo repository.NotificationRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.Named("notifications")}
}

// Notify crea la alerta para el usuario. Con userID vacío no hace nada.
func (s *Service) Notify(userID, title, message, notificationType string) {
	if userID == "" {
		return
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(n); err != nil {
		s.log.Warn().Err(err).
			Str("user_id", userID).
			Str("type", notificationType).
			Msg("notificación descartada")
	}
}

// ListByUser lista las alertas del usuario, más recientes primero.
func (s *Service) ListByUser(userID string, limit, offset int) ([]*entity.Notification, error) {
	return s.repo.ListByUser(userID, limit, offset)
}

// MarkRead marca como leída una notificación propia del usuario.
func (s *Service) MarkRead(id, userID string) error {
	return s.repo.MarkRead(id, userID)
}
