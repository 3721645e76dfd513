package service

import (
	"context"
	"strings"

	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/logger"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/contract"
	"github.com/Lum1n0sity/scholarthynk-api/internal/repository/specification"
	"github.com/Lum1n0sity/scholarthynk-api/pkg/events"
	pktNats "github.com/Lum1n0sity/scholarthynk-api/pkg/nats"

	"github.com/google/uuid"
)

// AuditService consumes the NATS audit stream and persists every event
// to the system_logs table, giving the admin dashboard a durable trail
// of tree mutations and account changes.
type AuditService struct {
	repo       contract.AuditLogRepository
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(repo contract.AuditLogRepository, sub *pktNats.Subscriber, log logger.ILogger) *AuditService {
	return &AuditService{
		repo:       repo,
		subscriber: sub,
		logger:     log,
	}
}

// Start begins listening to the audit stream with a durable consumer.
func (s *AuditService) Start() {
	if s.subscriber == nil {
		return
	}
	if err := s.subscriber.Subscribe("audit.>", "audit-log-worker", s.handleEvent); err != nil {
		if s.logger != nil {
			s.logger.Error("AuditService", "Failed to start audit subscriber", map[string]interface{}{"error": err.Error()})
		}
		return
	}
	if s.logger != nil {
		s.logger.Info("AuditService", "Audit service started, listening to audit.>", nil)
	}
}

func (s *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject includes the stream prefix ("audit.FV_ITEM_DELETED").
	action := strings.TrimPrefix(event.EventType(), "audit.")

	entry := &entity.AuditLog{
		Id:        uuid.New(),
		Level:     "INFO",
		Module:    "audit",
		Message:   action,
		Details:   event.Payload(),
		CreatedAt: event.Timestamp(),
	}
	return s.repo.Create(ctx, entry)
}

// GetRecent returns the newest audit entries for the admin dashboard.
func (s *AuditService) GetRecent(ctx context.Context, limit int) ([]*dto.AuditLogResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries, err := s.repo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &dto.AuditLogResponse{
			Id:        e.Id,
			Action:    e.Message,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return result, nil
}
