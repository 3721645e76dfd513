package service

import (
	"github.com/Lum1n0sity/scholarthynk-api/internal/apperror"
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/logger"
)

type ILogService interface {
	GetLogs(level string, limit, offset int) ([]*dto.LogListResponse, error)
	GetLogById(id string) (*dto.LogDetailResponse, error)
}

// logService reads the zap log file for the admin dashboard.
type logService struct {
	logger logger.ILogger
}

func NewLogService(log logger.ILogger) ILogService {
	return &logService{logger: log}
}

func (s *logService) GetLogs(level string, limit, offset int) ([]*dto.LogListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.logger.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &dto.LogListResponse{
			Id:        e.Id,
			Timestamp: e.Timestamp,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
		})
	}
	return result, nil
}

func (s *logService) GetLogById(id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, apperror.NotFound("log not found")
	}

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        entry.Id,
			Timestamp: entry.Timestamp,
			Level:     entry.Level,
			Module:    entry.Module,
			Message:   entry.Message,
		},
		Details: entry.Details,
	}, nil
}
