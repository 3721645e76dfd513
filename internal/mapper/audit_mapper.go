package mapper

import (
	"encoding/json"

	"github.com/Lum1n0sity/scholarthynk-api/internal/entity"
	"github.com/Lum1n0sity/scholarthynk-api/internal/model"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(l *model.SystemLog) *entity.AuditLog {
	if l == nil {
		return nil
	}

	module := ""
	if l.Module != nil {
		module = *l.Module
	}

	details := make(map[string]interface{})
	if l.Details != nil {
		_ = json.Unmarshal([]byte(*l.Details), &details)
	}

	return &entity.AuditLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    module,
		Message:   l.Message,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(l *entity.AuditLog) *model.SystemLog {
	if l == nil {
		return nil
	}

	var module *string
	if l.Module != "" {
		module = &l.Module
	}

	var details *string
	if len(l.Details) > 0 {
		if raw, err := json.Marshal(l.Details); err == nil {
			s := string(raw)
			details = &s
		}
	}

	return &model.SystemLog{
		Id:        l.Id,
		Level:     l.Level,
		Module:    module,
		Message:   l.Message,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.SystemLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
