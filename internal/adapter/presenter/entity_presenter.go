package presenter

import (
	"encoding/json"

	dto "github.com/workhub-team/workhub/internal/adapter/dto/meeting"
	"github.com/workhub-team/workhub/internal/domain/entities"
)

// ToDecisionResponse converts a Decision entity to DecisionResponse DTO
func ToDecisionResponse(d *entities.Decision) *dto.DecisionResponse {
	if d == nil {
		return nil
	}

	tags := []string{}
	if d.Tags != nil {
		json.Unmarshal(d.Tags, &tags)
	}

	return &dto.DecisionResponse{
		ID:           d.ID,
		WorkspaceID:  d.WorkspaceID,
		Title:        d.Title,
		Statement:    d.Statement,
		Rationale:    d.Rationale,
		Description:  d.Description,
		Owner:        d.Owner,
		OwnerUID:     d.OwnerUID,
		Status:       d.Status,
		Visibility:   d.Visibility,
		Tags:         tags,
		MeetingID:    d.MeetingID,
		Supersedes:   d.Supersedes,
		SupersededBy: d.SupersededBy,
		Archived:     d.Archived,
		ArchivedAt:   d.ArchivedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDecisionListResponse converts a slice of Decision entities to DTOs
func ToDecisionListResponse(decisions []*entities.Decision) []*dto.DecisionResponse {
	responses := make([]*dto.DecisionResponse, len(decisions))
	for i, d := range decisions {
		responses[i] = ToDecisionResponse(d)
	}
	return responses
}

// ToActionResponse converts an Action entity to ActionResponse DTO
func ToActionResponse(a *entities.Action) *dto.ActionResponse {
	if a == nil {
		return nil
	}

	return &dto.ActionResponse{
		ID:            a.ID,
		WorkspaceID:   a.WorkspaceID,
		Title:         a.Title,
		Description:   a.Description,
		Owner:         a.Owner,
		OwnerUID:      a.OwnerUID,
		Status:        a.Status,
		Priority:      a.Priority,
		Project:       a.Project,
		DueAt:         a.DueAt,
		DueLabel:      a.DueLabel,
		DueSoon:       a.DueSoon,
		BlockedReason: a.BlockedReason,
		Notes:         a.Notes,
		MeetingID:     a.MeetingID,
		DecisionID:    a.DecisionID,
		CompletedAt:   a.CompletedAt,
		Archived:      a.Archived,
		ArchivedAt:    a.ArchivedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToActionListResponse converts a slice of Action entities to DTOs
func ToActionListResponse(actions []*entities.Action) []*dto.ActionResponse {
	responses := make([]*dto.ActionResponse, len(actions))
	for i, a := range actions {
		responses[i] = ToActionResponse(a)
	}
	return responses
}

// ToHistoryEventResponse converts an EntityHistoryEvent to DTO
func ToHistoryEventResponse(e *entities.EntityHistoryEvent) *dto.HistoryEventResponse {
	if e == nil {
		return nil
	}

	var metadata map[string]interface{}
	if e.Metadata != nil {
		json.Unmarshal(e.Metadata, &metadata)
	}

	return &dto.HistoryEventResponse{
		ID:        e.ID,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		EventType: e.EventType,
		Source:    e.Source,
		ActorUID:  e.ActorUID,
		ActorName: e.ActorName,
		Message:   e.Message,
		Metadata:  metadata,
		CreatedAt: e.CreatedAt,
	}
}

// ToHistoryListResponse converts a slice of history events to DTOs
func ToHistoryListResponse(events []*entities.EntityHistoryEvent) []*dto.HistoryEventResponse {
	responses := make([]*dto.HistoryEventResponse, len(events))
	for i, e := range events {
		responses[i] = ToHistoryEventResponse(e)
	}
	return responses
}
