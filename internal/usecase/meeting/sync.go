package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

// syncCanonical reconciles the meeting's embedded decision and action lists
// against the durable canonical entities: create new ids, update existing
// ones when the normalized content differs (or when editing revives an
// archived entity), and archive everything the meeting no longer references.
// Re-running against an unchanged meeting performs zero writes.
//
// Failures partway leave earlier entity writes committed; every write is
// independently idempotent, so there is no compensating rollback (the caller
// surfaces one generic sync failure).
func (s *Service) syncCanonical(ctx context.Context, workspaceID, meetingID string, snap *entities.MeetingSnapshot, actor entities.Actor, updateEvent entities.HistoryEventType, now time.Time) error {
	if err := s.syncDecisions(ctx, workspaceID, meetingID, snap.Decisions, actor, updateEvent, now); err != nil {
		return fmt.Errorf("failed to sync decisions: %w", err)
	}
	if err := s.syncActions(ctx, workspaceID, meetingID, snap.Actions, actor, updateEvent, now); err != nil {
		return fmt.Errorf("failed to sync actions: %w", err)
	}
	return nil
}

func (s *Service) syncDecisions(ctx context.Context, workspaceID, meetingID string, copies []entities.DecisionCopy, actor entities.Actor, updateEvent entities.HistoryEventType, now time.Time) error {
	owned, err := s.decisionRepo.FindByMeetingID(ctx, workspaceID, meetingID)
	if err != nil {
		return fmt.Errorf("failed to load decisions for meeting: %w", err)
	}
	ownedByID := make(map[string]*entities.Decision, len(owned))
	for _, d := range owned {
		ownedByID[d.ID] = d
	}

	seen := make(map[string]bool, len(copies))
	for _, c := range copies {
		seen[c.ID] = true

		existing := ownedByID[c.ID]
		if existing == nil {
			existing, err = s.findDecision(ctx, workspaceID, c.ID)
			if err != nil {
				return err
			}
		}

		if existing == nil {
			if err := s.createDecision(ctx, workspaceID, meetingID, c, actor, now); err != nil {
				return err
			}
			continue
		}

		prevText := decisionMentionText(existing)
		wasArchived := existing.Archived
		changed := applyDecisionCopy(existing, c)
		if !changed && !wasArchived {
			continue
		}

		if wasArchived {
			existing.Unarchive()
		}
		existing.UpdatedAt = now
		existing.UpdatedBy = actor.UID
		if err := s.decisionRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update decision %s: %w", existing.ID, err)
		}
		s.appendHistory(ctx, workspaceID, entities.HistoryEntityDecision, existing.ID, updateEvent, actor, fmt.Sprintf("Decision updated from meeting %s", meetingID), meetingID, now)
		if changed {
			s.emitMentions(ctx, workspaceID, "decision", existing.ID, existing.Title, prevText, decisionMentionText(existing), actor, now)
		}
	}

	return s.archiveOrphanDecisions(ctx, workspaceID, meetingID, owned, seen, actor, now)
}

func (s *Service) createDecision(ctx context.Context, workspaceID, meetingID string, c entities.DecisionCopy, actor entities.Actor, now time.Time) error {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	rawTags, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode decision tags: %w", err)
	}

	d := &entities.Decision{
		ID:          c.ID,
		WorkspaceID: workspaceID,
		Title:       c.Title,
		Statement:   c.Statement,
		Rationale:   c.Rationale,
		Owner:       c.Owner,
		OwnerUID:    c.OwnerUID,
		Status:      c.Status,
		Visibility:  entities.VisibilityWorkspace,
		Tags:        rawTags,
		MeetingID:   meetingID,
		Archived:    false,
		CreatedAt:   now,
		CreatedBy:   actor.UID,
		UpdatedAt:   now,
		UpdatedBy:   actor.UID,
	}
	if err := s.decisionRepo.Create(ctx, d); err != nil {
		return fmt.Errorf("failed to create decision %s: %w", d.ID, err)
	}
	s.appendHistory(ctx, workspaceID, entities.HistoryEntityDecision, d.ID, entities.HistoryEventCreated, actor, fmt.Sprintf("Decision captured in meeting %s", meetingID), meetingID, now)
	s.emitMentions(ctx, workspaceID, "decision", d.ID, d.Title, "", decisionMentionText(d), actor, now)
	return nil
}

func (s *Service) archiveOrphanDecisions(ctx context.Context, workspaceID, meetingID string, owned []*entities.Decision, seen map[string]bool, actor entities.Actor, now time.Time) error {
	for _, d := range owned {
		if seen[d.ID] || d.Archived {
			continue
		}
		d.Archive(actor.UID, now)
		d.UpdatedAt = now
		d.UpdatedBy = actor.UID
		if err := s.decisionRepo.Update(ctx, d); err != nil {
			return fmt.Errorf("failed to archive decision %s: %w", d.ID, err)
		}
		s.appendHistory(ctx, workspaceID, entities.HistoryEntityDecision, d.ID, entities.HistoryEventArchived, actor, fmt.Sprintf("Decision removed from meeting %s", meetingID), meetingID, now)
	}
	return nil
}

func (s *Service) syncActions(ctx context.Context, workspaceID, meetingID string, copies []entities.ActionCopy, actor entities.Actor, updateEvent entities.HistoryEventType, now time.Time) error {
	owned, err := s.actionRepo.FindByMeetingID(ctx, workspaceID, meetingID)
	if err != nil {
		return fmt.Errorf("failed to load actions for meeting: %w", err)
	}
	ownedByID := make(map[string]*entities.Action, len(owned))
	for _, a := range owned {
		ownedByID[a.ID] = a
	}

	seen := make(map[string]bool, len(copies))
	for _, c := range copies {
		seen[c.ID] = true

		existing := ownedByID[c.ID]
		if existing == nil {
			existing, err = s.findAction(ctx, workspaceID, c.ID)
			if err != nil {
				return err
			}
		}

		if existing == nil {
			if err := s.createAction(ctx, workspaceID, meetingID, c, actor, now); err != nil {
				return err
			}
			continue
		}

		prevText := actionMentionText(existing)
		wasArchived := existing.Archived
		changed := applyActionCopy(existing, c)
		if !changed && !wasArchived {
			continue
		}

		if wasArchived {
			existing.Unarchive()
		}
		existing.UpdatedAt = now
		existing.UpdatedBy = actor.UID
		if err := s.actionRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to update action %s: %w", existing.ID, err)
		}
		s.appendHistory(ctx, workspaceID, entities.HistoryEntityAction, existing.ID, updateEvent, actor, fmt.Sprintf("Action updated from meeting %s", meetingID), meetingID, now)
		if changed {
			s.emitMentions(ctx, workspaceID, "action", existing.ID, existing.Title, prevText, actionMentionText(existing), actor, now)
		}
	}

	return s.archiveOrphanActions(ctx, workspaceID, meetingID, owned, seen, actor, now)
}

func (s *Service) createAction(ctx context.Context, workspaceID, meetingID string, c entities.ActionCopy, actor entities.Actor, now time.Time) error {
	a := &entities.Action{
		ID:            c.ID,
		WorkspaceID:   workspaceID,
		Title:         c.Title,
		Owner:         c.Owner,
		OwnerUID:      c.OwnerUID,
		Status:        c.Status,
		Priority:      c.Priority,
		Project:       c.Project,
		DueAt:         c.DueAt,
		DueLabel:      c.DueLabel,
		DueSoon:       c.DueSoon,
		BlockedReason: c.BlockedReason,
		Notes:         c.Notes,
		MeetingID:     meetingID,
		Archived:      false,
		CreatedAt:     now,
		CreatedBy:     actor.UID,
		UpdatedAt:     now,
		UpdatedBy:     actor.UID,
	}
	if err := s.actionRepo.Create(ctx, a); err != nil {
		return fmt.Errorf("failed to create action %s: %w", a.ID, err)
	}
	s.appendHistory(ctx, workspaceID, entities.HistoryEntityAction, a.ID, entities.HistoryEventCreated, actor, fmt.Sprintf("Action captured in meeting %s", meetingID), meetingID, now)
	s.emitMentions(ctx, workspaceID, "action", a.ID, a.Title, "", actionMentionText(a), actor, now)
	return nil
}

func (s *Service) archiveOrphanActions(ctx context.Context, workspaceID, meetingID string, owned []*entities.Action, seen map[string]bool, actor entities.Actor, now time.Time) error {
	for _, a := range owned {
		if seen[a.ID] || a.Archived {
			continue
		}
		a.Archive(actor.UID, now)
		a.UpdatedAt = now
		a.UpdatedBy = actor.UID
		if err := s.actionRepo.Update(ctx, a); err != nil {
			return fmt.Errorf("failed to archive action %s: %w", a.ID, err)
		}
		s.appendHistory(ctx, workspaceID, entities.HistoryEntityAction, a.ID, entities.HistoryEventArchived, actor, fmt.Sprintf("Action removed from meeting %s", meetingID), meetingID, now)
	}
	return nil
}

// findDecision resolves a decision by id, treating not-found as nil.
func (s *Service) findDecision(ctx context.Context, workspaceID, id string) (*entities.Decision, error) {
	d, err := s.decisionRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find decision %s: %w", id, err)
	}
	return d, nil
}

func (s *Service) findAction(ctx context.Context, workspaceID, id string) (*entities.Action, error) {
	a, err := s.actionRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find action %s: %w", id, err)
	}
	return a, nil
}

// appendHistory writes one history event. History is part of the write path;
// a failure here is logged but does not abort the sync loop, because the
// entity write it describes has already committed.
func (s *Service) appendHistory(ctx context.Context, workspaceID string, entity entities.HistoryEntity, entityID string, eventType entities.HistoryEventType, actor entities.Actor, message, meetingID string, now time.Time) {
	metadata, _ := json.Marshal(map[string]string{"meetingId": meetingID})
	event := &entities.EntityHistoryEvent{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		Entity:      entity,
		EntityID:    entityID,
		EventType:   eventType,
		Source:      entities.HistorySourceMeetingSync,
		ActorUID:    actor.UID,
		ActorName:   actor.Name,
		Message:     message,
		Metadata:    metadata,
		CreatedAt:   now,
	}
	if err := s.historyRepo.Append(ctx, event); err != nil {
		s.logger.Warn("failed to append history event",
			zap.String("entity", string(entity)),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// emitMentions fires one notification per newly referenced handle. Emission
// is best-effort; failures are logged and swallowed.
func (s *Service) emitMentions(ctx context.Context, workspaceID, entityType, entityID, title, prevText, nextText string, actor entities.Actor, now time.Time) {
	handles := NewMentions(prevText, nextText)
	if len(handles) == 0 {
		return
	}

	path := fmt.Sprintf("/workspaces/%s/%ss/%s", workspaceID, entityType, entityID)
	for _, handle := range handles {
		n := MentionNotification{
			EntityType:          entityType,
			EntityID:            entityID,
			Title:               title,
			Path:                path,
			Handle:              handle,
			MentionText:         nextText,
			PreviousMentionText: prevText,
			ActorUID:            actor.UID,
			ActorName:           actor.Name,
			Timestamp:           now,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Warn("mention notification failed",
				zap.String("entity_id", entityID),
				zap.String("handle", handle),
				zap.Error(err),
			)
		}
	}
}

func decisionMentionText(d *entities.Decision) string {
	return strings.TrimSpace(d.Title + "\n" + d.Statement + "\n" + d.Rationale)
}

func actionMentionText(a *entities.Action) string {
	return strings.TrimSpace(a.Title + "\n" + a.Notes + "\n" + a.BlockedReason)
}
