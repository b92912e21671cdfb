package presenter

import (
	dto "github.com/workhub-team/workhub/internal/adapter/dto/meeting"
	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO. The
// JSONB list columns are decoded through the entity's snapshot so responses
// always carry structurally complete lists.
func ToMeetingResponse(m *entities.Meeting) *dto.MeetingResponse {
	if m == nil {
		return nil
	}

	snap, err := m.Snapshot()
	if err != nil {
		snap = &entities.MeetingSnapshot{}
	}

	return &dto.MeetingResponse{
		ID:               m.ID,
		WorkspaceID:      m.WorkspaceID,
		Title:            m.Title,
		Team:             m.Team,
		Owner:            m.Owner,
		Time:             m.Time,
		DurationMinutes:  m.DurationMinutes,
		Location:         m.Location,
		Objective:        m.Objective,
		State:            m.State,
		Digest:           m.Digest,
		SentLabel:        m.SentLabel,
		Locked:           m.Locked,
		Revision:         m.Revision,
		Attendees:        snap.Attendees,
		AgendaItems:      snap.AgendaItems,
		NoteSections:     snap.NoteSections,
		OpenQuestions:    snap.OpenQuestions,
		Decisions:        snap.Decisions,
		Actions:          snap.Actions,
		DigestRecipients: snap.DigestRecipients,
		DigestOptions:    snap.DigestOptions,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		UpdatedBy:        m.UpdatedBy,
	}
}

// ToUpdateMeetingResponse converts a sync result to UpdateMeetingResponse DTO
func ToUpdateMeetingResponse(res *meeting.UpdateResult) *dto.UpdateMeetingResponse {
	if res == nil {
		return nil
	}

	return &dto.UpdateMeetingResponse{
		Meeting:       ToMeetingResponse(res.Meeting),
		RevisionID:    res.RevisionID,
		Revision:      res.Revision,
		EventType:     string(res.EventType),
		ChangedFields: res.ChangedFields,
		Summary:       res.Summary,
		NoOp:          res.NoOp,
		DroppedItems:  res.DroppedItems,
		RestoredFrom:  res.RestoredFrom,
	}
}

// ToRevisionResponse converts a MeetingRevision entity to RevisionResponse
// DTO. The stored snapshot is included only when withSnapshot is set.
func ToRevisionResponse(r *entities.MeetingRevision, withSnapshot bool) *dto.RevisionResponse {
	if r == nil {
		return nil
	}

	fields, err := r.DecodeChangedFields()
	if err != nil {
		fields = []string{}
	}

	restoredFrom := ""
	if r.RestoredFromRevisionID != nil {
		restoredFrom = *r.RestoredFromRevisionID
	}

	response := &dto.RevisionResponse{
		ID:                     r.ID,
		MeetingID:              r.MeetingID,
		WorkspaceID:            r.WorkspaceID,
		Source:                 r.Source,
		EventType:              r.EventType,
		ChangedFields:          fields,
		Summary:                r.Summary,
		MeetingRevision:        r.MeetingRevision,
		ActorUID:               r.ActorUID,
		ActorName:              r.ActorName,
		CapturedAt:             r.CapturedAt,
		RestoredFromRevisionID: restoredFrom,
	}

	if withSnapshot {
		if snap, err := r.DecodeSnapshot(); err == nil {
			response.Snapshot = snap
		}
	}

	return response
}

// ToRevisionListResponse converts a slice of revisions to list-form DTOs,
// omitting the stored snapshots.
func ToRevisionListResponse(revisions []*entities.MeetingRevision) []*dto.RevisionResponse {
	responses := make([]*dto.RevisionResponse, len(revisions))
	for i, r := range revisions {
		responses[i] = ToRevisionResponse(r, false)
	}
	return responses
}
