package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/workhub-team/workhub/internal/domain/entities"
	"github.com/workhub-team/workhub/internal/domain/repositories"
)

// memberRepository implements the MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &memberRepository{db: db}
}

// FindByUID retrieves the membership record for a caller
func (r *memberRepository) FindByUID(ctx context.Context, workspaceID, uid string) (*entities.WorkspaceMember, error) {
	var member entities.WorkspaceMember
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND uid = ?", workspaceID, uid).
		First(&member).Error

	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByHandles resolves mention handles to members
func (r *memberRepository) FindByHandles(ctx context.Context, workspaceID string, handles []string) ([]*entities.WorkspaceMember, error) {
	if len(handles) == 0 {
		return []*entities.WorkspaceMember{}, nil
	}

	var members []*entities.WorkspaceMember
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND handle IN ?", workspaceID, handles).
		Find(&members).Error
	return members, err
}

// Create persists a new workspace member
func (r *memberRepository) Create(ctx context.Context, member *entities.WorkspaceMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}
