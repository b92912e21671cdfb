package entities

import "time"

// MemberRole represents a workspace member's role
type MemberRole string

const (
	MemberRoleViewer MemberRole = "viewer"
	MemberRoleEditor MemberRole = "editor"
	MemberRoleAdmin  MemberRole = "admin"
)

// WorkspaceMember is a workspace membership record, the authorization
// lookup backing every meeting operation.
type WorkspaceMember struct {
	WorkspaceID string     `gorm:"type:varchar(64);primaryKey" json:"workspace_id"`
	UID         string     `gorm:"type:varchar(64);primaryKey;column:uid" json:"uid"`
	DisplayName string     `gorm:"type:varchar(255)" json:"display_name"`
	Handle      string     `gorm:"type:varchar(64);index" json:"handle"`
	Role        MemberRole `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	CreatedAt   time.Time  `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for WorkspaceMember
func (WorkspaceMember) TableName() string {
	return "workspace_members"
}

// CanEdit checks if the member may apply content updates
func (m *WorkspaceMember) CanEdit() bool {
	return m.Role == MemberRoleEditor || m.Role == MemberRoleAdmin
}

// CanRestore checks if the member may restore historical revisions
func (m *WorkspaceMember) CanRestore() bool {
	return m.Role == MemberRoleAdmin
}

// Actor identifies the caller applying an operation
type Actor struct {
	UID  string     `json:"uid"`
	Name string     `json:"name"`
	Role MemberRole `json:"role"`
}
