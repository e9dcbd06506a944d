package models

import "time"

const AdminTable = "admins"

// Admin is the single operator account. /api/setup creates the first row and
// refuses to run again once one exists.
type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`

	LastLoginAt *time.Time `gorm:"index" json:"lastLoginAt,omitempty"`
	LastSeenAt  *time.Time `gorm:"index" json:"lastSeenAt,omitempty"`
	LoginCount  int64      `gorm:"not null;default:0" json:"loginCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Admin) TableName() string { return AdminTable }

// AdminRef identifies the acting admin on audit writes.
type AdminRef struct {
	ID       uint
	Username string
}

// DeletionLog keeps an audit trail of hard deletes. Written in the same
// transaction as the delete itself.
type DeletionLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecordKind    string    `gorm:"size:20;not null" json:"recordKind"` // repair/borrow/reservation/tech4ed
	RecordID      uint      `gorm:"not null" json:"recordId"`
	AdminID       uint      `gorm:"index" json:"adminId"`
	AdminUsername string    `gorm:"size:100" json:"adminUsername"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (DeletionLog) TableName() string { return "deletion_logs" }
