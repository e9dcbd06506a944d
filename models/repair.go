package models

import "time"

const (
	RepairTable        = "repair_transactions"
	RepairDetailTable  = "repair_details"
	ReleaseDetailTable = "release_details"
)

// Repair statuses, forward only: Received → Repaired → Released.
const (
	RepairStatusReceived = "Received"
	RepairStatusRepaired = "Repaired"
	RepairStatusReleased = "Released"
)

// Date columns hold YYYY-MM-DD strings as submitted by the intake forms.
type RepairTransaction struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	OfficeID           uint      `gorm:"index;not null" json:"officeId"`
	BroughtByID        uint      `gorm:"not null" json:"broughtById"`
	ProductID          uint      `gorm:"not null" json:"productId"`
	Quantity           int       `gorm:"not null;default:1" json:"quantity"`
	ProblemDescription string    `gorm:"type:text" json:"problemDescription"`
	ReceivedByID       uint      `gorm:"not null" json:"receivedById"`
	ContactNumber      string    `gorm:"size:50" json:"contactNumber"`
	ReceiveDate        string    `gorm:"size:10;not null" json:"receiveDate"`
	Status             string    `gorm:"size:20;not null;default:'Received'" json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (RepairTransaction) TableName() string { return RepairTable }

// One row per transaction; the repair transition upserts on
// repair_transaction_id.
type RepairDetail struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	RepairTransactionID uint   `gorm:"uniqueIndex;not null" json:"repairTransactionId"`
	RepairPersonID      uint   `gorm:"not null" json:"repairPersonId"`
	RepairDate          string `gorm:"size:10;not null" json:"repairDate"`
	RepairStatus        string `gorm:"size:30;not null" json:"repairStatus"` // Fixed / Unserviceable / ...
	Comment             string `gorm:"type:text" json:"comment"`
}

func (RepairDetail) TableName() string { return RepairDetailTable }

type ReleaseDetail struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	RepairTransactionID uint   `gorm:"uniqueIndex;not null" json:"repairTransactionId"`
	ReleasedToID        uint   `gorm:"not null" json:"releasedToId"`
	ReleasedByID        uint   `gorm:"not null" json:"releasedById"`
	ReleaseDate         string `gorm:"size:10;not null" json:"releaseDate"`
}

func (ReleaseDetail) TableName() string { return ReleaseDetailTable }
