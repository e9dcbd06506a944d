package models

import "time"

const (
	BorrowTable       = "borrow_transactions"
	ReturnDetailTable = "return_details"
)

const (
	BorrowStatusBorrowed = "Borrowed"
	BorrowStatusReturned = "Returned"
)

type BorrowTransaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BorrowerID   uint      `gorm:"not null" json:"borrowerId"`
	ReleasedByID uint      `gorm:"not null" json:"releasedById"`
	ItemName     string    `gorm:"size:200;not null" json:"itemName"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	BorrowDate   string    `gorm:"size:10;not null" json:"borrowDate"`
	BorrowOffice *string   `gorm:"size:200" json:"borrowOffice,omitempty"`
	Status       string    `gorm:"size:20;not null;default:'Borrowed'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (BorrowTransaction) TableName() string { return BorrowTable }

type ReturnDetail struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	BorrowTransactionID uint   `gorm:"uniqueIndex;not null" json:"borrowTransactionId"`
	ReceivedByID        uint   `gorm:"not null" json:"receivedById"`
	ReturnDate          string `gorm:"size:10;not null" json:"returnDate"`
}

func (ReturnDetail) TableName() string { return ReturnDetailTable }
