package models

import "time"

const ReservationTable = "reservations"

// Reservation statuses: Reserved → Picked → Returned. Cancelled exists in the
// domain but no route reaches it.
const (
	ReservationStatusReserved  = "Reserved"
	ReservationStatusPicked    = "Picked"
	ReservationStatusReturned  = "Returned"
	ReservationStatusCancelled = "Cancelled"
)

type Reservation struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ReserverID          uint      `gorm:"not null" json:"reserverId"`
	OfficeID            uint      `gorm:"index;not null" json:"officeId"`
	ItemName            string    `gorm:"size:200;not null" json:"itemName"`
	Quantity            int       `gorm:"not null;default:1" json:"quantity"`
	Purpose             string    `gorm:"type:text" json:"purpose"`
	Notes               string    `gorm:"type:text" json:"notes"`
	ReservationDate     string    `gorm:"size:10;not null" json:"reservationDate"`
	EstimatedPickupDate string    `gorm:"size:10;not null" json:"estimatedPickupDate"`
	EstimatedReturnDate string    `gorm:"size:10;not null" json:"estimatedReturnDate"`
	ActualPickupDate    *string   `gorm:"size:10" json:"actualPickupDate,omitempty"`
	ActualReturnDate    *string   `gorm:"size:10" json:"actualReturnDate,omitempty"`
	ReleasedByID        *uint     `json:"releasedById,omitempty"`
	ReceivedByID        *uint     `json:"receivedById,omitempty"`
	ApprovedByID        *uint     `json:"approvedById,omitempty"`
	Status              string    `gorm:"size:20;not null;default:'Reserved'" json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (Reservation) TableName() string { return ReservationTable }
