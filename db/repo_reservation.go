package db

import (
	"context"
	"errors"
	"time"

	"txlog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationIntakeInput struct {
	ReserverName        string
	ReserverRole        string
	OfficeName          string
	ItemName            string
	Quantity            int
	Purpose             string
	Notes               string
	ReservationDate     string
	EstimatedPickupDate string
	EstimatedReturnDate string
	ApprovedByName      string // optional
}

func (r *Repo) CreateReservation(ctx context.Context, in ReservationIntakeInput) (*models.Reservation, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	var rv models.Reservation
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		officeID, err := upsertOffice(tx, in.OfficeName)
		if err != nil {
			return err
		}
		reserverID, err := createPerson(tx, in.ReserverName, in.ReserverRole)
		if err != nil {
			return err
		}
		var approvedByID *uint
		if in.ApprovedByName != "" {
			id, err := createPerson(tx, in.ApprovedByName, "Employee")
			if err != nil {
				return err
			}
			approvedByID = &id
		}
		rv = models.Reservation{
			ReserverID:          reserverID,
			OfficeID:            officeID,
			ItemName:            in.ItemName,
			Quantity:            in.Quantity,
			Purpose:             in.Purpose,
			Notes:               in.Notes,
			ReservationDate:     in.ReservationDate,
			EstimatedPickupDate: in.EstimatedPickupDate,
			EstimatedReturnDate: in.EstimatedReturnDate,
			ApprovedByID:        approvedByID,
			Status:              models.ReservationStatusReserved,
		}
		return tx.Create(&rv).Error
	})
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

type PickupInput struct {
	ReleasedByName   string
	ActualPickupDate string
}

// PickReservation stores pickup facts on the reservation row itself — the
// reservation carries its own actual_* columns instead of a detail table.
func (r *Repo) PickReservation(ctx context.Context, id uint, in PickupInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, id); err != nil {
			return err
		}
		releasedByID, err := createPerson(tx, in.ReleasedByName, "Employee")
		if err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"released_by_id":     releasedByID,
				"actual_pickup_date": in.ActualPickupDate,
				"status":             models.ReservationStatusPicked,
			}).Error
	})
}

type ReservationReturnInput struct {
	ReceivedByName   string
	ActualReturnDate string
}

func (r *Repo) ReturnReservation(ctx context.Context, id uint, in ReservationReturnInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, id); err != nil {
			return err
		}
		receivedByID, err := createPerson(tx, in.ReceivedByName, "Employee")
		if err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"received_by_id":     receivedByID,
				"actual_return_date": in.ActualReturnDate,
				"status":             models.ReservationStatusReturned,
			}).Error
	})
}

func (r *Repo) DeleteReservation(ctx context.Context, id uint, by models.AdminRef) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReservation(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&models.Reservation{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "reservation", id, by)
	})
}

func lockReservation(tx *gorm.DB, id uint) error {
	var rv models.Reservation
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type ReservationRow struct {
	ID                  uint      `json:"id"`
	ItemName            string    `json:"item_name"`
	Quantity            int       `json:"quantity"`
	Purpose             string    `json:"purpose"`
	Notes               string    `json:"notes"`
	ReservationDate     string    `json:"reservation_date"`
	EstimatedPickupDate string    `json:"estimated_pickup_date"`
	EstimatedReturnDate string    `json:"estimated_return_date"`
	ActualPickupDate    *string   `json:"actual_pickup_date"`
	ActualReturnDate    *string   `json:"actual_return_date"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	ReserverName        string    `json:"reserver_name"`
	OfficeName          string    `json:"office_name"`
	ReleasedByName      *string   `json:"released_by_name"`
	ReceivedByName      *string   `json:"received_by_name"`
	ApprovedByName      *string   `json:"approved_by_name"`
}

func (r *Repo) ListReservations(ctx context.Context) ([]ReservationRow, error) {
	rows := []ReservationRow{}
	err := r.DB.WithContext(ctx).
		Table(models.ReservationTable+" AS rv").
		Select(`rv.id, rv.item_name, rv.quantity, rv.purpose, rv.notes,
			rv.reservation_date, rv.estimated_pickup_date, rv.estimated_return_date,
			rv.actual_pickup_date, rv.actual_return_date, rv.status, rv.created_at,
			rsv.full_name AS reserver_name,
			o.office_name,
			rlb.full_name AS released_by_name,
			rcv.full_name AS received_by_name,
			apv.full_name AS approved_by_name`).
		Joins("JOIN "+models.PersonTable+" rsv ON rv.reserver_id = rsv.id").
		Joins("JOIN "+models.OfficeTable+" o ON rv.office_id = o.id").
		Joins("LEFT JOIN "+models.PersonTable+" rlb ON rv.released_by_id = rlb.id").
		Joins("LEFT JOIN "+models.PersonTable+" rcv ON rv.received_by_id = rcv.id").
		Joins("LEFT JOIN "+models.PersonTable+" apv ON rv.approved_by_id = apv.id").
		Order("rv.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repo) FindReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var rv models.Reservation
	err := r.DB.WithContext(ctx).First(&rv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}
