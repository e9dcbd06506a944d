package db

import (
	"context"
	"errors"
	"time"

	"txlog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BorrowIntakeInput struct {
	BorrowerName   string
	ReleasedByName string
	ItemName       string
	Quantity       int
	BorrowDate     string
	BorrowOffice   *string
}

func (r *Repo) CreateBorrow(ctx context.Context, in BorrowIntakeInput) (*models.BorrowTransaction, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	var bt models.BorrowTransaction
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		borrowerID, err := createPerson(tx, in.BorrowerName, "Borrower")
		if err != nil {
			return err
		}
		releasedByID, err := createPerson(tx, in.ReleasedByName, "Employee")
		if err != nil {
			return err
		}
		bt = models.BorrowTransaction{
			BorrowerID:   borrowerID,
			ReleasedByID: releasedByID,
			ItemName:     in.ItemName,
			Quantity:     in.Quantity,
			BorrowDate:   in.BorrowDate,
			BorrowOffice: in.BorrowOffice,
			Status:       models.BorrowStatusBorrowed,
		}
		return tx.Create(&bt).Error
	})
	if err != nil {
		return nil, err
	}
	return &bt, nil
}

type ReturnInput struct {
	ReceivedByName string
	ReturnDate     string
}

func (r *Repo) ReturnBorrow(ctx context.Context, id uint, in ReturnInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBorrow(tx, id); err != nil {
			return err
		}
		receivedByID, err := createPerson(tx, in.ReceivedByName, "Employee")
		if err != nil {
			return err
		}
		d := models.ReturnDetail{
			BorrowTransactionID: id,
			ReceivedByID:        receivedByID,
			ReturnDate:          in.ReturnDate,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "borrow_transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"received_by_id", "return_date"}),
		}).Create(&d).Error; err != nil {
			return err
		}
		return tx.Model(&models.BorrowTransaction{}).
			Where("id = ?", id).
			Update("status", models.BorrowStatusReturned).Error
	})
}

func (r *Repo) DeleteBorrow(ctx context.Context, id uint, by models.AdminRef) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockBorrow(tx, id); err != nil {
			return err
		}
		if err := tx.Where("borrow_transaction_id = ?", id).Delete(&models.ReturnDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.BorrowTransaction{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "borrow", id, by)
	})
}

func lockBorrow(tx *gorm.DB, id uint) error {
	var bt models.BorrowTransaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type BorrowRow struct {
	ID             uint      `json:"id"`
	ItemName       string    `json:"item_name"`
	Quantity       int       `json:"quantity"`
	BorrowDate     string    `json:"borrow_date"`
	BorrowOffice   *string   `json:"borrow_office"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	BorrowerName   string    `json:"borrower_name"`
	ReleasedByName string    `json:"released_by_name"`
	ReturnDate     *string   `json:"return_date"`
	ReceivedByName *string   `json:"received_by_name"`
}

func (r *Repo) ListBorrows(ctx context.Context) ([]BorrowRow, error) {
	rows := []BorrowRow{}
	err := r.DB.WithContext(ctx).
		Table(models.BorrowTable+" AS bt").
		Select(`bt.id, bt.item_name, bt.quantity, bt.borrow_date, bt.borrow_office,
			bt.status, bt.created_at,
			b.full_name AS borrower_name,
			rb.full_name AS released_by_name,
			rd.return_date,
			rcv.full_name AS received_by_name`).
		Joins("JOIN "+models.PersonTable+" b ON bt.borrower_id = b.id").
		Joins("JOIN "+models.PersonTable+" rb ON bt.released_by_id = rb.id").
		Joins("LEFT JOIN "+models.ReturnDetailTable+" rd ON bt.id = rd.borrow_transaction_id").
		Joins("LEFT JOIN "+models.PersonTable+" rcv ON rd.received_by_id = rcv.id").
		Order("bt.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repo) FindBorrowByID(ctx context.Context, id uint) (*models.BorrowTransaction, error) {
	var bt models.BorrowTransaction
	err := r.DB.WithContext(ctx).First(&bt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bt, nil
}
