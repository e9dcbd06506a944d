package db

import (
	"context"
	"errors"
	"time"

	"txlog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepairIntakeInput struct {
	OfficeName         string
	BroughtByName      string
	BroughtByRole      string
	ProductName        string
	SerialNumber       *string
	ModelNumber        *string
	Quantity           int
	ProblemDescription string
	ReceivedByName     string
	ReceivedByRole     string
	ContactNumber      string
	ReceiveDate        string
}

// CreateRepair: office upsert + two person inserts + product insert + the
// transaction row, all in one unit.
func (r *Repo) CreateRepair(ctx context.Context, in RepairIntakeInput) (*models.RepairTransaction, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	var rt models.RepairTransaction
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		officeID, err := upsertOffice(tx, in.OfficeName)
		if err != nil {
			return err
		}
		broughtByID, err := createPerson(tx, in.BroughtByName, in.BroughtByRole)
		if err != nil {
			return err
		}
		productID, err := createProduct(tx, in.ProductName, in.SerialNumber, in.ModelNumber)
		if err != nil {
			return err
		}
		receivedByID, err := createPerson(tx, in.ReceivedByName, in.ReceivedByRole)
		if err != nil {
			return err
		}
		rt = models.RepairTransaction{
			OfficeID:           officeID,
			BroughtByID:        broughtByID,
			ProductID:          productID,
			Quantity:           in.Quantity,
			ProblemDescription: in.ProblemDescription,
			ReceivedByID:       receivedByID,
			ContactNumber:      in.ContactNumber,
			ReceiveDate:        in.ReceiveDate,
			Status:             models.RepairStatusReceived,
		}
		return tx.Create(&rt).Error
	})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

type RepairDetailInput struct {
	RepairPersonName string
	RepairPersonRole string
	RepairDate       string
	RepairStatus     string
	Comment          string
}

// MarkRepaired upserts the detail row keyed on the transaction id and moves
// the parent to Repaired. Idempotent: a second call replaces the detail.
func (r *Repo) MarkRepaired(ctx context.Context, id uint, in RepairDetailInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRepair(tx, id); err != nil {
			return err
		}
		personID, err := createPerson(tx, in.RepairPersonName, in.RepairPersonRole)
		if err != nil {
			return err
		}
		d := models.RepairDetail{
			RepairTransactionID: id,
			RepairPersonID:      personID,
			RepairDate:          in.RepairDate,
			RepairStatus:        in.RepairStatus,
			Comment:             in.Comment,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "repair_transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"repair_person_id", "repair_date", "repair_status", "comment"}),
		}).Create(&d).Error; err != nil {
			return err
		}
		return tx.Model(&models.RepairTransaction{}).
			Where("id = ?", id).
			Update("status", models.RepairStatusRepaired).Error
	})
}

type ReleaseInput struct {
	ReleasedToName string
	ReleasedByName string
	ReleaseDate    string
}

func (r *Repo) ReleaseRepair(ctx context.Context, id uint, in ReleaseInput) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRepair(tx, id); err != nil {
			return err
		}
		releasedToID, err := createPerson(tx, in.ReleasedToName, "Office Representative")
		if err != nil {
			return err
		}
		releasedByID, err := createPerson(tx, in.ReleasedByName, "Employee")
		if err != nil {
			return err
		}
		d := models.ReleaseDetail{
			RepairTransactionID: id,
			ReleasedToID:        releasedToID,
			ReleasedByID:        releasedByID,
			ReleaseDate:         in.ReleaseDate,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "repair_transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"released_to_id", "released_by_id", "release_date"}),
		}).Create(&d).Error; err != nil {
			return err
		}
		return tx.Model(&models.RepairTransaction{}).
			Where("id = ?", id).
			Update("status", models.RepairStatusReleased).Error
	})
}

// DeleteRepair: detail rows first, then the parent, plus the audit row.
func (r *Repo) DeleteRepair(ctx context.Context, id uint, by models.AdminRef) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRepair(tx, id); err != nil {
			return err
		}
		if err := tx.Where("repair_transaction_id = ?", id).Delete(&models.RepairDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("repair_transaction_id = ?", id).Delete(&models.ReleaseDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.RepairTransaction{}, id).Error; err != nil {
			return err
		}
		return logDeletion(tx, "repair", id, by)
	})
}

// lockRepair pins the parent row for the rest of the transaction; a missing
// id surfaces as ErrNotFound.
func lockRepair(tx *gorm.DB, id uint) error {
	var rt models.RepairTransaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// RepairRow is the joined listing projection.
type RepairRow struct {
	ID                 uint      `json:"id"`
	Quantity           int       `json:"quantity"`
	ProblemDescription string    `json:"problem_description"`
	ContactNumber      string    `json:"contact_number"`
	ReceiveDate        string    `json:"receive_date"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	OfficeName         string    `json:"office_name"`
	BroughtByName      string    `json:"brought_by_name"`
	BroughtByRole      string    `json:"brought_by_role"`
	ProductName        string    `json:"product_name"`
	SerialNumber       *string   `json:"serial_number"`
	ModelNumber        *string   `json:"model_number"`
	ReceivedByName     string    `json:"received_by_name"`
	ReceivedByRole     string    `json:"received_by_role"`
	RepairDate         *string   `json:"repair_date"`
	RepairStatus       *string   `json:"repair_status"`
	Comment            *string   `json:"comment"`
	RepairPersonName   *string   `json:"repair_person_name"`
	ReleaseDate        *string   `json:"release_date"`
	ReleasedToName     *string   `json:"released_to_name"`
	ReleasedByName     *string   `json:"released_by_name"`
}

func (r *Repo) ListRepairs(ctx context.Context) ([]RepairRow, error) {
	rows := []RepairRow{}
	err := r.DB.WithContext(ctx).
		Table(models.RepairTable+" AS rt").
		Select(`rt.id, rt.quantity, rt.problem_description, rt.contact_number,
			rt.receive_date, rt.status, rt.created_at,
			o.office_name,
			pb.full_name AS brought_by_name, pb.role AS brought_by_role,
			p.product_name, p.serial_number, p.model_number,
			rb.full_name AS received_by_name, rb.role AS received_by_role,
			rd.repair_date, rd.repair_status, rd.comment,
			rp.full_name AS repair_person_name,
			rel.release_date,
			rlt.full_name AS released_to_name,
			rlb.full_name AS released_by_name`).
		Joins("JOIN "+models.OfficeTable+" o ON rt.office_id = o.id").
		Joins("JOIN "+models.PersonTable+" pb ON rt.brought_by_id = pb.id").
		Joins("JOIN "+models.ProductTable+" p ON rt.product_id = p.id").
		Joins("JOIN "+models.PersonTable+" rb ON rt.received_by_id = rb.id").
		Joins("LEFT JOIN "+models.RepairDetailTable+" rd ON rt.id = rd.repair_transaction_id").
		Joins("LEFT JOIN "+models.PersonTable+" rp ON rd.repair_person_id = rp.id").
		Joins("LEFT JOIN "+models.ReleaseDetailTable+" rel ON rt.id = rel.repair_transaction_id").
		Joins("LEFT JOIN "+models.PersonTable+" rlt ON rel.released_to_id = rlt.id").
		Joins("LEFT JOIN "+models.PersonTable+" rlb ON rel.released_by_id = rlb.id").
		Order("rt.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repo) FindRepairByID(ctx context.Context, id uint) (*models.RepairTransaction, error) {
	var rt models.RepairTransaction
	err := r.DB.WithContext(ctx).First(&rt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *Repo) FindRepairDetail(ctx context.Context, id uint) (*models.RepairDetail, error) {
	var d models.RepairDetail
	err := r.DB.WithContext(ctx).Where("repair_transaction_id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
