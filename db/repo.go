package db

import (
	"context"
	"errors"

	"txlog/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

var (
	// ErrNotFound: the referenced transaction id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrSessionEnded: end attempted on a session already ended.
	ErrSessionEnded = errors.New("session already ended")
	// ErrAdminExists: setup attempted after the first admin was created.
	ErrAdminExists = errors.New("admin already exists")
)

// Registry

// UpsertOffice keeps office names unique: ON CONFLICT DO NOTHING, then fetch.
// Race-safe — two concurrent intakes for the same name resolve to one row.
func upsertOffice(tx *gorm.DB, name string) (uint, error) {
	o := models.Office{OfficeName: name}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "office_name"}},
		DoNothing: true,
	}).Create(&o).Error; err != nil {
		return 0, err
	}
	if o.ID != 0 {
		return o.ID, nil
	}
	if err := tx.Where("office_name = ?", name).First(&o).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *Repo) UpsertOffice(ctx context.Context, name string) (uint, error) {
	return upsertOffice(r.DB.WithContext(ctx), name)
}

// createPerson always inserts a fresh row, repeat names included.
func createPerson(tx *gorm.DB, fullName, role string) (uint, error) {
	if role == "" {
		role = "Employee"
	}
	p := models.Person{FullName: fullName, Role: role}
	if err := tx.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *Repo) CreatePerson(ctx context.Context, fullName, role string) (uint, error) {
	return createPerson(r.DB.WithContext(ctx), fullName, role)
}

func createProduct(tx *gorm.DB, name string, serial, model *string) (uint, error) {
	p := models.Product{ProductName: name, SerialNumber: serial, ModelNumber: model}
	if err := tx.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *Repo) CreateProduct(ctx context.Context, name string, serial, model *string) (uint, error) {
	return createProduct(r.DB.WithContext(ctx), name, serial, model)
}

// Admins

func (r *Repo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Admin{}).Count(&n).Error
	return n, err
}

// CreateFirstAdmin inserts the bootstrap admin, refusing once any row exists.
// The count check and insert share one transaction so concurrent setup calls
// cannot both succeed.
func (r *Repo) CreateFirstAdmin(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	a := models.Admin{Username: username, PasswordHash: passwordHash}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Admin{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAdminExists
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) FindAdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) TouchAdminLogin(ctx context.Context, adminID uint) error {
	return r.DB.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", adminID).
		Updates(map[string]interface{}{
			"last_login_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"last_seen_at":  gorm.Expr("CURRENT_TIMESTAMP"),
			"login_count":   gorm.Expr("COALESCE(login_count, 0) + 1"),
		}).Error
}

func (r *Repo) TouchAdminSeen(ctx context.Context, adminID uint) error {
	return r.DB.WithContext(ctx).Model(&models.Admin{}).
		Where("id = ?", adminID).
		Update("last_seen_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// logDeletion records the audit row inside the caller's transaction.
func logDeletion(tx *gorm.DB, kind string, recordID uint, by models.AdminRef) error {
	return tx.Create(&models.DeletionLog{
		RecordKind:    kind,
		RecordID:      recordID,
		AdminID:       by.ID,
		AdminUsername: by.Username,
	}).Error
}

func (r *Repo) ListDeletions(ctx context.Context, limit int) ([]models.DeletionLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.DeletionLog
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
