package models

import "time"

const (
	OfficeTable  = "offices"
	PersonTable  = "persons"
	ProductTable = "products"
)

// Office rows are deduplicated by name: intake upserts on office_name and
// reuses the existing id.
type Office struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OfficeName string `gorm:"uniqueIndex;size:200;not null" json:"officeName"`
}

func (Office) TableName() string { return OfficeTable }

// Person rows are never deduplicated — every participant mention inserts a
// fresh row, repeat names and all.
type Person struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:200;not null" json:"fullName"`
	Role     string `gorm:"size:100;not null;default:'Employee'" json:"role"`
}

func (Person) TableName() string { return PersonTable }

type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProductName  string    `gorm:"size:200;not null" json:"productName"`
	SerialNumber *string   `gorm:"size:120" json:"serialNumber,omitempty"`
	ModelNumber  *string   `gorm:"size:120" json:"modelNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Product) TableName() string { return ProductTable }
