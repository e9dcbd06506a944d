package db

import (
	"fmt"
	"log"
	"os"

	"txlog/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	err = Migrate(DB)
	if err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

// Migrate is the idempotent schema step, run once before the server accepts
// connections.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Office{},
		&models.Person{},
		&models.Product{},
		&models.RepairTransaction{},
		&models.RepairDetail{},
		&models.ReleaseDetail{},
		&models.BorrowTransaction{},
		&models.ReturnDetail{},
		&models.Reservation{},
		&models.Tech4edSession{},
		&models.DeletionLog{},
	); err != nil {
		return err
	}

	// 每个 detail 表对其 transaction id 一对一
	for table, col := range map[string]string{
		models.RepairDetailTable:  "repair_transaction_id",
		models.ReleaseDetailTable: "repair_transaction_id",
		models.ReturnDetailTable:  "borrow_transaction_id",
	} {
		if err := db.Exec(fmt.Sprintf(`
		  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_per_tx
		  ON %s (%s);
		`, table, table, col)).Error; err != nil {
			return err
		}
	}

	// 报表按收件月份扫描
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_receive_date
	  ON %s (receive_date);
	`, models.RepairTable, models.RepairTable)).Error; err != nil {
		return err
	}

	return nil
}
