package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The row models below only describe the schema. Reads and writes go through
// the pgx repositories.

type AuditColumns struct {
	CreatedBy *string   `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedBy *string   `gorm:"size:255"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
	IsDeleted bool      `gorm:"not null;default:false;index"`
}

type planeRow struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100"`
	Producer    string `gorm:"size:100"`
	DiagramLink string
	Summary     string
	AuditColumns `gorm:"embedded"`
}

func (planeRow) TableName() string { return "planes" }

type flightRow struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	PlaneID       int64     `gorm:"not null;index"`
	StartTime     time.Time `gorm:"not null;index"`
	EndTime       time.Time `gorm:"not null"`
	Status        string    `gorm:"size:16;not null;index"`
	Departure     string    `gorm:"not null"`
	DepartureCode string    `gorm:"size:8;not null"`
	Arrival       string    `gorm:"not null"`
	ArrivalCode   string    `gorm:"size:8;not null"`
	Gate          string    `gorm:"size:16;not null"`
	AuditColumns  `gorm:"embedded"`
}

func (flightRow) TableName() string { return "flights" }

type seatRow struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"size:16;not null"`
	PlaneID      int64  `gorm:"not null;index"`
	Type         string `gorm:"size:16;not null"`
	HaveWindow   bool   `gorm:"not null"`
	PictureLink  string
	Summary      string
	AuditColumns `gorm:"embedded"`
}

func (seatRow) TableName() string { return "seats" }

type newsRow struct {
	ID           int64  `gorm:"primaryKey"`
	Title        string `gorm:"size:255;not null"`
	Author       string `gorm:"size:100;not null"`
	Category     string `gorm:"size:16;not null;index"`
	Summary      string `gorm:"not null"`
	Content      string `gorm:"not null"`
	PictureLink  string `gorm:"not null"`
	AuditColumns `gorm:"embedded"`
}

func (newsRow) TableName() string { return "news" }

type userRow struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	Password     string `gorm:"not null"`
	Name         string `gorm:"size:100;not null"`
	IDNumber     string `gorm:"column:id_number;size:32;not null"`
	Birthday     *time.Time
	Phone        *string `gorm:"size:32"`
	Gender       *string `gorm:"size:8"`
	Address      *string
	Role         string `gorm:"size:8;not null;default:USER"`
	IsForgotten  bool   `gorm:"not null;default:false"`
	AuditColumns `gorm:"embedded"`
}

func (userRow) TableName() string { return "users" }

type transactionRow struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       *int64    `gorm:"index"`
	FlightID     int64     `gorm:"not null;index"`
	SeatID       int64     `gorm:"not null;index"`
	Status       string    `gorm:"size:16;not null;index:idx_transactions_status_due,priority:1"`
	DueDate      time.Time `gorm:"not null;index:idx_transactions_status_due,priority:2"`
	AuditColumns `gorm:"embedded"`
}

func (transactionRow) TableName() string { return "transactions" }

// Migrate creates or updates the relational schema.
func Migrate(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&planeRow{},
		&flightRow{},
		&seatRow{},
		&newsRow{},
		&userRow{},
		&transactionRow{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
