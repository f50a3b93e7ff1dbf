package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/config"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Station{},
		&models.User{},
		&models.Chef{},
		&models.ChefAvailability{},
		&models.SlotHold{},
		&models.Booking{},
		&models.SignedAgreement{},
		&models.ChefAssignment{},
		&models.BookingNegotiation{},
		&models.CustomerProfile{},
		&models.DynamicVariable{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createPartialIndexes(db)
	seedDynamicVariables(db)

	return db
}

// Índices únicos parciais: a corrida entre dois create-hold é decidida
// pelo banco, nunca pela aplicação
func createPartialIndexes(db *gorm.DB) {
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_hold_per_slot
        ON slot_holds (station_id, event_date, slot_time)
        WHERE status = 'pending'
    `)

	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_booking_per_slot
        ON bookings (station_id, event_date, slot_time)
        WHERE status IN ('pending', 'confirmed', 'in_progress', 'completed', 'cancellation_requested')
          AND deleted_at IS NULL
    `)
}

// Seed das variáveis de negócio. ON CONFLICT DO NOTHING: valores já
// ajustados pelos admins nunca são sobrescritos no boot.
func seedDynamicVariables(db *gorm.DB) {
	seeds := []struct {
		category string
		key      string
		value    string
	}{
		{"scheduling", "signing_window_hours", "2"},
		{"scheduling", "payment_window_hours", "4"},
		{"scheduling", "warning_lead_minutes", "60"},
		{"scheduling", "chef_availability_window_days", "14"},
		{"scheduling", "long_advance_slot_capacity", "1"},
		{"scheduling", "urgent_threshold_days", "7"},
		{"negotiation", "expiry_hours", "24"},
		{"travel", "cache_ttl_days", "7"},
		{"travel", "default_speed_kmh", "40"},
	}

	for _, s := range seeds {
		db.Exec(`
            INSERT INTO dynamic_variables (category, key, value, created_at, updated_at)
            VALUES (?, ?, ?::jsonb, NOW(), NOW())
            ON CONFLICT (category, key) DO NOTHING
        `, s.category, s.key, s.value)
	}
}
