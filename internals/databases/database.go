package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mediaku_backend/internals/configs"
	model "mediaku_backend/internals/features/posts/model"
)

// Connect membuka database SQLite file-based lalu mengembalikan handle-nya.
// Handle dimiliki main dan dioper eksplisit ke controller/service (tanpa global).
// Satu file .db supaya job backup harian cukup copy file.
func Connect(dbPath string) (*gorm.DB, error) {
	log.Printf("🔌 Koneksi ke SQLite (%s)...", dbPath)

	// Pastikan direktori db ada sebelum open
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("gagal membuat direktori database: %w", err)
		}
	}

	// busy_timeout: tulis konkuren antar-request menunggu lock, bukan langsung gagal
	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL", dbPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}

	if err := db.AutoMigrate(&model.PostModel{}); err != nil {
		return nil, fmt.Errorf("gagal migrasi tabel posts: %w", err)
	}

	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	// SQLite: satu writer; biarkan reader paralel lewat WAL
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}
