// file: internals/scheduler/backup_scheduler.go
package scheduler

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

var c *cron.Cron

// StartBackupScheduler jadwalkan copy harian file database ke backupDir
// dengan nama bertimestamp (posts-<ts>.db). Gagal backup hanya dicatat,
// tidak pernah mematikan proses.
func StartBackupScheduler(dbPath, backupDir, spec string) error {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("gagal membuat direktori backup: %w", err)
	}

	c = cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := backupDatabase(dbPath, backupDir); err != nil {
			log.Printf("[BACKUP] gagal: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("gagal setup cron backup: %w", err)
	}
	c.Start()

	log.Println("✅ Backup scheduler started")
	return nil
}

// StopBackupScheduler hentikan cron (dipanggil saat shutdown).
func StopBackupScheduler() {
	if c != nil {
		c.Stop()
	}
}

func backupDatabase(dbPath, backupDir string) error {
	// 2006-01-02T15-04-05 — titik dua & titik tidak valid di path Windows
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(time.Now().UTC().Format(time.RFC3339))
	backupPath := filepath.Join(backupDir, fmt.Sprintf("posts-%s.db", ts))

	src, err := os.Open(dbPath)
	if err != nil {
		return fmt.Errorf("gagal buka file db: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("gagal buat file backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("gagal copy db: %w", err)
	}

	log.Printf("[BACKUP] database dibackup ke %s", backupPath)
	return nil
}
