// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "suratku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler membersihkan token blacklist yang sudah
// kadaluarsa tiap jam supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := authRepo.CleanupExpiredBlacklist(db, time.Now().UTC())
			if err != nil {
				log.Printf("[scheduler] cleanup blacklist gagal: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("🧹 Blacklist cleanup: %d token dihapus", deleted)
			}
		}
	}()
}
