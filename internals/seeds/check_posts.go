// file: internals/seeds/check_posts.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	model "mediaku_backend/internals/features/posts/model"
)

// DumpPosts: alat inspeksi dev — cetak semua row posts ke log.
// Jalankan dengan CHECK_POSTS=1.
func DumpPosts(db *gorm.DB) {
	var rows []model.PostModel
	if err := db.Order("timestamp DESC").Find(&rows).Error; err != nil {
		log.Printf("[CHECK] gagal baca posts: %v", err)
		return
	}
	log.Printf("[CHECK] total %d post", len(rows))
	for _, r := range rows {
		content := ""
		if r.PostContent != nil {
			content = *r.PostContent
		}
		media := "-"
		if r.PostMediaPath != nil {
			media = *r.PostMediaPath
		}
		log.Printf("[CHECK] %s | %s | %q | media=%s | %s", r.PostID, r.PostType, content, media, r.PostTimestamp.Format("2006-01-02 15:04:05"))
	}
}

// CheckIndexes: cetak index di tabel posts (padanan PRAGMA index_list).
func CheckIndexes(db *gorm.DB) {
	type indexRow struct {
		Seq     int    `gorm:"column:seq"`
		Name    string `gorm:"column:name"`
		Unique  int    `gorm:"column:unique"`
		Origin  string `gorm:"column:origin"`
		Partial int    `gorm:"column:partial"`
	}
	var rows []indexRow
	if err := db.Raw("PRAGMA index_list(posts)").Scan(&rows).Error; err != nil {
		log.Printf("[CHECK] gagal baca index: %v", err)
		return
	}
	for _, r := range rows {
		log.Printf("[CHECK] index: %s (unique=%d origin=%s)", r.Name, r.Unique, r.Origin)
	}
}
