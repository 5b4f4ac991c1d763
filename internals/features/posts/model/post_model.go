// file: internals/features/posts/model/post_model.go
package model

import (
	"time"
)

/* =========================================================
   ENUM: PostType
   ========================================================= */

type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypePhoto PostType = "photo"
	PostTypeVideo PostType = "video"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeText, PostTypePhoto, PostTypeVideo:
		return true
	default:
		return false
	}
}

// RequiresMedia: photo/video wajib bawa file upload saat create.
func (t PostType) RequiresMedia() bool {
	return t == PostTypePhoto || t == PostTypeVideo
}

/* =========================================================
   MODEL: posts
   ========================================================= */

type PostModel struct {
	// PK, di-assign service sebelum file I/O (immutable)
	PostID string `gorm:"type:text;primaryKey;column:id" json:"id"`

	// Jenis post (immutable setelah create)
	PostType PostType `gorm:"type:text;not null;column:type" json:"type"`

	// Isi teks (nullable; wajib non-kosong untuk type=text)
	PostContent *string `gorm:"type:text;column:content" json:"content"`

	// Nama file media tersimpan (nullable; immutable setelah create)
	PostMediaPath *string `gorm:"type:text;column:media_path" json:"media_path"`

	// Waktu dibuat, sort key listing (descending)
	PostTimestamp time.Time `gorm:"column:timestamp;not null;autoCreateTime;index:idx_posts_timestamp" json:"timestamp"`

	// Tags disimpan sebagai join "a,b,c" (urutan dipertahankan)
	PostTags *string `gorm:"type:text;column:tags" json:"tags"`
}

func (PostModel) TableName() string { return "posts" }
