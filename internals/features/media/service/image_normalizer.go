// file: internals/features/media/service/image_normalizer.go
package service

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"mediaku_backend/internals/constants"
)

// Normalize: transcode upload foto jadi JPEG dengan lebar ≤ 1080 (keep aspect,
// tidak pernah upscale), nama file unik baru. Sukses → file sementara hasil
// intake dihapus best-effort; hasilnya nama file JPEG final.
func (s *MediaService) Normalize(stored *StoredFile) (string, error) {
	start := time.Now()
	log.Println("[MEDIA] mulai proses gambar")

	img, err := imaging.Open(stored.Path)
	if err != nil {
		return "", fmt.Errorf("gagal decode gambar: %w", err)
	}

	if img.Bounds().Dx() > constants.MaxPhotoWidth {
		// lebar di-bound, tinggi ikut aspect ratio
		img = imaging.Resize(img, constants.MaxPhotoWidth, 0, imaging.CatmullRom)
	}

	filename := uuid.New().String() + ".jpg"
	outPath := filepath.Join(s.UploadDir, filename)

	if err := imaging.Save(img, outPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("gagal encode JPEG: %w", err)
	}

	s.CleanupBestEffort(stored.Path)

	log.Printf("[MEDIA] proses gambar selesai (%s)", time.Since(start))
	return filename, nil
}
