// file: internals/constants/media_types.go
package constants

import "strings"

/* =========================================================
   Media upload limits & allow-list
   ========================================================= */

const (
	// Batas ukuran upload media (50 MiB)
	MaxUploadSize = int64(50 * 1024 * 1024)

	// Satu file per request
	MaxUploadFiles = 1

	// Lebar maksimum hasil normalisasi foto (px)
	MaxPhotoWidth = 1080
)

// AllowedMediaTypes: MIME yang diterima Media Intake.
// Hanya JPEG, PNG, GIF, MP4, dan MOV (QuickTime).
var AllowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// IsAllowedMediaType cek MIME terhadap allow-list (abaikan parameter ;charset dsb).
func IsAllowedMediaType(mimeType string) bool {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return AllowedMediaTypes[mt]
}

// ExtFromMimeType: ekstensi file disimpan dari subtype MIME (image/jpeg → "jpeg").
// Nama file asli dari client tidak pernah dipakai.
func ExtFromMimeType(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if i := strings.Index(mt, "/"); i >= 0 {
		return mt[i+1:]
	}
	return mt
}

// IsImageMediaType true untuk subtipe image (kandidat normalisasi foto).
func IsImageMediaType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}
