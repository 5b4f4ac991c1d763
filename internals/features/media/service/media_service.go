// file: internals/features/media/service/media_service.go
package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"mediaku_backend/internals/constants"
)

/* ==============================
   Typed rejection (client error)
============================== */

// RejectError: upload ditolak karena input client (MIME di luar allow-list,
// kebanyakan file, kegedean). Dibedakan dari fault server.
type RejectError struct {
	Reason string
}

func (e *RejectError) Error() string { return e.Reason }

func reject(format string, args ...interface{}) error {
	return &RejectError{Reason: fmt.Sprintf(format, args...)}
}

func IsReject(err error) bool {
	var re *RejectError
	return errors.As(err, &re)
}

/* ==============================
   Media service
============================== */

type StoredFile struct {
	Filename string // nama file tersimpan (uuid.ext)
	Path     string // path absolut/relatif di upload dir
	MimeType string
}

type MediaService struct {
	UploadDir string
}

func NewMediaService(uploadDir string) (*MediaService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat upload dir: %w", err)
	}
	return &MediaService{UploadDir: uploadDir}, nil
}

// CollectMediaFile ambil file dari field "media"; lebih dari satu file
// (di field manapun) ditolak. Tanpa file → (nil, nil), biar orchestrator
// yang memutuskan apakah file memang wajib untuk type post tsb.
func (s *MediaService) CollectMediaFile(form *multipart.Form) (*multipart.FileHeader, error) {
	if form == nil || form.File == nil {
		return nil, nil
	}
	total := 0
	for _, fhs := range form.File {
		total += len(fhs)
	}
	if total > constants.MaxUploadFiles {
		return nil, reject("terlalu banyak file: maksimal %d per request", constants.MaxUploadFiles)
	}
	if fhs, ok := form.File["media"]; ok && len(fhs) > 0 {
		return fhs[0], nil
	}
	return nil, nil
}

// Intake: enforce allow-list + batas ukuran, lalu simpan dengan nama unik
// (uuid + ekstensi dari subtype MIME). Nama file asli client tidak dipakai.
func (s *MediaService) Intake(fh *multipart.FileHeader) (*StoredFile, error) {
	if fh.Size > constants.MaxUploadSize {
		return nil, reject("ukuran file melebihi batas %d MiB", constants.MaxUploadSize/(1024*1024))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		// Header kosong → sniff dari isi
		mt, err := mimetype.DetectReader(src)
		if err != nil {
			return nil, fmt.Errorf("gagal deteksi tipe file: %w", err)
		}
		mimeType = mt.String()
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("gagal rewind file upload: %w", err)
		}
	}

	if !constants.IsAllowedMediaType(mimeType) {
		return nil, reject("tipe file tidak valid: %s. Hanya JPEG, PNG, GIF, MP4, dan MOV yang diizinkan", mimeType)
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), constants.ExtFromMimeType(mimeType))
	dstPath := filepath.Join(s.UploadDir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat file tujuan: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// copy setengah jalan → bersihkan, jangan tinggalkan file korup
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("gagal menyimpan file upload: %w", err)
	}

	return &StoredFile{
		Filename: filename,
		Path:     dstPath,
		MimeType: mimeType,
	}, nil
}

// RemoveStored hapus file di upload dir (dipakai cleanup saat create gagal).
func (s *MediaService) RemoveStored(filename string) error {
	return os.Remove(filepath.Join(s.UploadDir, filename))
}

// CleanupBestEffort: gagal hapus hanya dicatat, tidak mengubah outcome.
func (s *MediaService) CleanupBestEffort(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("[MEDIA] gagal hapus file sementara %s: %v", path, err)
	}
}
