// file: internals/features/posts/service/post_service.go
package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	mediaService "mediaku_backend/internals/features/media/service"
	dto "mediaku_backend/internals/features/posts/dto"
	model "mediaku_backend/internals/features/posts/model"
	repository "mediaku_backend/internals/features/posts/repository"
)

/* ==============================
   Service (ingestion orchestrator)
============================== */

// PostService menjalankan pipeline create: validasi → cek pasangan
// type/media → intake → normalize (foto) → persist. Semua dependency
// dioper eksplisit dari main.
type PostService struct {
	Repo      *repository.PostRepository
	Media     *mediaService.MediaService
	Validator *validator.Validate
}

func NewPostService(repo *repository.PostRepository, media *mediaService.MediaService) *PostService {
	return &PostService{
		Repo:      repo,
		Media:     media,
		Validator: validator.New(),
	}
}

// Create: satu outcome terminal — id post baru, atau ServiceError spesifik.
// Urutan transisi dijaga persis: Validated → Intaken → Normalized → Persisted.
func (s *PostService) Create(ctx context.Context, req *dto.CreatePostRequest, form *multipart.Form) (string, error) {
	// 1) Validasi shape (semua pelanggaran dikumpulkan jadi satu pesan)
	if err := s.Validator.Struct(req); err != nil {
		return "", errValidation(dto.FormatValidationError(err))
	}
	postType := model.PostType(req.PostType)

	// 2) Aturan pasangan type ↔ content/media
	if postType == model.PostTypeText && (req.Content == nil || strings.TrimSpace(*req.Content) == "") {
		return "", errValidation("Content required for text posts")
	}

	fileHeader, err := s.Media.CollectMediaFile(form)
	if err != nil {
		return "", errMediaRejected(err.Error())
	}
	if postType.RequiresMedia() && fileHeader == nil {
		return "", errValidation("File is required for photo or video posts")
	}

	// 3) id di-assign sebelum file I/O supaya file yatim bisa dikorelasikan
	id := uuid.New().String()

	var mediaPath *string
	if fileHeader != nil {
		stored, err := s.Media.Intake(fileHeader)
		if err != nil {
			if mediaService.IsReject(err) {
				return "", errMediaRejected(err.Error())
			}
			return "", errProcessing("gagal menyimpan file upload", err)
		}

		if postType == model.PostTypePhoto {
			normalized, err := s.Media.Normalize(stored)
			if err != nil {
				// file sementara boleh tertinggal; yang penting tidak ada row yatim
				return "", errProcessing("Image processing failed", err)
			}
			mediaPath = &normalized
		} else {
			mediaPath = &stored.Filename
		}
	}

	// 4) Persist
	m := req.ToModel(id, mediaPath)
	if err := s.Repo.Create(ctx, m); err != nil {
		// row gagal → jangan tinggalkan file hasil pipeline (best-effort)
		if mediaPath != nil {
			if rmErr := s.Media.RemoveStored(*mediaPath); rmErr != nil {
				log.Printf("[POSTS] gagal bersihkan file %s setelah store fault: %v", *mediaPath, rmErr)
			}
		}
		return "", errStore(err)
	}

	log.Printf("[POSTS] post dibuat id=%s type=%s", id, postType)
	return id, nil
}

func (s *PostService) List(ctx context.Context, page, perPage int) ([]model.PostModel, int64, error) {
	rows, total, err := s.Repo.List(ctx, page, perPage)
	if err != nil {
		return nil, 0, errStore(err)
	}
	return rows, total, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*model.PostModel, error) {
	row, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errNotFound()
		}
		return nil, errStore(err)
	}
	return row, nil
}

// Update hanya menyentuh content & tags; type dan media_path immutable.
// "Tidak ada row terpengaruh" = not found, bukan store fault.
func (s *PostService) Update(ctx context.Context, id string, req *dto.UpdatePostRequest) error {
	if err := s.Validator.Struct(req); err != nil {
		return errValidation(dto.FormatValidationError(err))
	}
	if !req.HasUpdates() {
		return errValidation("No updates provided")
	}

	affected, err := s.Repo.Update(ctx, id, req.ToUpdates())
	if err != nil {
		return errStore(err)
	}
	if affected == 0 {
		return errNotFound()
	}
	log.Printf("[POSTS] post diupdate id=%s", id)
	return nil
}

// Delete hapus row; file media sengaja tidak ikut dihapus (perilaku lama,
// lihat DESIGN.md).
func (s *PostService) Delete(ctx context.Context, id string) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return errStore(err)
	}
	if affected == 0 {
		return errNotFound()
	}
	log.Printf("[POSTS] post dihapus id=%s", id)
	return nil
}
