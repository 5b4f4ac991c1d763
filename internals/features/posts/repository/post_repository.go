// file: internals/features/posts/repository/post_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "mediaku_backend/internals/features/posts/model"
)

// ErrPostNotFound: id tidak ada — dibedakan dari store fault.
var ErrPostNotFound = errors.New("post tidak ditemukan")

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

/* ==============================
   Repository
============================== */

// PostRepository: CRUD atomik per-baris di atas handle gorm yang dioper
// eksplisit dari main (bukan global).
type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

// Create insert satu row baru. Pelanggaran PK (id duplikat) muncul sebagai
// store fault biasa, bukan outcome conflict tersendiri.
func (r *PostRepository) Create(ctx context.Context, m *model.PostModel) error {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("gagal insert post: %w", err)
	}
	return nil
}

// List: urut timestamp DESC (terbaru dulu), tiebreak id DESC supaya paginasi
// stabil. page di-clamp ≥1, perPage di-clamp ke [1,100].
func (r *PostRepository) List(ctx context.Context, page, perPage int) ([]model.PostModel, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	offset := (page - 1) * perPage

	var total int64
	if err := r.DB.WithContext(ctx).Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("gagal hitung post: %w", err)
	}

	var rows []model.PostModel
	if err := r.DB.WithContext(ctx).
		Order("timestamp DESC").Order("id DESC").
		Limit(perPage).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("gagal ambil daftar post: %w", err)
	}
	return rows, total, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.PostModel, error) {
	var row model.PostModel
	if err := r.DB.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("gagal ambil post: %w", err)
	}
	return &row, nil
}

// Update menulis persis kolom content & tags; mengembalikan jumlah row
// terpengaruh supaya caller bisa deteksi "id tidak ada" sebagai 0 row.
func (r *PostRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return 0, fmt.Errorf("gagal update post: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete hapus row-nya saja; file media TIDAK ikut dihapus (lihat DESIGN.md).
func (r *PostRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("gagal hapus post: %w", res.Error)
	}
	return res.RowsAffected, nil
}
