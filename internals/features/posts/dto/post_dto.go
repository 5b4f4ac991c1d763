// file: internals/features/posts/dto/post_dto.go
package dto

import (
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"

	model "mediaku_backend/internals/features/posts/model"
)

/* ==============================
   CREATE (POST /posts)
============================== */

type CreatePostRequest struct {
	PostType string   `json:"type" form:"type" validate:"required,oneof=text photo video"`
	Content  *string  `json:"content" form:"content" validate:"omitempty"`
	Tags     []string `json:"tags" form:"tags" validate:"omitempty,dive,required"`
}

// ToModel membangun record final. id & mediaPath di-assign orchestrator,
// tags di-join jadi satu kolom teks (urutan apa adanya).
func (r *CreatePostRequest) ToModel(id string, mediaPath *string) *model.PostModel {
	m := &model.PostModel{
		PostID:        id,
		PostType:      model.PostType(r.PostType),
		PostMediaPath: mediaPath,
	}
	if r.Content != nil {
		m.PostContent = r.Content
	}
	if joined := JoinTags(r.Tags); joined != nil {
		m.PostTags = joined
	}
	return m
}

/* ==============================
   UPDATE (PUT /posts/:id)
============================== */

type UpdatePostRequest struct {
	Content *string  `json:"content" form:"content" validate:"omitempty"`
	Tags    []string `json:"tags" form:"tags" validate:"omitempty,dive,required"`
}

// HasUpdates: minimal satu field harus dikirim.
func (r *UpdatePostRequest) HasUpdates() bool {
	return r.Content != nil || r.Tags != nil
}

// ToUpdates: kedua kolom selalu ditulis; field yang tidak dikirim → NULL.
// type & media_path tidak pernah ikut (immutable).
func (r *UpdatePostRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{
		"content": nil,
		"tags":    nil,
	}
	if r.Content != nil {
		updates["content"] = *r.Content
	}
	if joined := JoinTags(r.Tags); joined != nil {
		updates["tags"] = *joined
	}
	return updates
}

/* ==============================
   RESPONSE
============================== */

type PostResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Content   *string   `json:"content"`
	MediaPath *string   `json:"media_path"`
	MediaURL  *string   `json:"media_url"`
	Timestamp time.Time `json:"timestamp"`
	Tags      *string   `json:"tags"`
}

// FromModelPost: media_url diturunkan dari media_path (diserve dari /media).
func FromModelPost(m *model.PostModel) *PostResponse {
	resp := &PostResponse{
		ID:        m.PostID,
		Type:      string(m.PostType),
		Content:   m.PostContent,
		MediaPath: m.PostMediaPath,
		Timestamp: m.PostTimestamp,
		Tags:      m.PostTags,
	}
	if m.PostMediaPath != nil && *m.PostMediaPath != "" {
		u := "/media/" + *m.PostMediaPath
		resp.MediaURL = &u
	}
	return resp
}

func FromModelPosts(ms []model.PostModel) []*PostResponse {
	out := make([]*PostResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelPost(&ms[i]))
	}
	return out
}

/* ==============================
   Helpers
============================== */

func JoinTags(tags []string) *string {
	if tags == nil {
		return nil
	}
	joined := strings.Join(tags, ",")
	return &joined
}

// FormatValidationError gabungkan semua pelanggaran field jadi satu pesan
// (tidak fail-fast; caller dapat satu string gabungan).
func FormatValidationError(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, field+" must be one of ["+fe.Param()+"]")
		default:
			msgs = append(msgs, field+" is invalid ("+fe.Tag()+")")
		}
	}
	return strings.Join(msgs, ", ")
}
