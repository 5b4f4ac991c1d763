package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	mediaService "mediaku_backend/internals/features/media/service"
	model "mediaku_backend/internals/features/posts/model"
	"mediaku_backend/internals/features/posts/repository"
	service "mediaku_backend/internals/features/posts/service"
	postRoute "mediaku_backend/internals/features/posts/route"
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "posts.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.PostModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uploadDir := filepath.Join(dir, "uploads")
	media, err := mediaService.NewMediaService(uploadDir)
	if err != nil {
		t.Fatalf("media service: %v", err)
	}

	svc := service.NewPostService(repository.NewPostRepository(db), media)

	app := fiber.New()
	postRoute.PostRoutes(app, svc)

	return &testEnv{app: app, db: db, uploadDir: uploadDir}
}

func (e *testEnv) countRows(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&model.PostModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func doMultipart(t *testing.T, app *fiber.App, fields map[string]string, filename, contentType string, data []byte) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="media"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPost, "/posts/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, env
}

func createdID(t *testing.T, env envelope) string {
	t.Helper()
	var d struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &d); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if d.ID == "" {
		t.Fatal("response create tanpa id")
	}
	return d.ID
}

type postBody struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Content   *string `json:"content"`
	MediaPath *string `json:"media_path"`
	MediaURL  *string `json:"media_url"`
	Tags      *string `json:"tags"`
}

func fetchPost(t *testing.T, app *fiber.App, id string) postBody {
	t.Helper()
	code, env := doJSON(t, app, http.MethodGet, "/posts/"+id, nil)
	if code != http.StatusOK {
		t.Fatalf("GET /posts/%s = %d", id, code)
	}
	var p postBody
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	return p
}

func pngData(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCreateTextPostRoundTrip(t *testing.T) {
	e := newTestEnv(t)

	code, env := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{
		"type":    "text",
		"content": "hello",
		"tags":    []string{"a", "b"},
	})
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", code, env.Message)
	}
	id := createdID(t, env)

	p := fetchPost(t, e.app, id)
	if p.Type != "text" {
		t.Errorf("type = %s", p.Type)
	}
	if p.Content == nil || *p.Content != "hello" {
		t.Errorf("content = %v", p.Content)
	}
	if p.Tags == nil || *p.Tags != "a,b" {
		t.Errorf("tags = %v, want \"a,b\"", p.Tags)
	}
	if p.MediaPath != nil {
		t.Errorf("media_path = %v, want null", p.MediaPath)
	}
	if p.MediaURL != nil {
		t.Errorf("media_url = %v, want null", p.MediaURL)
	}
}

func TestCreateRejectsInvalidType(t *testing.T) {
	e := newTestEnv(t)

	code, env := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{"type": "invalid"})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if !strings.Contains(strings.ToLower(env.Message), "type") {
		t.Errorf("pesan harus menyebut type: %q", env.Message)
	}
	if e.countRows(t) != 0 {
		t.Error("tidak boleh ada row")
	}
}

func TestCreateTextWithoutContent(t *testing.T) {
	e := newTestEnv(t)

	code, _ := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{"type": "text"})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if e.countRows(t) != 0 {
		t.Error("tidak boleh ada row")
	}
}

func TestCreatePhotoWithoutFile(t *testing.T) {
	e := newTestEnv(t)

	code, _ := doMultipart(t, e.app, map[string]string{"type": "photo"}, "", "", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if e.countRows(t) != 0 {
		t.Error("tidak boleh ada row")
	}
}

func TestCreatePhotoWithTxtAttachment(t *testing.T) {
	e := newTestEnv(t)

	code, env := doMultipart(t, e.app, map[string]string{"type": "photo"},
		"notes.txt", "text/plain", []byte("bukan gambar"))
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if !strings.Contains(env.Message, "tipe file") {
		t.Errorf("pesan harus menyebut tipe file: %q", env.Message)
	}
	if e.countRows(t) != 0 {
		t.Error("tidak boleh ada row")
	}
	entries, _ := os.ReadDir(e.uploadDir)
	if len(entries) != 0 {
		t.Errorf("upload dir harus kosong, isi %d file", len(entries))
	}
}

func TestCreatePhotoNormalizesImage(t *testing.T) {
	e := newTestEnv(t)

	code, env := doMultipart(t, e.app, map[string]string{"type": "photo"},
		"big.png", "image/png", pngData(t, 2000, 800))
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", code, env.Message)
	}
	id := createdID(t, env)

	p := fetchPost(t, e.app, id)
	if p.MediaPath == nil || !strings.HasSuffix(*p.MediaPath, ".jpg") {
		t.Fatalf("media_path = %v, want *.jpg", p.MediaPath)
	}
	if p.MediaURL == nil || *p.MediaURL != "/media/"+*p.MediaPath {
		t.Errorf("media_url = %v", p.MediaURL)
	}

	img, err := imaging.Open(filepath.Join(e.uploadDir, *p.MediaPath))
	if err != nil {
		t.Fatalf("open hasil normalisasi: %v", err)
	}
	if w := img.Bounds().Dx(); w > 1080 {
		t.Errorf("lebar hasil = %d, want ≤ 1080", w)
	}

	// hanya hasil normalisasi yang tertinggal; upload mentah sudah dihapus
	entries, _ := os.ReadDir(e.uploadDir)
	if len(entries) != 1 {
		t.Errorf("upload dir berisi %d file, want 1", len(entries))
	}
}

func TestCreateVideoKeepsIntakeFilename(t *testing.T) {
	e := newTestEnv(t)

	code, env := doMultipart(t, e.app, map[string]string{"type": "video"},
		"clip.mp4", "video/mp4", []byte("data video palsu"))
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", code, env.Message)
	}
	id := createdID(t, env)

	p := fetchPost(t, e.app, id)
	if p.MediaPath == nil || !strings.HasSuffix(*p.MediaPath, ".mp4") {
		t.Fatalf("media_path = %v, want *.mp4", p.MediaPath)
	}
	if _, err := os.Stat(filepath.Join(e.uploadDir, *p.MediaPath)); err != nil {
		t.Errorf("file video tidak ada: %v", err)
	}
}

func TestUpdatePost(t *testing.T) {
	e := newTestEnv(t)

	_, env := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{
		"type": "text", "content": "Original",
	})
	id := createdID(t, env)

	code, _ := doJSON(t, e.app, http.MethodPut, "/posts/"+id, map[string]any{
		"content": "Updated", "tags": []string{"new"},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	p := fetchPost(t, e.app, id)
	if p.Content == nil || *p.Content != "Updated" {
		t.Errorf("content = %v", p.Content)
	}
	if p.Tags == nil || *p.Tags != "new" {
		t.Errorf("tags = %v", p.Tags)
	}
	if p.Type != "text" {
		t.Errorf("type berubah: %s", p.Type)
	}
}

func TestUpdateWithoutFields(t *testing.T) {
	e := newTestEnv(t)

	_, env := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{
		"type": "text", "content": "x",
	})
	id := createdID(t, env)

	code, _ := doJSON(t, e.app, http.MethodPut, "/posts/"+id, map[string]any{})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}

func TestUpdateMissingID(t *testing.T) {
	e := newTestEnv(t)

	code, _ := doJSON(t, e.app, http.MethodPut, "/posts/tidak-ada", map[string]any{"content": "x"})
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if e.countRows(t) != 0 {
		t.Error("store harus tetap kosong")
	}
}

func TestDeletePost(t *testing.T) {
	e := newTestEnv(t)

	_, env := doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{
		"type": "text", "content": "To delete",
	})
	id := createdID(t, env)

	code, _ := doJSON(t, e.app, http.MethodDelete, "/posts/"+id, nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	code, _ = doJSON(t, e.app, http.MethodGet, "/posts/"+id, nil)
	if code != http.StatusNotFound {
		t.Fatalf("GET setelah delete = %d, want 404", code)
	}
	// delete id yang sudah tidak ada → 404, bukan 500
	code, _ = doJSON(t, e.app, http.MethodDelete, "/posts/"+id, nil)
	if code != http.StatusNotFound {
		t.Fatalf("delete kedua = %d, want 404", code)
	}
}

func TestListPagination(t *testing.T) {
	e := newTestEnv(t)

	for i := 0; i < 5; i++ {
		doJSON(t, e.app, http.MethodPost, "/posts/", map[string]any{
			"type": "text", "content": fmt.Sprintf("post %d", i),
		})
	}

	req, _ := http.NewRequest(http.MethodGet, "/posts/?page=1&limit=2", nil)
	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Data       []postBody `json:"data"`
		Pagination struct {
			Page       int   `json:"page"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 2 {
		t.Errorf("len(data) = %d, want 2", len(body.Data))
	}
	if body.Pagination.Total != 5 || body.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", body.Pagination)
	}
}
