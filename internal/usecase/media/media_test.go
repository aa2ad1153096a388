package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/dto"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/logger"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type fakeObjectRepo struct {
	putKeys []string
	putErr  error

	deleted []string

	getBody io.ReadCloser
	getErr  error
}

func (f *fakeObjectRepo) Put(_ context.Context, key string, _ io.Reader, _ string, _ int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeObjectRepo) PresignPut(_ context.Context, key string, _ string, _ time.Duration) (string, error) {
	return "https://bucket.example.com/presigned/" + key, nil
}

func (f *fakeObjectRepo) Get(_ context.Context, _ string) (io.ReadCloser, error) {
	return f.getBody, f.getErr
}

func (f *fakeObjectRepo) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeMediaRepo struct {
	created   []*entity.MediaItem
	createErr error

	byID map[uuid.UUID]*entity.MediaItem
}

func (f *fakeMediaRepo) Create(_ context.Context, item *entity.MediaItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, item)
	return nil
}

func (f *fakeMediaRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MediaItem, error) {
	item, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("fakeMediaRepo - GetByID: %w", errs.ErrRecordNotFound)
	}
	return item, nil
}

func (f *fakeMediaRepo) List(_ context.Context, _ dto.ListQuery, _ *entity.MediaItem) ([]*entity.MediaItem, error) {
	return nil, nil
}

type fakeTagRepo struct {
	byLower   map[string]*entity.Tag
	upsertErr error

	links [][2]uuid.UUID
}

func (f *fakeTagRepo) Upsert(_ context.Context, candidate *entity.Tag) (*entity.Tag, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if f.byLower == nil {
		f.byLower = map[string]*entity.Tag{}
	}

	key := strings.ToLower(candidate.Name)
	if existing, ok := f.byLower[key]; ok {
		copied := *existing
		return &copied, nil
	}

	stored := *candidate
	f.byLower[key] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeTagRepo) Link(_ context.Context, mediaID, tagID uuid.UUID) error {
	f.links = append(f.links, [2]uuid.UUID{mediaID, tagID})
	return nil
}

func (f *fakeTagRepo) ListForMedia(_ context.Context, _ uuid.UUID) ([]entity.Tag, error) {
	return nil, nil
}

func (f *fakeTagRepo) ListWithUsage(_ context.Context) ([]entity.TagUsage, error) {
	return nil, nil
}

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}

func newTestUseCase(obj *fakeObjectRepo, mr *fakeMediaRepo, tr *fakeTagRepo) *MediaUseCase {
	return New(obj, mr, tr, fakeTransactor{}, "https://cdn.example.com", 10*time.Minute, logger.New("error"))
}

func TestUploadNewMedia(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{}
	tr := &fakeTagRepo{}
	uc := newTestUseCase(obj, mr, tr)

	got, err := uc.UploadNewMedia(
		context.Background(),
		strings.NewReader("abc"),
		"Mi Foto Final.JPG",
		"image/jpeg",
		3,
		[]string{"  Fiesta ", "Novios"},
	)
	if err != nil {
		t.Fatalf("UploadNewMedia() error = %v", err)
	}

	if len(obj.putKeys) != 1 {
		t.Fatalf("object puts = %d, want 1", len(obj.putKeys))
	}
	key := obj.putKeys[0]
	if !strings.HasPrefix(key, "uploads/") || !strings.HasSuffix(key, ".jpg") {
		t.Errorf("storage key = %q, want uploads/.../*.jpg", key)
	}

	if len(mr.created) != 1 {
		t.Fatalf("media rows = %d, want 1", len(mr.created))
	}
	item := mr.created[0]

	if item.Kind != entity.Photo {
		t.Errorf("kind = %q, want %q", item.Kind, entity.Photo)
	}
	if item.OriginalName != "mi_foto_final.jpg" {
		t.Errorf("original name = %q, want %q", item.OriginalName, "mi_foto_final.jpg")
	}
	if item.URL != "https://cdn.example.com/"+key {
		t.Errorf("url = %q, want public base + key", item.URL)
	}

	if len(got.Tags) != 2 || got.Tags[0].Name != "Fiesta" || got.Tags[1].Name != "Novios" {
		t.Errorf("resolved tags = %+v, want Fiesta, Novios", got.Tags)
	}
	if len(tr.links) != 2 {
		t.Fatalf("tag links = %d, want 2", len(tr.links))
	}
	for _, link := range tr.links {
		if link[0] != item.ID {
			t.Errorf("link media id = %s, want %s", link[0], item.ID)
		}
	}
}

func TestUploadNewMediaVideoKind(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{}
	uc := newTestUseCase(obj, mr, &fakeTagRepo{})

	got, err := uc.UploadNewMedia(context.Background(), strings.NewReader("x"), "clip.mov", "video/quicktime", 1, nil)
	if err != nil {
		t.Fatalf("UploadNewMedia() error = %v", err)
	}

	if got.Kind != entity.Video {
		t.Errorf("kind = %q, want %q", got.Kind, entity.Video)
	}
}

func TestUploadNewMediaRejectsBeforePersistence(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{}
	uc := newTestUseCase(obj, mr, &fakeTagRepo{})

	_, err := uc.UploadNewMedia(
		context.Background(),
		strings.NewReader("x"),
		"photo.jpg",
		"image/jpeg",
		1,
		[]string{strings.Repeat("x", 51)},
	)
	if !errors.Is(err, errs.ErrTagNameTooLong) {
		t.Fatalf("UploadNewMedia() error = %v, want %v", err, errs.ErrTagNameTooLong)
	}

	if len(obj.putKeys) != 0 {
		t.Errorf("object puts = %d, want 0 (no blob before validation)", len(obj.putKeys))
	}
	if len(mr.created) != 0 {
		t.Errorf("media rows = %d, want 0 (no row before validation)", len(mr.created))
	}
}

func TestUploadNewMediaCompensatesOnTransactionFailure(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{createErr: errors.New("insert failed")}
	uc := newTestUseCase(obj, mr, &fakeTagRepo{})

	_, err := uc.UploadNewMedia(context.Background(), strings.NewReader("x"), "photo.jpg", "image/jpeg", 1, nil)
	if err == nil {
		t.Fatal("UploadNewMedia() error = nil, want failure")
	}

	if len(obj.putKeys) != 1 || len(obj.deleted) != 1 || obj.deleted[0] != obj.putKeys[0] {
		t.Errorf("deleted = %v, want the written key %v removed", obj.deleted, obj.putKeys)
	}
}

func TestConfirmUpload(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{}
	tr := &fakeTagRepo{}
	uc := newTestUseCase(obj, mr, tr)

	fileID := uuid.New()
	got, err := uc.ConfirmUpload(context.Background(), dto.ConfirmUpload{
		FileID:       fileID,
		Key:          "uploads/2026/02/abc.mp4",
		PublicURL:    "https://cdn.example.com/uploads/2026/02/abc.mp4",
		OriginalName: "Primer Baile.MP4",
		ContentType:  "video/mp4",
		Size:         1024,
		Tags:         []string{"Fiesta"},
	})
	if err != nil {
		t.Fatalf("ConfirmUpload() error = %v", err)
	}

	// bytes were placed by the client; confirmation must not touch the bucket
	if len(obj.putKeys) != 0 {
		t.Errorf("object puts = %d, want 0", len(obj.putKeys))
	}

	if got.ID != fileID {
		t.Errorf("id = %s, want the presigned file id %s", got.ID, fileID)
	}
	if got.StorageKey != "uploads/2026/02/abc.mp4" {
		t.Errorf("storage key = %q, want the confirmed key", got.StorageKey)
	}
	if got.OriginalName != "primer_baile.mp4" {
		t.Errorf("original name = %q, want %q", got.OriginalName, "primer_baile.mp4")
	}
	if got.Kind != entity.Video {
		t.Errorf("kind = %q, want %q", got.Kind, entity.Video)
	}
	if len(tr.links) != 1 || tr.links[0][0] != fileID {
		t.Errorf("tag links = %v, want one link for %s", tr.links, fileID)
	}
}

func TestConfirmUploadKeepsClientBlobOnFailure(t *testing.T) {
	obj := &fakeObjectRepo{}
	mr := &fakeMediaRepo{createErr: errors.New("insert failed")}
	uc := newTestUseCase(obj, mr, &fakeTagRepo{})

	_, err := uc.ConfirmUpload(context.Background(), dto.ConfirmUpload{
		FileID:       uuid.New(),
		Key:          "uploads/2026/02/abc.jpg",
		PublicURL:    "https://cdn.example.com/uploads/2026/02/abc.jpg",
		OriginalName: "foto.jpg",
		ContentType:  "image/jpeg",
		Size:         10,
	})
	if err == nil {
		t.Fatal("ConfirmUpload() error = nil, want failure")
	}

	if len(obj.deleted) != 0 {
		t.Errorf("deleted = %v, want no deletion of a client-owned blob", obj.deleted)
	}
}

func TestPresignUpload(t *testing.T) {
	obj := &fakeObjectRepo{}
	uc := newTestUseCase(obj, &fakeMediaRepo{}, &fakeTagRepo{})

	got, err := uc.PresignUpload(context.Background(), "Video Boda.MOV", "video/quicktime", 2048)
	if err != nil {
		t.Fatalf("PresignUpload() error = %v", err)
	}

	wantKeySuffix := got.FileID.String() + ".mov"
	if !strings.HasPrefix(got.Key, "uploads/") || !strings.HasSuffix(got.Key, wantKeySuffix) {
		t.Errorf("key = %q, want uploads/.../%s", got.Key, wantKeySuffix)
	}
	if got.UploadURL != "https://bucket.example.com/presigned/"+got.Key {
		t.Errorf("upload url = %q, want the presigned url for the key", got.UploadURL)
	}
	if got.PublicURL != "https://cdn.example.com/"+got.Key {
		t.Errorf("public url = %q, want public base + key", got.PublicURL)
	}
}

func TestDownloadMedia(t *testing.T) {
	id := uuid.New()
	item := &entity.MediaItem{ID: id, StorageKey: "uploads/2026/02/x.jpg", ContentType: "image/jpeg"}

	obj := &fakeObjectRepo{getBody: io.NopCloser(strings.NewReader("bytes"))}
	mr := &fakeMediaRepo{byID: map[uuid.UUID]*entity.MediaItem{id: item}}
	uc := newTestUseCase(obj, mr, &fakeTagRepo{})

	gotItem, body, err := uc.DownloadMedia(context.Background(), id)
	if err != nil {
		t.Fatalf("DownloadMedia() error = %v", err)
	}
	defer body.Close()

	if gotItem.ID != id {
		t.Errorf("item id = %s, want %s", gotItem.ID, id)
	}

	b, _ := io.ReadAll(body)
	if string(b) != "bytes" {
		t.Errorf("body = %q, want %q", b, "bytes")
	}
}

func TestDownloadMediaUnknownID(t *testing.T) {
	uc := newTestUseCase(&fakeObjectRepo{}, &fakeMediaRepo{}, &fakeTagRepo{})

	_, _, err := uc.DownloadMedia(context.Background(), uuid.New())
	if !errors.Is(err, errs.ErrRecordNotFound) {
		t.Fatalf("DownloadMedia() error = %v, want %v", err, errs.ErrRecordNotFound)
	}
}
