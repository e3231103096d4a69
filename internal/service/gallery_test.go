package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/blastmusic247/blast-gear-full/internal/dto"
	"github.com/blastmusic247/blast-gear-full/internal/repository"

	"gorm.io/gorm"
)

func newGalleryService(t *testing.T) GalleryService {
	t.Helper()
	repo := repository.NewGalleryRepository(newTestDB(t))
	return NewGalleryService(repo, NewUploadService(t.TempDir()))
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestGalleryListSortedByDisplayOrder(t *testing.T) {
	ctx := context.Background()
	svc := newGalleryService(t)

	for _, req := range []dto.GalleryImageCreateRequest{
		{URL: "/uploads/second.jpg", SortOrder: 2},
		{URL: "/uploads/first.jpg", SortOrder: 1},
	} {
		if _, err := svc.Create(ctx, &req); err != nil {
			t.Fatal(err)
		}
	}

	images, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if images[0].URL != "/uploads/first.jpg" {
		t.Errorf("first image = %q, want /uploads/first.jpg", images[0].URL)
	}
}

func TestGalleryPatch(t *testing.T) {
	ctx := context.Background()
	svc := newGalleryService(t)

	created, err := svc.Create(ctx, &dto.GalleryImageCreateRequest{
		URL: "/uploads/pic.jpg",
		Alt: "old alt",
	})
	if err != nil {
		t.Fatal(err)
	}

	patched, err := svc.Patch(ctx, created.ID, &dto.GalleryImagePatch{
		Alt: strPtr("new alt"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if patched.Alt != "new alt" {
		t.Errorf("alt = %q, want new alt", patched.Alt)
	}
	if patched.URL != "/uploads/pic.jpg" {
		t.Errorf("url = %q, should be untouched", patched.URL)
	}
}

func TestGalleryDeleteMissing(t *testing.T) {
	svc := newGalleryService(t)

	if err := svc.Delete(context.Background(), "no-such-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want record not found", err)
	}
}

func TestBulkUploadCollectsPerFileErrors(t *testing.T) {
	ctx := context.Background()
	svc := newGalleryService(t)

	// existing image so new uploads continue the display sequence
	if _, err := svc.Create(ctx, &dto.GalleryImageCreateRequest{
		URL:       "/uploads/existing.jpg",
		SortOrder: 3,
	}); err != nil {
		t.Fatal(err)
	}

	files := []UploadedFile{
		{Filename: "good.png", ContentType: "image/png", Data: pngBytes(t)},
		{Filename: "notes.txt", ContentType: "text/plain", Data: []byte("not an image")},
	}

	result, err := svc.BulkUpload(ctx, files, "summer drop")
	if err != nil {
		t.Fatal(err)
	}

	if result.Added != 1 {
		t.Errorf("added = %d, want 1", result.Added)
	}
	if len(result.Errors) != 1 {
		t.Errorf("errors = %v, want one entry for notes.txt", result.Errors)
	}
	if len(result.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(result.Images))
	}
	if result.Images[0].SortOrder != 4 {
		t.Errorf("sortOrder = %d, want 4 (after existing max 3)", result.Images[0].SortOrder)
	}
	if result.Images[0].Alt != "summer drop" {
		t.Errorf("alt = %q, want default alt", result.Images[0].Alt)
	}
}

func TestBulkUploadRejectsTooManyFiles(t *testing.T) {
	svc := newGalleryService(t)

	files := make([]UploadedFile, 11)
	for i := range files {
		files[i] = UploadedFile{Filename: "f.png", ContentType: "image/png", Data: []byte{}}
	}

	if _, err := svc.BulkUpload(context.Background(), files, ""); !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("err = %v, want ErrTooManyFiles", err)
	}
}

func TestUploadRejectsOversizeAndBadType(t *testing.T) {
	uploads := NewUploadService(t.TempDir())

	if _, err := uploads.SaveProductImage("application/pdf", []byte("%PDF")); !errors.Is(err, ErrBadFileType) {
		t.Errorf("bad type: err = %v, want ErrBadFileType", err)
	}

	big := make([]byte, MaxUploadBytes+1)
	if _, err := uploads.SaveProductImage("image/png", big); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("oversize: err = %v, want ErrFileTooLarge", err)
	}

	// gif is allowed for gallery uploads but not product images
	if _, err := uploads.SaveProductImage("image/gif", []byte("GIF89a")); !errors.Is(err, ErrBadFileType) {
		t.Errorf("gif product image: err = %v, want ErrBadFileType", err)
	}
}
