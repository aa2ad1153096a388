package media

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "photo.jpg",
			expected: "photo.jpg",
		},
		{
			name:     "uppercase is lowered",
			input:    "IMG_1234.JPG",
			expected: "img_1234.jpg",
		},
		{
			name:     "spaces and symbols become underscores",
			input:    "mi foto (1)!.png",
			expected: "mi_foto_1_.png",
		},
		{
			name:     "accented characters",
			input:    "cumpleaños.jpg",
			expected: "cumplea_os.jpg",
		},
		{
			name:     "underscore runs collapse",
			input:    "a  -  b.mp4",
			expected: "a_-_b.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"photo.jpg", "jpg"},
		{"clip.MOV", "mov"},
		{"archive.tar.gz", "gz"},
		{"noextension", "jpg"},
		{"trailingdot.", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := fileExtension(tt.input)
			if got != tt.expected {
				t.Errorf("fileExtension(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStorageKey(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, time.February, 7, 18, 30, 0, 0, time.UTC)

	got := storageKey(now, id, "Fiesta Final.MP4")
	want := fmt.Sprintf("uploads/2026/02/%s.mp4", id)

	if got != want {
		t.Errorf("storageKey() = %q, want %q", got, want)
	}
}

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
		wantErr  error
	}{
		{
			name:     "trims and keeps order",
			input:    []string{"  Fiesta ", "Novios"},
			expected: []string{"Fiesta", "Novios"},
		},
		{
			name:     "blank names are dropped",
			input:    []string{"", "   ", "Familia"},
			expected: []string{"Familia"},
		},
		{
			name:     "duplicates are kept",
			input:    []string{"Fiesta", "Fiesta"},
			expected: []string{"Fiesta", "Fiesta"},
		},
		{
			name:    "over-long name rejects the batch",
			input:   []string{"Fiesta", strings.Repeat("x", 51)},
			wantErr: errs.ErrTagNameTooLong,
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeTagNames(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("normalizeTagNames() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("normalizeTagNames() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("normalizeTagNames() = %v, want %v", got, tt.expected)
			}
		})
	}
}
