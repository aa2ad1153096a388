package media

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saguier/boda-gallery/internal/entity"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	underscoreRuns      = regexp.MustCompile(`_+`)
)

// sanitizeFilename keeps [a-zA-Z0-9.-], turns everything else into a single
// underscore and lowercases the result.
func sanitizeFilename(filename string) string {
	s := unsafeFilenameChars.ReplaceAllString(filename, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")

	return strings.ToLower(s)
}

// fileExtension falls back to jpg when the name carries no usable extension.
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "jpg"
	}

	return strings.ToLower(filename[idx+1:])
}

// storageKey derives the year/month bucket layout: uploads/{yyyy}/{MM}/{id}.{ext}.
func storageKey(now time.Time, id uuid.UUID, filename string) string {
	return fmt.Sprintf("uploads/%04d/%02d/%s.%s", now.Year(), int(now.Month()), id, fileExtension(filename))
}

// normalizeTagNames trims every submitted name, drops blanks and rejects the
// whole batch if any name breaks the registry length rule. Order is kept and
// duplicates are left in - the composite link key absorbs them.
func normalizeTagNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > entity.MaxTagNameLen {
			return nil, errs.ErrTagNameTooLong
		}
		out = append(out, trimmed)
	}

	return out, nil
}

func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
