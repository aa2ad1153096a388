package access

import (
	"strings"

	"github.com/saguier/boda-gallery/pkg/types/errs"
)

// AccessUseCase is the shared single-secret gate. This is deliberately not
// per-user auth: one code for every guest, compared ignoring case and
// surrounding whitespace.
type AccessUseCase struct {
	code string
}

func New(code string) *AccessUseCase {
	return &AccessUseCase{code: code}
}

func (uc *AccessUseCase) Validate(submitted string) error {
	if strings.TrimSpace(uc.code) == "" {
		return errs.ErrCodeNotConfigured
	}

	if normalize(submitted) != normalize(uc.code) {
		return errs.ErrInvalidCode
	}

	return nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
