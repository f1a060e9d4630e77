// Package upload validates candidate RFP documents before any analysis work.
package upload

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// MaxUploadBytes is the size ceiling for a single RFP document.
const MaxUploadBytes = 10 << 20 // 10MB

// ErrRejected marks an upload that failed validation. The wrapped message
// is safe to surface to the user as the rejection reason.
var ErrRejected = errors.New("upload rejected")

// Info describes an accepted upload for display.
type Info struct {
	FileName  string
	PageCount int
	SizeBytes int64
}

// Validate checks the size ceiling and that the stream is a structurally
// valid PDF with at least one page. The stream is rewound to the start
// before returning, since the same bytes are read again downstream.
func Validate(rs io.ReadSeeker, size int64, fileName string) (Info, error) {
	if size > MaxUploadBytes {
		return Info{}, fmt.Errorf("%w: file too large (%.2fMB), maximum size is 10MB", ErrRejected, float64(size)/(1<<20))
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w: unable to read file", ErrRejected)
	}
	pages, err := api.PageCount(rs, model.NewDefaultConfiguration())
	if _, seekErr := rs.Seek(0, io.SeekStart); seekErr != nil {
		return Info{}, fmt.Errorf("%w: unable to rewind file", ErrRejected)
	}
	if err != nil {
		return Info{}, fmt.Errorf("%w: file is not a valid PDF or is corrupted", ErrRejected)
	}
	if pages == 0 {
		return Info{}, fmt.Errorf("%w: PDF appears to be empty (0 pages)", ErrRejected)
	}

	return Info{
		FileName:  fileName,
		PageCount: pages,
		SizeBytes: size,
	}, nil
}
