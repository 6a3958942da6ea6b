package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxFileSize caps uploads at 10 MiB.
const maxFileSize = 10 << 20

// DefaultAllowedExts lists the upload extensions accepted by default.
var DefaultAllowedExts = []string{"pdf", "png", "jpg", "jpeg", "txt"}

// ValidationError means the input itself is malformed: wrong shape, size, or
// type. The caller's fault, not retryable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// ValidationResult reports the outcome of the pre-extraction gate.
type ValidationResult struct {
	Valid           bool
	Reason          string
	SizeBytes       int64
	KindDescription string
}

// ValidateFile is the hard gate that runs before extraction: existence,
// non-zero size, size cap, extension membership, and basic readability.
// Extraction is never attempted on a file that fails here.
func ValidateFile(path string, allowedExts []string) ValidationResult {
	if len(allowedExts) == 0 {
		allowedExts = DefaultAllowedExts
	}

	info, err := os.Stat(path)
	if err != nil {
		return ValidationResult{Valid: false, Reason: "file does not exist"}
	}

	size := info.Size()
	if size == 0 {
		return ValidationResult{Valid: false, Reason: "file is empty"}
	}
	if size > maxFileSize {
		return ValidationResult{
			Valid:  false,
			Reason: fmt.Sprintf("file too large: %.2fMB (max 10MB)", float64(size)/(1024*1024)),
		}
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !extAllowed(ext, allowedExts) {
		return ValidationResult{Valid: false, Reason: "file type not allowed: " + ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return ValidationResult{Valid: false, Reason: "file is not readable or corrupted"}
	}
	defer f.Close()
	var one [1]byte
	if _, err := io.ReadFull(f, one[:]); err != nil {
		return ValidationResult{Valid: false, Reason: "file is not readable or corrupted"}
	}

	return ValidationResult{
		Valid:           true,
		SizeBytes:       size,
		KindDescription: extDescription(ext),
	}
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimPrefix(a, "."), ext) {
			return true
		}
	}
	return false
}

func extDescription(ext string) string {
	switch ext {
	case "pdf":
		return "PDF document"
	case "png":
		return "PNG image"
	case "jpg", "jpeg":
		return "JPEG image"
	case "txt":
		return "Text file"
	default:
		return "Unknown file type"
	}
}
