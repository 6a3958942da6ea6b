package object

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"remberify-backend/internal/shared/util"
)

// BuildKey derives an owner-scoped storage key for a new blob. Keys look like
// users/<owner-hash>/<timestamp>_<id>_<name> or uploads/<timestamp>_<id>_<name>
// for anonymous uploads.
func BuildKey(ownerID, fileName string) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102_150405")
	id := uuid.NewString()[:8]
	base := fmt.Sprintf("%s_%s_%s", stamp, id, sanitized)

	if ownerID == "" {
		return "uploads/" + base, nil
	}
	return "users/" + util.HashOwnerKey(ownerID) + "/" + base, nil
}
