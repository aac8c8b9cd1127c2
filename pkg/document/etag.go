package document

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// ETag fingerprints an edition by the inputs that determine its content.
func ETag(language, name string) string {
	sum := md5.Sum([]byte(language + name))
	return hex.EncodeToString(sum[:])
}

// DailyETag is ETag scoped to the UTC calendar day of now, so a cached edition
// stays valid until midnight UTC.
func DailyETag(language, name string, now time.Time) string {
	return ETag(language, name+now.UTC().Format(time.DateOnly))
}
