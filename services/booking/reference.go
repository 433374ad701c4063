package booking

import (
	"fmt"
	"math/rand"
	"time"
)

const referenceSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReference generates a booking reference like "SF1721476301000X7K2".
func NewReference(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceSuffixChars[rand.Intn(len(referenceSuffixChars))]
	}
	return fmt.Sprintf("SF%d%s", now.UnixMilli(), suffix)
}
