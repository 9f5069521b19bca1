package gui

import (
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ParseSeed interprets the seed entry field. An empty entry means no
// seed (entropy-backed rolls). Numeric entries parse as the seed
// itself; anything else hashes to a stable non-negative seed, so the
// same text reproduces the same rolls across runs and platforms.
func ParseSeed(text string) (int64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}

	if seed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return seed, true
	}

	return int64(xxhash.Sum64String(trimmed) & math.MaxInt64), true
}
