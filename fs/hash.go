package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// hashLen is the number of hex digits kept from the content hash.
const hashLen = 12

// ContentHash returns a short xxhash digest of the file at path. If the file
// cannot be read, the path string itself is hashed instead.
func ContentHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return shortHash(xxhash.Sum64String(path))
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return shortHash(xxhash.Sum64String(path))
	}
	return shortHash(h.Sum64())
}

func shortHash(sum uint64) string {
	return fmt.Sprintf("%016x", sum)[:hashLen]
}
