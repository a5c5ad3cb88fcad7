package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEmployeeID(t *testing.T) {
	pattern := regexp.MustCompile(`^UI[A-Z0-9]{7}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateEmployeeID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}

	// 100 draws from a 36^7 space colliding down to a handful would mean a
	// broken generator.
	assert.Greater(t, len(seen), 90)
}
