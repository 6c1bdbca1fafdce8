package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeatures(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseFeatures([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, ParseFeatures([]any{"a", "b"}))
	// Seeded docs sometimes hold the list as JSON text.
	assert.Equal(t, []string{"a", "b"}, ParseFeatures(`["a","b"]`))
	assert.Equal(t, []string{}, ParseFeatures("not json"))
	assert.Equal(t, []string{}, ParseFeatures(nil))
}
