package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFieldsStripsIdentifiers(t *testing.T) {
	set := SetFields(map[string]interface{}{
		"id":    "64b0c0ffee",
		"_id":   "64b0c0ffee",
		"price": 150.0,
		"title": "Algebra basics",
	})

	assert.Len(t, set, 2)
	assert.Equal(t, 150.0, set["price"])
	assert.Equal(t, "Algebra basics", set["title"])
	assert.NotContains(t, set, "id")
	assert.NotContains(t, set, "_id")
}

func TestSetFieldsEmptyBody(t *testing.T) {
	assert.Empty(t, SetFields(map[string]interface{}{}))

	// An update that only echoes identifiers has nothing left to set.
	set := SetFields(map[string]interface{}{"id": "64b0c0ffee"})
	assert.Empty(t, set)
}
