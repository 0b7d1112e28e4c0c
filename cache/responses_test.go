package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponsesWithoutBackendAlwaysMiss(t *testing.T) {
	for name, c := range map[string]*Responses{
		"nil":        nil,
		"no backend": NewResponses(nil),
	} {
		t.Run(name, func(t *testing.T) {
			c.Set(ClothingListKey, []byte(`[]`), time.Minute)
			c.Delete(ClothingListKey, OutfitsListKey)

			body, ok := c.Get(ClothingListKey)
			assert.False(t, ok)
			assert.Nil(t, body)
		})
	}
}
