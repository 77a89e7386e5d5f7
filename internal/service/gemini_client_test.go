package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	t.Run("unfenced input passes through", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	})

	t.Run("fence with language tag", func(t *testing.T) {
		raw := "```json\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, stripCodeFence(raw))
	})

	t.Run("fence without language tag", func(t *testing.T) {
		raw := "```\n[1, 2]\n```"
		assert.Equal(t, `[1, 2]`, stripCodeFence(raw))
	})

	t.Run("payload on the opening fence line", func(t *testing.T) {
		raw := "```{\"a\": 1}```"
		assert.Equal(t, `{"a": 1}`, stripCodeFence(raw))
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		raw := "  \n```json\n{\"ok\": true}\n```  \n"
		assert.Equal(t, `{"ok": true}`, stripCodeFence(raw))
	})
}

func TestDecodeStructured(t *testing.T) {
	type payload struct {
		Status string  `json:"status"`
		Score  float64 `json:"score"`
	}

	t.Run("plain JSON", func(t *testing.T) {
		var out payload
		err := decodeStructured(`{"status":"approved","score":82}`, &out)
		require.NoError(t, err)
		assert.Equal(t, "approved", out.Status)
		assert.Equal(t, 82.0, out.Score)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		var out payload
		err := decodeStructured("```json\n{\"status\":\"rejected\",\"score\":40}\n```", &out)
		require.NoError(t, err)
		assert.Equal(t, "rejected", out.Status)
	})

	t.Run("non-JSON text is a malformed response", func(t *testing.T) {
		var out payload
		err := decodeStructured("I cannot grade this answer.", &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.Contains(t, err.Error(), "I cannot grade this answer.")
	})

	t.Run("error snippet is capped at 200 characters", func(t *testing.T) {
		long := "x"
		for len(long) < 500 {
			long += long
		}
		var out payload
		err := decodeStructured(long, &out)
		require.Error(t, err)
		assert.Less(t, len(err.Error()), 350)
	})
}
