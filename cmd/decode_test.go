package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

func TestDecodeCommand(t *testing.T) {
	t.Run("json spans", func(t *testing.T) {
		out, err := execute(t, "decode", "王安石至京", "--tags", "B-PER,I-PER,I-PER,O,B-LOC")
		require.NoError(t, err)

		var spans []annotation.Span
		require.NoError(t, json.Unmarshal([]byte(out), &spans))
		require.Len(t, spans, 2)
		assert.Equal(t, "王安石", spans[0].Text)
		assert.Equal(t, "PER", spans[0].Tag)
		assert.NotEmpty(t, spans[0].Color)
		assert.Equal(t, 4, spans[1].Start)
		assert.Equal(t, 5, spans[1].End)
	})

	// --markup keeps its value on the shared root command, so this case
	// runs after the JSON one
	t.Run("markup", func(t *testing.T) {
		out, err := execute(t, "decode", "王安石至京", "--tags", "B-PER,I-PER,I-PER,O,B-LOC", "--markup")
		require.NoError(t, err)
		assert.Equal(t, "<Person>王安石</Person>至<Location>京</Location>\n", out)
	})
}
