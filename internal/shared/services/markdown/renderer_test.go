package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	t.Run("table", func(t *testing.T) {
		out, err := r.Render("| Ente | Stato |\n|---|---|\n| Rossi | bloccato |\n")
		require.NoError(t, err)
		assert.Contains(t, out, "<table>")
		assert.Contains(t, out, "<td>Rossi</td>")
	})

	t.Run("heading and emphasis", func(t *testing.T) {
		out, err := r.Render("## Scadenze\n\n**DURC** in scadenza")
		require.NoError(t, err)
		assert.Contains(t, out, "<h2>Scadenze</h2>")
		assert.Contains(t, out, "<strong>DURC</strong>")
	})

	t.Run("scripts are stripped", func(t *testing.T) {
		out, err := r.Render("ciao <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "ciao")
	})
}
