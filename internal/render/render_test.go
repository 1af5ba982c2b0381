package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer(filepath.Join("testdata", "note.xsl"))

	out, err := r.Render([]byte(`<note><title>hello</title></note>`))
	require.NoError(t, err)
	assert.Contains(t, string(out), "rendered: hello")
}

func TestRenderMissingStylesheet(t *testing.T) {
	r := NewRenderer(filepath.Join("testdata", "missing.xsl"))

	out, err := r.Render([]byte(`<note/>`))
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestRenderMalformedDocument(t *testing.T) {
	r := NewRenderer(filepath.Join("testdata", "note.xsl"))

	out, err := r.Render([]byte(`<note><title>unclosed`))
	assert.Error(t, err)
	assert.Nil(t, out)
}
