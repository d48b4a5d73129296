package component

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spots/pkg/errors"
	"github.com/go-drift/spots/pkg/graphics"
)

const sampleYAML = `
version: v1.2
components:
  - title: Featured
    kind: carousel
    layout:
      itemsPerRow: 2
      spacing: 8
      inset: {top: 10, left: 16, bottom: 10, right: 16}
    items:
      - {title: One, size: {width: 120, height: 80}}
      - {title: Two, kind: card, size: {width: 120, height: 80}}
  - kind: list
    header: {title: Header, size: {height: 44}}
    layout:
      spacing: 4
      lineSpacing: 12
    items:
      - title: Row
`

func TestDecodeYAML(t *testing.T) {
	components, err := Decode([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, components, 2)

	featured := components[0]
	assert.Equal(t, "carousel", featured.Kind)
	assert.Equal(t, 2, featured.Layout.ItemsPerRow)
	assert.Equal(t, 8.0, featured.Layout.ItemSpacing)
	assert.Equal(t, 8.0, featured.Layout.LineSpacing)
	assert.Equal(t, graphics.EdgeInsets{Top: 10, Left: 16, Bottom: 10, Right: 16}, featured.Layout.Inset)
	require.Len(t, featured.Items, 2)
	assert.Equal(t, 1, featured.Items[1].Index)
	assert.Equal(t, "card", featured.Items[1].Kind)

	list := components[1]
	assert.Equal(t, 4.0, list.Layout.ItemSpacing)
	assert.Equal(t, 12.0, list.Layout.LineSpacing, "explicit lineSpacing wins over shorthand")
	require.NotNil(t, list.Header)
	assert.Equal(t, 44.0, list.Header.Size.Height)
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{"components":[{"kind":"grid","layout":{"itemsPerRow":3},"items":[{"title":"a"},{"title":"b"}]}]}`)
	components, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, 3, components[0].Layout.ItemsPerRow)
	assert.Equal(t, 1, components[0].Items[1].Index)
}

func TestDecodeVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"empty", "", false},
		{"major only", "v1", false},
		{"without prefix", "1.4.0", false},
		{"future major", "v2.0.0", true},
		{"garbage", "latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte("version: \"" + tt.version + "\"\ncomponents: []\n"))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var spotErr *errors.SpotError
			require.True(t, stderrors.As(err, &spotErr))
			assert.Equal(t, errors.KindDecode, spotErr.Kind)
			var decodeErr *errors.DecodeError
			require.True(t, stderrors.As(err, &decodeErr))
			assert.Equal(t, "version", decodeErr.Path)
		})
	}
}

func TestDecodeRejectsNegativeItemsPerRow(t *testing.T) {
	_, err := Decode([]byte("components:\n  - kind: grid\n    layout: {itemsPerRow: -1}\n"))
	var decodeErr *errors.DecodeError
	require.True(t, stderrors.As(err, &decodeErr))
	assert.Equal(t, "components[0].layout.itemsPerRow", decodeErr.Path)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("components: [\n"))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	components, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, components, 2)

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMustDecodePanics(t *testing.T) {
	assert.Panics(t, func() { MustDecode([]byte("version: v9\n")) })
}

func TestEncodeRoundTripKeepsItems(t *testing.T) {
	in := []Component{{Kind: "list", Items: []Item{{Title: "a"}, {Title: "b"}}}}
	in[0].Reindex()

	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in[0].Items, out[0].Items)
}
