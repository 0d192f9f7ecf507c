package photoview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photo-compare/internal/logging"
	"photo-compare/internal/review"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newView(t *testing.T, baseDir string) *View {
	t.Helper()
	test.NewApp()
	return New(baseDir, func() fyne.Size { return fyne.NewSize(900, 600) }, logging.Discard())
}

func pairOf(t *testing.T, first, second string) review.Pair {
	t.Helper()
	c, err := review.Read(strings.NewReader("caseid,front_image\nA," + first + "\nA," + second + "\n"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	return c.Pairs[0]
}

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 50, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, c)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRenderScalesToThirdOfSurface(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "photos", "a.png"), color.Black)
	writePNG(t, filepath.Join(dir, "photos", "b.png"), color.White)

	v := newView(t, dir)
	v.Render(pairOf(t, "photos/a.png", "photos/b.png"))

	items := v.Items()
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Empty(t, item.Message)
		require.NotNil(t, item.Scaled)
		assert.Equal(t, image.Rect(0, 0, 300, 200), item.Scaled.Bounds())
	}
	assert.Equal(t, filepath.Join(dir, "photos", "a.png"), items[0].Path)

	require.Len(t, v.box.Objects, 2)
	_, isImage := v.box.Objects[0].(*fynecanvas.Image)
	assert.True(t, isImage)

	_, ok := v.Distance()
	assert.True(t, ok)
}

func TestRenderEmptyPathSkipsDecode(t *testing.T) {
	v := newView(t, t.TempDir())
	calls := 0
	v.load = func(string) (image.Image, error) {
		calls++
		return nil, nil
	}

	v.Render(pairOf(t, "", ""))

	assert.Equal(t, 0, calls)
	for _, item := range v.Items() {
		assert.Equal(t, MessageNoMedia, item.Message)
	}
	label, ok := v.box.Objects[0].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, "No media file", label.Text)
}

func TestRenderMissingFile(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "ok.png"), color.Black)

	v := newView(t, dir)
	v.Render(pairOf(t, "ok.png", "gone.png"))

	items := v.Items()
	require.Len(t, items, 2)
	assert.NotNil(t, items[0].Scaled)
	assert.Equal(t, "Image not found: "+filepath.Join(dir, "gone.png"), items[1].Message)
	assert.Nil(t, items[1].Image)

	_, ok := v.Distance()
	assert.False(t, ok)
}

func TestRenderUndecodableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("junk"), 0o644))

	v := newView(t, dir)
	v.Render(pairOf(t, "bad.png", ""))

	items := v.Items()
	assert.Equal(t, "Cannot decode image: "+filepath.Join(dir, "bad.png"), items[0].Message)
	assert.Equal(t, MessageNoMedia, items[1].Message)
}

func TestRenderReplacesPreviousContent(t *testing.T) {
	v := newView(t, t.TempDir())
	v.Render(pairOf(t, "", ""))
	v.Render(pairOf(t, "", "x.png"))
	assert.Len(t, v.box.Objects, 2)

	v.ShowMessage("done")
	assert.Len(t, v.box.Objects, 1)
	assert.Empty(t, v.Items())
}
