package vizprobe_test

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizprobe/vizprobe"
	"github.com/vizprobe/vizprobe/overlay"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 2), B: 100, A: 255})
		}
	}
	return img
}

func TestApply(t *testing.T) {
	tk, err := vizprobe.New(vizprobe.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	src := testImage(64, 64)
	out, err := tk.Apply(context.Background(), src,
		vizprobe.TextStep("note", overlay.TextConfig{}),
		vizprobe.PatternStep(overlay.Stripes, overlay.PatternConfig{}),
	)
	require.NoError(t, err)
	require.NotNil(t, out)

	history := tk.History()
	require.Len(t, history, 2)
	assert.Equal(t, "text-overlay", history[0].Step)
	assert.Equal(t, "pattern-overlay", history[1].Step)
	assert.Same(t, out, tk.Last())

	tk.Reset()
	assert.Empty(t, tk.History())
	assert.Nil(t, tk.Last())
}

func TestApply_CancelledContext(t *testing.T) {
	tk, err := vizprobe.New(vizprobe.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tk.Apply(ctx, testImage(8, 8), vizprobe.TextStep("x", overlay.TextConfig{}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	tk, err := vizprobe.New(vizprobe.WithOutputDir(dir))
	require.NoError(t, err)

	src := testImage(16, 16)
	path, err := tk.Save(src, "probe")
	require.NoError(t, err)
	assert.Contains(t, path, "probe.png")

	got, err := tk.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())
}

func TestSave_GeneratedName(t *testing.T) {
	tk, err := vizprobe.New(vizprobe.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	a, err := tk.Save(testImage(4, 4), "")
	require.NoError(t, err)
	b, err := tk.Save(testImage(4, 4), "")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSave_StripsDirectoryFromName(t *testing.T) {
	dir := t.TempDir()
	tk, err := vizprobe.New(vizprobe.WithOutputDir(filepath.Join(dir, "out")))
	require.NoError(t, err)

	path, err := tk.Save(testImage(4, 4), "../escape.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "escape.png"), path)

	_, err = os.Stat(filepath.Join(dir, "escape.png"))
	assert.True(t, os.IsNotExist(err), "file must not land outside the output dir")
}

func TestFit(t *testing.T) {
	tk, err := vizprobe.New(vizprobe.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	out := tk.Fit(testImage(100, 50), 32, 32)
	assert.Equal(t, 32, out.Bounds().Dx())
	assert.Equal(t, 32, out.Bounds().Dy())
}

func TestStrategy(t *testing.T) {
	tk, err := vizprobe.New(vizprobe.WithOutputDir(t.TempDir()))
	require.NoError(t, err)

	for _, name := range vizprobe.Strategies() {
		t.Run(name, func(t *testing.T) {
			res, err := tk.Strategy(context.Background(), name, "summarize the chart", testImage(64, 64))
			require.NoError(t, err)
			assert.NotNil(t, res.Image)
			assert.NotEmpty(t, res.Prompt)
		})
	}

	_, err = tk.Strategy(context.Background(), "nope", "x", testImage(8, 8))
	assert.Error(t, err)
}
