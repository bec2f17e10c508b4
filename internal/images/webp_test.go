package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)))
	assert.NoError(t, err)
	return &buf
}

func TestShrink_SmallImageUntouched(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))

	out := shrink(src, MaxWidth)

	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestShrink_WideImageKeepsAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2400, 1200))

	out := shrink(src, MaxWidth)

	assert.Equal(t, MaxWidth, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestToWebP_RejectsGarbage(t *testing.T) {
	_, err := ToWebP(bytes.NewBufferString("isto não é uma imagem"))
	assert.Error(t, err)
}

func TestToWebP_EncodesPNG(t *testing.T) {
	out, err := ToWebP(encodePNG(t, 100, 100))

	assert.NoError(t, err)
	assert.NotEmpty(t, out)
	// assinatura RIFF....WEBP
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}
