package avatar

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultURL(t *testing.T) {
	// The seed must stay unescaped; the frontend matches on the raw email.
	url := DefaultURL("A@B.com")
	require.Equal(t, "https://api.dicebear.com/9.x/avataaars/svg?seed=A@B.com", url)
}

func TestObjectName(t *testing.T) {
	require.Equal(t, "avatars/user-123.jpg", ObjectName("user-123"))
}

func TestNormalize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 600, 400))))

	out, err := normalize(buf.Bytes())
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	require.LessOrEqual(t, img.Bounds().Dx(), maxDimension)
	require.LessOrEqual(t, img.Bounds().Dy(), maxDimension)
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := normalize([]byte("not an image"))
	require.ErrorIs(t, err, ErrInvalidImage)
}
