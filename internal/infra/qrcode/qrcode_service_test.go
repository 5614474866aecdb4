package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateURLQR(t *testing.T) {
	service := NewQRCodeService(200, "M")

	qrBytes, err := service.GenerateURLQR("https://www.recreation.gov/camping/campgrounds/232447")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_GenerateURLQR_InvalidURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []string{
		"ftp://example.com/file",
		"not a url at all",
		"://missing-scheme",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := service.GenerateURLQR(raw)
			assert.Error(t, err)
		})
	}
}
