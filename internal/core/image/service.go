package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	_ "image/gif" // 支援 GIF
	_ "image/png" // 支援 PNG

	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // 支援 WebP
)

// Service 圖片處理服務：解碼、縮小、轉成 JPEG
type Service struct {
	maxSizeBytes int64
	maxWidth     int
	quality      int
}

// NewService 創建新的圖片處理服務
func NewService(cfg config.ImageConfig) *Service {
	return &Service{
		maxSizeBytes: cfg.MaxSizeBytes,
		maxWidth:     cfg.MaxWidth,
		quality:      cfg.JPEGQuality,
	}
}

// Processed 處理後的圖片
type Processed struct {
	Base64 string
	Width  int
	Height int
}

// DataURI 以 data URI 形式回傳
func (p *Processed) DataURI() string {
	return "data:image/jpeg;base64," + p.Base64
}

// Process 處理 data URI 或純 base64 圖片
func (s *Service) Process(imageData string) (*Processed, error) {
	raw, err := s.decodeBase64(imageData)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, common.ErrInvalidImageFormat.Wrap(fmt.Errorf("failed to decode image: %w", err))
	}
	if !isSupportedFormat(format) {
		return nil, common.ErrInvalidImageFormat.Wrap(fmt.Errorf("unsupported image format: %s", format))
	}

	img = s.resize(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	b := img.Bounds()
	common.LogDebug("圖片處理資訊",
		zap.String("format", format),
		zap.Int("input_bytes", len(raw)),
		zap.Int("output_bytes", buf.Len()),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)

	return &Processed{
		Base64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// decodeBase64 解析 base64 並檢查大小
func (s *Service) decodeBase64(imageData string) ([]byte, error) {
	data := strings.TrimSpace(imageData)
	if data == "" {
		return nil, common.NewValidationError("image is required")
	}

	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image/") || !strings.HasSuffix(parts[0], ";base64") {
			return nil, common.ErrInvalidImageFormat.Wrap(fmt.Errorf("invalid data URI"))
		}
		data = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, common.ErrInvalidImageFormat.Wrap(fmt.Errorf("failed to decode base64 data: %w", err))
	}

	if s.maxSizeBytes > 0 && int64(len(decoded)) > s.maxSizeBytes {
		return nil, common.ErrInvalidImageSize.Wrap(fmt.Errorf("image size exceeds maximum limit of %d bytes", s.maxSizeBytes))
	}
	return decoded, nil
}

// resize 等比例縮到 maxWidth，不放大
func (s *Service) resize(img image.Image) image.Image {
	b := img.Bounds()
	if s.maxWidth <= 0 || b.Dx() <= s.maxWidth {
		return img
	}

	height := b.Dy() * s.maxWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
