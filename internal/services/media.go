package services

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/dorotad/contacts-backend/internal/logger"
)

// MediaProcessor is the image collaborator the avatar pipeline consumes.
type MediaProcessor interface {
	ResizeInPlace(path string, width, height int) error
}

type imageProcessor struct {
	log *logger.Logger
}

func NewImageProcessor(log *logger.Logger) MediaProcessor {
	serviceLog := log.With("service", "ImageProcessor")
	return &imageProcessor{log: serviceLog}
}

// ResizeInPlace decodes the image at path, scales it to the requested
// bounds and writes it back over the same file.
func (ip *imageProcessor) ResizeInPlace(path string, width, height int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	src, format, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rewrite image: %w", err)
	}
	defer out.Close()

	switch format {
	case "png":
		if err := png.Encode(out, dst); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	default:
		if err := jpeg.Encode(out, dst, nil); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
	}
	return nil
}
