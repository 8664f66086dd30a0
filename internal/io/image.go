package ioutils

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Cover art formats served by catalogs or embedded in audio files.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/handiism/coverquiz/internal/model"
)

// ImageService provides the cover art pipeline of the quiz.
//
// ImageService is used to:
//   - Decode downloaded or embedded cover art
//   - Pixelate it into visible blocks (optionally grayscale)
//   - Resize the result to the fixed display size
//   - Encode images as PNG for the preview command
//
// Example usage:
//
//	svc := NewImageService()
//
//	pixelated, err := svc.Pixelate(coverBytes, 55, difficulty.Grayscale())
//	if err != nil {
//	    return err // wraps model.ErrDecode
//	}
//	shown := svc.Present(pixelated, 340)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Decode decodes JPEG, PNG, GIF or WebP bytes.
//
// Invalid data returns an error wrapping model.ErrDecode.
func (s *ImageService) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDecode, err)
	}
	return img, nil
}

// Pixelate decodes cover art and applies the block filter.
//
// See PixelateImage for the filter itself.
func (s *ImageService) Pixelate(data []byte, blockSize int, grayscale bool) (image.Image, error) {
	img, err := s.Decode(data)
	if err != nil {
		return nil, err
	}
	return PixelateImage(img, blockSize, grayscale), nil
}

// PixelateImage produces a blocky version of img.
//
// The image is shrunk to (width/blockSize, height/blockSize) with
// nearest-neighbor sampling and scaled back to its original size the same
// way, so every block is about blockSize source pixels wide. Each shrunk
// axis is at least 1 pixel, which turns images smaller than a block into a
// single flat color. With grayscale set the result is an *image.Gray.
//
// The filter is deterministic: the same input always yields the same
// pixels.
//
// Example:
//
//	// 640x640 cover, 55px blocks: 11x11 visible blocks
//	out := PixelateImage(cover, 55, false)
func PixelateImage(img image.Image, blockSize int, grayscale bool) image.Image {
	if blockSize < 1 {
		blockSize = 1
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	small := image.NewRGBA(image.Rect(0, 0, max(width/blockSize, 1), max(height/blockSize, 1)))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img, bounds, draw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)

	if !grayscale {
		return out
	}

	gray := image.NewGray(out.Bounds())
	draw.Draw(gray, gray.Bounds(), out, image.Point{}, draw.Src)
	return gray
}

// Present resizes an image to size x size pixels for display.
//
// The Catmull-Rom algorithm is used, so block edges are softened slightly;
// this is cosmetic and independent of the pixelation block size.
func (s *ImageService) Present(img image.Image, size int) image.Image {
	if size < 1 {
		size = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG encodes an image as PNG.
func (s *ImageService) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
