// Package ioutils provides the cover art image pipeline and small file
// helpers.
//
// # Image Processing
//
// The ImageService turns downloaded cover art into the quiz picture:
//
//	svc := ioutils.NewImageService()
//
//	// Decode + 55px blocks, grayscale on Expert
//	img, err := svc.Pixelate(coverBytes, 55, true)
//
//	// Smooth resize to the 340x340 display size
//	shown := svc.Present(img, 340)
//
//	// PNG for writing to disk
//	data, err := svc.EncodePNG(shown)
//
// # File Operations
//
//	safe := ioutils.SanitizeFileName("Album: Deluxe/Remaster") // "Album_ Deluxe_Remaster"
//	err := ioutils.EnsureDir("/tmp/previews")
//	err = ioutils.WriteFile("/tmp/previews/"+safe+".png", data)
package ioutils
