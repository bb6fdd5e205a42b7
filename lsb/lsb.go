// Package lsb hides and recovers text in the least significant bits of an
// image's pixel data. The wire format (length header followed by message
// bytes) is owned by the underlying steganography library.
package lsb

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/auyer/steganography"
)

var (
	ErrTooLarge  = errors.New("message does not fit in image")
	ErrNoMessage = errors.New("no readable message in image")
)

// Hide embeds message into a copy of img. The returned image must be saved
// losslessly (PNG) or the payload is destroyed.
func Hide(img image.Image, message string) (image.Image, error) {
	if uint32(len(message)) > steganography.MaxEncodeSize(img) {
		return nil, ErrTooLarge
	}
	var buf bytes.Buffer
	if err := steganography.Encode(&buf, img, []byte(message)); err != nil {
		return nil, fmt.Errorf("lsb encode: %w", err)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode stego image: %w", err)
	}
	return out, nil
}

// Reveal extracts a message hidden by Hide.
func Reveal(img image.Image) (string, error) {
	size := steganography.GetMessageSizeFromImage(img)
	if size == 0 || size > steganography.MaxEncodeSize(img) {
		return "", ErrNoMessage
	}
	return string(steganography.Decode(size, img)), nil
}
