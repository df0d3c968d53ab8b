package stego

import "github.com/llehouerou/stegano/internal/pixel"

// HeaderSize is the number of carrier byte slots taken by the header.
const HeaderSize = 9

// Available returns the byte slots a width x height carrier offers.
// It does not depend on the method.
func Available(width, height int) int {
	return width * height * pixel.Channels
}

// LosslessNeeded returns the byte slots Lossless needs for a width x height secret.
func LosslessNeeded(width, height int) int {
	return width*height*pixel.Channels*2 + HeaderSize
}

// LossyNeeded returns the byte slots Lossy needs for a width x height secret.
func LossyNeeded(width, height int) int {
	return width*height*pixel.Channels + HeaderSize
}

// JpegNeeded returns the byte slots Jpeg needs for a compressed stream of n bytes.
func JpegNeeded(n int) int {
	return n*2 + HeaderSize
}

// CanFit reports whether needed slots fit into available ones.
func CanFit(needed, available int) bool {
	return needed <= available
}

func checkFit(m Method, needed int, carrier *pixel.Buffer) error {
	if available := carrier.Len(); !CanFit(needed, available) {
		return &CapacityError{Method: m, Needed: needed, Available: available}
	}
	return nil
}
