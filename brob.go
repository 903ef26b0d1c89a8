package jxlbox

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// UnwrapBrotliBox decompresses a brob box into the box it wraps. The brob
// payload is the real 4-byte box type followed by the Brotli-compressed
// payload. Wrapping codestream boxes or another brob is not allowed.
func UnwrapBrotliBox(b Box) (Box, error) {
	if b.Type != TypeBrotli {
		return Box{}, fmt.Errorf("%w: %q is not a brob box", ErrInvalidBox, b.Type)
	}
	if len(b.Payload) < 4 {
		return Box{}, fmt.Errorf("%w: brob box smaller than its type field", ErrInvalidBox)
	}
	var real BoxType
	copy(real[:], b.Payload[:4])
	if err := checkBrotliWrappable(real); err != nil {
		return Box{}, err
	}
	payload, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b.Payload[4:])))
	if err != nil {
		return Box{}, fmt.Errorf("%w: brob decompress: %v", ErrInvalidBox, err)
	}
	return Box{Type: real, Payload: payload}, nil
}

// WrapBrotliBox compresses a box into a brob box.
func WrapBrotliBox(b Box) (Box, error) {
	if err := checkBrotliWrappable(b.Type); err != nil {
		return Box{}, err
	}
	var buf bytes.Buffer
	buf.Write(b.Type[:])
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(b.Payload); err != nil {
		return Box{}, err
	}
	if err := w.Close(); err != nil {
		return Box{}, err
	}
	return Box{Type: TypeBrotli, Payload: buf.Bytes()}, nil
}

func checkBrotliWrappable(t BoxType) error {
	switch t {
	case TypeBrotli, TypeCodestream, TypePartialCodestream, TypeSignature, TypeFileType:
		return fmt.Errorf("%w: %q box may not be brotli-wrapped", ErrInvalidBox, t)
	}
	return nil
}
