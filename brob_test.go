package jxlbox

import (
	"bytes"
	"errors"
	"testing"
)

func TestBrotliBoxRoundTrip(t *testing.T) {
	orig := Box{Type: TypeExif, Payload: bytes.Repeat([]byte("exif tiff payload "), 100)}

	wrapped, err := WrapBrotliBox(orig)
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if wrapped.Type != TypeBrotli {
		t.Fatalf("wrapped type = %q", wrapped.Type)
	}
	if !bytes.Equal(wrapped.Payload[:4], orig.Type[:]) {
		t.Fatalf("brob payload does not start with the real box type")
	}
	if len(wrapped.Payload) >= len(orig.Payload) {
		t.Fatalf("repetitive payload did not compress: %d -> %d", len(orig.Payload), len(wrapped.Payload))
	}

	got, err := UnwrapBrotliBox(wrapped)
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if got.Type != orig.Type || !bytes.Equal(got.Payload, orig.Payload) {
		t.Fatalf("round trip mismatch: type=%q %d bytes", got.Type, len(got.Payload))
	}
}

func TestBrotliBoxErrors(t *testing.T) {
	if _, err := UnwrapBrotliBox(Box{Type: TypeExif}); !errors.Is(err, ErrInvalidBox) {
		t.Fatalf("non-brob unwrap: err = %v, want ErrInvalidBox", err)
	}
	if _, err := UnwrapBrotliBox(Box{Type: TypeBrotli, Payload: []byte{1, 2}}); !errors.Is(err, ErrInvalidBox) {
		t.Fatalf("short brob: err = %v, want ErrInvalidBox", err)
	}
	if _, err := WrapBrotliBox(Box{Type: TypeCodestream, Payload: []byte{0xFF, 0x0A}}); !errors.Is(err, ErrInvalidBox) {
		t.Fatalf("wrapping jxlc: err = %v, want ErrInvalidBox", err)
	}

	// A brob claiming to wrap another brob is malformed.
	bad := Box{Type: TypeBrotli, Payload: append([]byte("brob"), 0xDE, 0xAD)}
	if _, err := UnwrapBrotliBox(bad); !errors.Is(err, ErrInvalidBox) {
		t.Fatalf("nested brob: err = %v, want ErrInvalidBox", err)
	}
}
