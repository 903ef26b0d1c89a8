package jxlbox

import (
	"bytes"
	"strings"
	"testing"
)

func TestDetectBitstreamKind(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   BitstreamKind
	}{
		{"bare codestream", []byte{0xFF, 0x0A, 0x12}, KindBareCodestream},
		{"container", containerSignature, KindContainer},
		{"container with body", append(append([]byte{}, containerSignature...), 1, 2, 3), KindContainer},
		{"empty", nil, KindUnknown},
		{"container prefix", containerSignature[:5], KindUnknown},
		{"codestream prefix", []byte{0xFF}, KindUnknown},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF}, KindInvalid},
		{"text", []byte("not an image"), KindInvalid},
	}
	for _, tt := range tests {
		if got := DetectBitstreamKind(tt.prefix); got != tt.want {
			t.Errorf("%s: kind = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsJXL(t *testing.T) {
	data := goldenContainer(t)
	ok, err := IsJXL(bytes.NewReader(data))
	if err != nil || !ok {
		t.Fatalf("container: ok=%v err=%v", ok, err)
	}

	ok, err = IsJXL(bytes.NewReader([]byte{0xFF, 0x0A}))
	if err != nil || !ok {
		t.Fatalf("bare codestream: ok=%v err=%v", ok, err)
	}

	ok, err = IsJXL(strings.NewReader("plain text file"))
	if err != nil || ok {
		t.Fatalf("text: ok=%v err=%v", ok, err)
	}

	ok, err = IsJXL(bytes.NewReader(nil))
	if err != nil || ok {
		t.Fatalf("empty: ok=%v err=%v", ok, err)
	}
}
