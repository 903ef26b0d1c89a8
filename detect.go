package jxlbox

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// DetectBitstreamKind classifies a bitstream by its signature prefix.
// A prefix that is still a strict prefix of either signature yields
// KindUnknown; feed more bytes to decide.
func DetectBitstreamKind(prefix []byte) BitstreamKind {
	if bytes.HasPrefix(prefix, codestreamSignature) {
		return KindBareCodestream
	}
	if bytes.HasPrefix(prefix, containerSignature) {
		return KindContainer
	}
	if bytes.HasPrefix(codestreamSignature, prefix) || bytes.HasPrefix(containerSignature, prefix) {
		return KindUnknown
	}
	return KindInvalid
}

// IsJXL performs a streaming signature check without loading the full file.
// It reads at most the 12 signature bytes and reports whether the stream is
// a JPEG XL codestream or container.
func IsJXL(r io.Reader) (bool, error) {
	br := bufio.NewReaderSize(r, len(containerSignature))
	prefix, err := br.Peek(len(containerSignature))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	switch DetectBitstreamKind(prefix) {
	case KindBareCodestream, KindContainer:
		return true, nil
	default:
		return false, nil
	}
}
