package jxlbox

import (
	"encoding/binary"
	"fmt"
)

// GainMapBundle is the decoded payload of a jhgm box, as defined by
// ISO 21496-1 carriage in JPEG XL.
//
// Wire layout, all multi-byte fields big-endian:
//
//	[version:1][meta_len:2][metadata][ce_size:1][color encoding]
//	[icc_len:4][icc profile][codestream = rest of payload]
//
// Metadata, color encoding and ICC profile are opaque at this layer; the
// codestream is a secondary JPEG XL codestream (or container) handed to an
// external decoder.
type GainMapBundle struct {
	Version       uint8
	Metadata      []byte
	ColorEncoding []byte // empty means the base image color encoding applies
	ICC           []byte
	Codestream    []byte
}

// BundleSize reports the serialized size of the bundle in bytes.
func (b *GainMapBundle) BundleSize() int {
	return 1 + 2 + len(b.Metadata) + 1 + len(b.ColorEncoding) + 4 + len(b.ICC) + len(b.Codestream)
}

// Encode serializes the bundle. The encoder performs no partial write: on
// any field limit violation it returns before producing output.
func (b *GainMapBundle) Encode() ([]byte, error) {
	if len(b.Metadata) > 0xFFFF {
		return nil, fmt.Errorf("%w: %d bytes", ErrMetadataTooLarge, len(b.Metadata))
	}
	if len(b.ColorEncoding) > 0xFF {
		return nil, fmt.Errorf("%w: %d bytes", ErrColorEncodingTooLarge, len(b.ColorEncoding))
	}
	if uint64(len(b.ICC)) > 0xFFFFFFFF {
		return nil, fmt.Errorf("%w: %d byte icc profile", ErrSizeOverflow, len(b.ICC))
	}

	out := make([]byte, 0, b.BundleSize())
	out = append(out, b.Version)
	out = binary.BigEndian.AppendUint16(out, uint16(len(b.Metadata)))
	out = append(out, b.Metadata...)
	out = append(out, uint8(len(b.ColorEncoding)))
	out = append(out, b.ColorEncoding...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(b.ICC)))
	out = append(out, b.ICC...)
	out = append(out, b.Codestream...)
	return out, nil
}

// DecodeGainMapBundle parses a jhgm box payload. Field bytes are copied out
// of data, so the bundle does not alias the source buffer. Bundles with a
// version other than 0 are rejected with ErrUnsupportedVersion; the wrapped
// message carries the raw version byte for callers that want to keep the
// payload opaquely.
func DecodeGainMapBundle(data []byte) (*GainMapBundle, error) {
	pos := 0
	take := func(n int, field string) ([]byte, error) {
		if n < 0 || pos+n > len(data) {
			return nil, fmt.Errorf("%w: %s needs %d bytes, %d remain", ErrTruncatedBundle, field, n, len(data)-pos)
		}
		out := data[pos : pos+n]
		pos += n
		return out, nil
	}

	ver, err := take(1, "version")
	if err != nil {
		return nil, err
	}
	if ver[0] != gainMapBundleVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, ver[0])
	}
	b := &GainMapBundle{Version: ver[0]}

	prefix, err := take(2, "metadata length")
	if err != nil {
		return nil, err
	}
	meta, err := take(int(binary.BigEndian.Uint16(prefix)), "metadata")
	if err != nil {
		return nil, err
	}
	b.Metadata = append([]byte(nil), meta...)

	ceSize, err := take(1, "color encoding size")
	if err != nil {
		return nil, err
	}
	ce, err := take(int(ceSize[0]), "color encoding")
	if err != nil {
		return nil, err
	}
	b.ColorEncoding = append([]byte(nil), ce...)

	prefix, err = take(4, "icc length")
	if err != nil {
		return nil, err
	}
	iccLen := binary.BigEndian.Uint32(prefix)
	if uint64(iccLen) > uint64(len(data)-pos) {
		return nil, fmt.Errorf("%w: icc profile needs %d bytes, %d remain", ErrTruncatedBundle, iccLen, len(data)-pos)
	}
	icc, err := take(int(iccLen), "icc profile")
	if err != nil {
		return nil, err
	}
	b.ICC = append([]byte(nil), icc...)

	b.Codestream = append([]byte(nil), data[pos:]...)
	return b, nil
}
