package jxlbox

import (
	"bytes"
	"errors"
	"testing"
)

// goldenBundle matches libjxl's gain_map_test.cc golden data: 88 byte
// metadata placeholder, no color encoding, no ICC, 50 byte codestream.
func goldenBundle() *GainMapBundle {
	return &GainMapBundle{
		Metadata:   []byte("placeholder gain map metadata, fill with actual example after (ISO 21496-1) is finalized"),
		Codestream: []byte("placeholder for an actual naked JPEG XL codestream"),
	}
}

func goldenContainer(t *testing.T) []byte {
	t.Helper()
	payload, err := goldenBundle().Encode()
	if err != nil {
		t.Fatalf("encode bundle: %v", err)
	}
	data, err := BuildContainer(BrandJXL, []Box{
		{Type: TypeCodestream, Payload: []byte{0x00, 0x00}},
		{Type: TypeGainMap, Payload: payload},
	})
	if err != nil {
		t.Fatalf("build container: %v", err)
	}
	return data
}

func TestBuildContainerLayout(t *testing.T) {
	data := goldenContainer(t)

	wantHead := []byte{
		0x00, 0x00, 0x00, 0x0C, 'J', 'X', 'L', ' ', 0x0D, 0x0A, 0x87, 0x0A, // signature box
		0x00, 0x00, 0x00, 0x14, 'f', 't', 'y', 'p', // ftyp box header, size 20
		'j', 'x', 'l', ' ', 0x00, 0x00, 0x00, 0x00, 'j', 'x', 'l', ' ', // brand, minor, compat
	}
	if !bytes.Equal(data[:len(wantHead)], wantHead) {
		t.Fatalf("container head mismatch\nwant % x\ngot  % x", wantHead, data[:len(wantHead)])
	}
}

func TestParseContainerGolden(t *testing.T) {
	data := goldenContainer(t)

	boxes, err := ParseContainer(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(boxes) != 4 {
		t.Fatalf("parsed %d boxes, want 4", len(boxes))
	}
	wantTypes := []BoxType{TypeSignature, TypeFileType, TypeCodestream, TypeGainMap}
	for i, want := range wantTypes {
		if boxes[i].Type != want {
			t.Fatalf("box %d type = %q, want %q", i, boxes[i].Type, want)
		}
	}
	if !bytes.Equal(boxes[0].Payload, []byte{0x0D, 0x0A, 0x87, 0x0A}) {
		t.Fatalf("signature payload = % x", boxes[0].Payload)
	}
	if !bytes.Equal(boxes[2].Payload, []byte{0x00, 0x00}) {
		t.Fatalf("jxlc payload = % x", boxes[2].Payload)
	}
	if len(boxes[3].Payload) != 146 {
		t.Fatalf("jhgm payload %d bytes, want 146", len(boxes[3].Payload))
	}
}

func TestReencodeIsByteIdentical(t *testing.T) {
	data := goldenContainer(t)
	// Unknown box types must round-trip unchanged too.
	unknown, err := EncodeBox(TypeOf("zzAP"), []byte("opaque payload"))
	if err != nil {
		t.Fatalf("encode unknown: %v", err)
	}
	data = append(data, unknown...)

	boxes, err := ParseContainer(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := EncodeContainer(boxes)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("re-encoded container differs from input")
	}
}

func TestParseContainerBadSignature(t *testing.T) {
	data := goldenContainer(t)
	data[8] ^= 0xFF
	if _, err := ParseContainer(data); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature", err)
	}
	if _, err := ParseContainer(data[:4]); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("short input: err = %v, want ErrBadSignature", err)
	}
}

func TestParseContainerMissingFtyp(t *testing.T) {
	// A well-formed box sequence whose second box is not ftyp must fail
	// regardless of how many valid boxes follow.
	var data []byte
	data = append(data, containerSignature...)
	jxlc, _ := EncodeBox(TypeCodestream, []byte{1, 2, 3})
	ftyp, _ := EncodeBox(TypeFileType, append(append([]byte("jxl "), 0, 0, 0, 0), []byte("jxl ")...))
	data = append(data, jxlc...)
	data = append(data, ftyp...)

	if _, err := ParseContainer(data); !errors.Is(err, ErrMissingFtyp) {
		t.Fatalf("err = %v, want ErrMissingFtyp", err)
	}
}

func TestParseContainerTrailingGarbage(t *testing.T) {
	data := goldenContainer(t)

	if _, err := ParseContainer(append(data, 0x00, 0x00, 0x01)); !errors.Is(err, ErrTrailingGarbage) {
		t.Fatalf("err = %v, want ErrTrailingGarbage", err)
	}

	// Zero trailing bytes is not an error.
	if _, err := ParseContainer(data); err != nil {
		t.Fatalf("clean container: %v", err)
	}
}

func TestParseContainerTruncatedPayload(t *testing.T) {
	data := goldenContainer(t)
	if _, err := ParseContainer(data[:len(data)-10]); !errors.Is(err, ErrTruncatedPayload) {
		t.Fatalf("err = %v, want ErrTruncatedPayload", err)
	}
}

func TestParseContainerRestOfStreamBox(t *testing.T) {
	var data []byte
	data = append(data, goldenContainer(t)...)
	data = append(data, 0, 0, 0, 0) // size 0: extends to end
	data = append(data, 'x', 'm', 'l', ' ')
	data = append(data, []byte("<x/>")...)

	boxes, err := ParseContainer(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	last := boxes[len(boxes)-1]
	if last.Type != TypeXML || !bytes.Equal(last.Payload, []byte("<x/>")) {
		t.Fatalf("last box = %q % x", last.Type, last.Payload)
	}
}

func TestParseContainerMaxBoxSize(t *testing.T) {
	data := goldenContainer(t)

	if _, err := ParseContainer(data, func(o *ParseOptions) { o.MaxBoxSize = 16 }); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("err = %v, want ErrSizeOverflow", err)
	}
	if _, err := ParseContainer(data, func(o *ParseOptions) { o.MaxBoxSize = 1 << 20 }); err != nil {
		t.Fatalf("generous limit: %v", err)
	}
}

func TestCodestreamLevel(t *testing.T) {
	data, err := BuildContainer(BrandJXL, []Box{
		{Type: TypeLevel, Payload: []byte{10}},
		{Type: TypeCodestream, Payload: []byte{0xFF, 0x0A}},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	boxes, err := ParseContainer(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	level, ok := CodestreamLevel(boxes)
	if !ok || level != 10 {
		t.Fatalf("level = %d ok=%v, want 10", level, ok)
	}

	if _, ok := CodestreamLevel(boxes[:2]); ok {
		t.Fatalf("level reported without jxll box")
	}
}
