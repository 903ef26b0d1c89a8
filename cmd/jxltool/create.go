package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vearutop/jxlbox"
)

// Golden gain map test data matching libjxl's gain_map_test.cc.
const (
	goldenMetadata       = "placeholder gain map metadata, fill with actual example after (ISO 21496-1) is finalized"
	goldenGainCodestream = "placeholder for an actual naked JPEG XL codestream"
)

// Minimal 1x1 codestream. It may not decode to a valid image, but the
// container structure around it is valid, which is all the box layer needs.
var minimalCodestream = []byte{
	0xFF, 0x0A, // codestream signature
	0x00,       // small size header
	0x20,       // bit depth
	0x00, 0x50, // defaults
	0x01,       // regular frame
	0x00, 0x00, // frame payload
}

func createTestFileCmd() *cli.Command {
	var outPath string

	return &cli.Command{
		Name:  "create-testfile",
		Usage: "Write a minimal container with a gain map box for testing",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "output .jxl file", Value: "test_gain_map.jxl", Destination: &outPath},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			bundle := &jxlbox.GainMapBundle{
				Metadata:   []byte(goldenMetadata),
				Codestream: []byte(goldenGainCodestream),
			}
			payload, err := bundle.Encode()
			if err != nil {
				return err
			}
			data, err := jxlbox.BuildContainer(jxlbox.BrandJXL, []jxlbox.Box{
				{Type: jxlbox.TypeCodestream, Payload: minimalCodestream},
				{Type: jxlbox.TypeGainMap, Payload: payload},
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("created %s (%d bytes)\n", outPath, len(data))
			fmt.Printf("  gain map bundle: %d bytes (metadata %d, codestream %d)\n",
				bundle.BundleSize(), len(bundle.Metadata), len(bundle.Codestream))
			return nil
		},
	}
}
