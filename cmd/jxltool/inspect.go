package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/vearutop/jxlbox"
)

type boxInfoJSON struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

type gainMapJSON struct {
	Version           uint8 `json:"version"`
	MetadataSize      int   `json:"metadata_size"`
	ColorEncodingSize int   `json:"color_encoding_size"`
	ICCSize           int   `json:"icc_size"`
	CodestreamSize    int   `json:"codestream_size"`
}

type frameIndexJSON struct {
	TNum      uint32 `json:"tnum"`
	TDen      uint32 `json:"tden"`
	NumFrames int    `json:"num_frames"`
}

type inspectJSON struct {
	File       string          `json:"file"`
	Kind       string          `json:"kind"`
	Level      *int            `json:"level,omitempty"`
	Boxes      []boxInfoJSON   `json:"boxes,omitempty"`
	GainMap    *gainMapJSON    `json:"gain_map,omitempty"`
	FrameIndex *frameIndexJSON `json:"frame_index,omitempty"`
}

func inspectCmd() *cli.Command {
	var (
		inPath   string
		asJSON   bool
		hexLimit int64
	)

	return &cli.Command{
		Name:  "inspect",
		Usage: "List container boxes and gain map details",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Usage: "input .jxl file", Destination: &inPath, Required: true},
			&cli.BoolFlag{Name: "json", Usage: "machine-readable output", Destination: &asJSON},
			&cli.IntFlag{Name: "hex-limit", Usage: "bytes of gain map metadata to hex dump", Value: 64, Destination: &hexLimit},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := os.ReadFile(filepath.Clean(inPath))
			if err != nil {
				return err
			}

			report := inspectJSON{File: inPath, Kind: jxlbox.DetectBitstreamKind(data).String()}

			var boxes []jxlbox.Box
			if jxlbox.DetectBitstreamKind(data) == jxlbox.KindContainer {
				boxes, err = jxlbox.ParseContainer(data)
				if err != nil {
					return err
				}
				report.Boxes = boxOffsets(data)
				if level, ok := jxlbox.CodestreamLevel(boxes); ok {
					report.Level = &level
				}
			}

			var gm *jxlbox.GainMapBundle
			if b, ok := jxlbox.FindBox(boxes, jxlbox.TypeGainMap); ok {
				gm, err = jxlbox.DecodeGainMapBundle(b.Payload)
				if err != nil {
					return fmt.Errorf("jhgm: %w", err)
				}
				report.GainMap = &gainMapJSON{
					Version:           gm.Version,
					MetadataSize:      len(gm.Metadata),
					ColorEncodingSize: len(gm.ColorEncoding),
					ICCSize:           len(gm.ICC),
					CodestreamSize:    len(gm.Codestream),
				}
			}

			var fi *jxlbox.FrameIndexBox
			if b, ok := jxlbox.FindBox(boxes, jxlbox.TypeFrameIndex); ok {
				fi, err = jxlbox.DecodeFrameIndex(b.Payload)
				if err != nil {
					return fmt.Errorf("jxli: %w", err)
				}
				report.FrameIndex = &frameIndexJSON{TNum: fi.TNum, TDen: fi.TDen, NumFrames: fi.NumFrames()}
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printInspect(report, gm, fi, int(hexLimit))
			return nil
		},
	}
}

func boxOffsets(data []byte) []boxInfoJSON {
	var out []boxInfoJSON
	pos := 0
	for pos < len(data) {
		boxType, _, consumed, err := jxlbox.DecodeBox(data[pos:])
		if err != nil {
			break
		}
		out = append(out, boxInfoJSON{Type: boxType.String(), Offset: pos, Size: consumed})
		pos += consumed
	}
	return out
}

func printInspect(report inspectJSON, gm *jxlbox.GainMapBundle, fi *jxlbox.FrameIndexBox, hexLimit int) {
	fmt.Printf("File: %s\n", report.File)
	fmt.Printf("Kind: %s\n", report.Kind)
	if report.Level != nil {
		fmt.Printf("Level: %d\n", *report.Level)
	}
	if len(report.Boxes) > 0 {
		fmt.Println("Boxes:")
		for _, b := range report.Boxes {
			fmt.Printf("  %-4s offset=%-8d size=%d\n", b.Type, b.Offset, b.Size)
		}
	}
	if gm != nil {
		fmt.Println("Gain map:")
		fmt.Printf("  version:        %d\n", gm.Version)
		fmt.Printf("  metadata:       %d bytes\n", len(gm.Metadata))
		if len(gm.ColorEncoding) > 0 {
			fmt.Printf("  color encoding: %d bytes\n", len(gm.ColorEncoding))
		}
		if len(gm.ICC) > 0 {
			fmt.Printf("  icc profile:    %d bytes\n", len(gm.ICC))
		}
		fmt.Printf("  codestream:     %d bytes\n", len(gm.Codestream))
		if hexLimit > 0 && len(gm.Metadata) > 0 {
			n := len(gm.Metadata)
			if n > hexLimit {
				n = hexLimit
			}
			fmt.Printf("  metadata hex (first %d bytes):\n", n)
			for i := 0; i < n; i += 16 {
				end := i + 16
				if end > n {
					end = n
				}
				fmt.Printf("    % x\n", gm.Metadata[i:end])
			}
			if len(gm.Metadata) > n {
				fmt.Printf("    ... (%d more bytes)\n", len(gm.Metadata)-n)
			}
		}
	} else if report.Kind == jxlbox.KindContainer.String() {
		fmt.Println("No gain map (jhgm) box present.")
	}
	if fi != nil {
		fmt.Println("Frame index:")
		fmt.Printf("  tick:   %d/%d s\n", fi.TNum, fi.TDen)
		fmt.Printf("  frames: %d\n", fi.NumFrames())
	}
}
