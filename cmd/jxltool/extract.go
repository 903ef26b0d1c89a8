package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/vearutop/jxlbox"
)

func extractCmd() *cli.Command {
	var (
		inPath      string
		codestream  string
		gainmapOut  string
		gainmapMeta string
		iccOut      string
	)

	return &cli.Command{
		Name:  "extract",
		Usage: "Write container payloads to files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Usage: "input .jxl file", Destination: &inPath, Required: true},
			&cli.StringFlag{Name: "codestream-out", Usage: "write primary codestream", Destination: &codestream},
			&cli.StringFlag{Name: "gainmap-out", Usage: "write gain map codestream", Destination: &gainmapOut},
			&cli.StringFlag{Name: "gainmap-meta-out", Usage: "write gain map ISO 21496-1 metadata", Destination: &gainmapMeta},
			&cli.StringFlag{Name: "icc-out", Usage: "write gain map ICC profile", Destination: &iccOut},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if codestream == "" && gainmapOut == "" && gainmapMeta == "" && iccOut == "" {
				return errors.New("nothing to extract, pass at least one -out flag")
			}
			data, err := os.ReadFile(filepath.Clean(inPath))
			if err != nil {
				return err
			}
			sr, err := jxlbox.Split(data)
			if err != nil {
				return err
			}

			if codestream != "" {
				if err := os.WriteFile(codestream, sr.Codestream, 0o644); err != nil {
					return err
				}
				fmt.Printf("codestream: %d bytes -> %s\n", len(sr.Codestream), codestream)
			}
			if gainmapOut != "" || gainmapMeta != "" || iccOut != "" {
				if sr.GainMap == nil {
					return errors.New("no gain map (jhgm) box present")
				}
				if gainmapOut != "" {
					if err := os.WriteFile(gainmapOut, sr.GainMap.Codestream, 0o644); err != nil {
						return err
					}
					fmt.Printf("gain map codestream: %d bytes -> %s\n", len(sr.GainMap.Codestream), gainmapOut)
				}
				if gainmapMeta != "" {
					if err := os.WriteFile(gainmapMeta, sr.GainMap.Metadata, 0o644); err != nil {
						return err
					}
					fmt.Printf("gain map metadata: %d bytes -> %s\n", len(sr.GainMap.Metadata), gainmapMeta)
				}
				if iccOut != "" {
					if len(sr.GainMap.ICC) == 0 {
						return errors.New("gain map has no ICC profile")
					}
					if err := os.WriteFile(iccOut, sr.GainMap.ICC, 0o644); err != nil {
						return err
					}
					fmt.Printf("icc profile: %d bytes -> %s\n", len(sr.GainMap.ICC), iccOut)
				}
			}
			return nil
		},
	}
}
