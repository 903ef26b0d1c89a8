package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/vearutop/jxlbox"
)

func detectCmd() *cli.Command {
	var inPath string

	return &cli.Command{
		Name:  "detect",
		Usage: "Report whether a file is a JPEG XL codestream or container",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Usage: "input file", Destination: &inPath, Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := os.Open(filepath.Clean(inPath))
			if err != nil {
				return err
			}
			defer f.Close()

			ok, err := jxlbox.IsJXL(f)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("not a JPEG XL file")
				return nil
			}

			prefix := make([]byte, 12)
			n, _ := f.ReadAt(prefix, 0)
			fmt.Println(jxlbox.DetectBitstreamKind(prefix[:n]).String())
			return nil
		},
	}
}
