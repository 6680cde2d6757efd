package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	cli := cli.App{
		Name:  "huffpack",
		Usage: "Compress fixed data with a static Huffman code",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log sizes and code statistics",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "pack",
				Usage:     "Compress a file into a container",
				Action:    packFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags:     []cli.Flag{newWideOffsetsFlag()},
			},
			{
				Name:      "unpack",
				Usage:     "Expand a container back into the original file",
				Action:    unpackFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "inspect",
				Usage:     "Print the code assigned to every byte value in a file",
				Action:    inspectFile,
				ArgsUsage: "INPUT_FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Print the code table as CSV",
					},
					&cli.BoolFlag{
						Name:  "packed",
						Usage: "The input is a container; read the codes from its decode table",
					},
				},
			},
			{
				Name:      "generate",
				Usage:     "Write a Go source file embedding the compressed file",
				Action:    generateSource,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "package",
						Usage:    "Package name of the generated file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Name of the generated variable",
						Required: true,
					},
					newWideOffsetsFlag(),
				},
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

const wideOffsetsFlagName = "wide-offsets"

func newWideOffsetsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  wideOffsetsFlagName,
		Usage: "Use two-byte decode table offsets, needed for some large alphabets",
	}
}
