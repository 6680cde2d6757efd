package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dargueta/huffpack/huffman"
	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"
)

// codeRow is one line of the code table printed by `inspect`.
type codeRow struct {
	Value     int    `csv:"value"`
	Symbol    string `csv:"symbol"`
	Frequency uint64 `csv:"frequency"`
	Length    int    `csv:"length"`
	Code      string `csv:"code"`
}

func requireArgs(context *cli.Context, count int) error {
	if context.Args().Len() != count {
		return cli.Exit(
			fmt.Sprintf(
				"expected %d arguments, got %d\nUsage: %s %s",
				count,
				context.Args().Len(),
				context.Command.FullName(),
				context.Command.ArgsUsage,
			),
			1,
		)
	}
	return nil
}

func compressOptions(context *cli.Context) []huffman.Option {
	if context.Bool(wideOffsetsFlagName) {
		return []huffman.Option{huffman.WithOffsetWidth(huffman.OffsetWidth16)}
	}
	return nil
}

func logArtifact(context *cli.Context, artifact *huffman.Artifact) {
	if !context.Bool("verbose") {
		return
	}
	if artifact.Stored() {
		log.Printf(
			"stored %d bytes uncompressed; Huffman coding wouldn't make them smaller",
			artifact.UncompressedSize())
		return
	}
	header := artifact.Header()
	log.Printf(
		"compressed %d bytes to %d (%d bits of codes, %d table records), saved %d",
		artifact.UncompressedSize(),
		artifact.CompressedSize(),
		header.BitCount,
		header.NodeCount,
		artifact.BytesSaved())
}

func packFile(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}

	data, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return err
	}

	artifact, err := huffman.Compress(data, compressOptions(context)...)
	if err != nil {
		return err
	}
	logArtifact(context, artifact)

	outFile, err := os.Create(context.Args().Get(1))
	if err != nil {
		return err
	}
	defer outFile.Close()

	_, err = compression.WriteArtifact(outFile, artifact)
	return err
}

func unpackFile(context *cli.Context) error {
	if err := requireArgs(context, 2); err != nil {
		return err
	}

	sourceFile, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	outFile, err := os.Create(context.Args().Get(1))
	if err != nil {
		return err
	}
	defer outFile.Close()

	nWritten, err := compression.DecompressStream(sourceFile, outFile)
	if err != nil {
		return fmt.Errorf("error expanding file: %w", err)
	}
	if context.Bool("verbose") {
		log.Printf("expanded to %d bytes", nWritten)
	}
	return nil
}

func inspectFile(context *cli.Context) error {
	if err := requireArgs(context, 1); err != nil {
		return err
	}

	data, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return err
	}

	rows, err := codeTable(data, context.Bool("packed"))
	if err != nil {
		return err
	}
	return writeCodes(context.App.Writer, rows, context.Bool("csv"))
}

// codeTable builds the rows printed by `inspect`. If packed is true the data is
// a container and the codes come from its decode table, without frequencies.
func codeTable(data []byte, packed bool) ([]codeRow, error) {
	var codes []huffman.Code
	if packed {
		artifact, err := compression.ReadArtifact(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		codes = artifact.Codes()
	} else {
		tree, err := huffman.BuildTree(huffman.CountFrequencies(data))
		if err != nil {
			return nil, err
		}
		codes = tree.Codes()
	}

	rows := make([]codeRow, len(codes))
	for i, code := range codes {
		rows[i] = codeRow{
			Value:     int(code.Symbol),
			Symbol:    fmt.Sprintf("%q", code.Symbol),
			Frequency: code.Frequency,
			Length:    code.Len(),
			Code:      code.Bits,
		}
	}
	return rows, nil
}

// writeCodes prints rows as CSV with a header line, or as an aligned table.
func writeCodes(output io.Writer, rows []codeRow, asCSV bool) error {
	if asCSV {
		return gocsv.Marshal(&rows, output)
	}
	return writeCodeTable(output, rows)
}

func writeCodeTable(output io.Writer, rows []codeRow) error {
	writer := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "VALUE\tSYMBOL\tFREQUENCY\tLENGTH\tCODE")
	for _, row := range rows {
		fmt.Fprintf(
			writer, "%d\t%s\t%d\t%d\t%s\n",
			row.Value, row.Symbol, row.Frequency, row.Length, row.Code)
	}
	return writer.Flush()
}
