package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"text/template"

	"github.com/dargueta/huffpack/huffman"
	"github.com/urfave/cli/v2"
)

var sourceTemplate = template.Must(template.New("source").Parse(
	`// Code generated by huffpack generate; DO NOT EDIT.

package {{.Package}}

import "github.com/dargueta/huffpack/huffman"

// {{.Name}} holds {{.Header.UncompressedSize}} bytes of data in {{.CompressedSize}} bytes.
// Use {{.Name}}.Bytes() or {{.Name}}.NewReader() to get the original data back.
var {{.Name}} = huffman.MustOpen(
	huffman.Header{
		Stored: {{.Header.Stored}},
		UncompressedSize: {{.Header.UncompressedSize}},
		BitCount: {{.Header.BitCount}},
		NodeCount: {{.Header.NodeCount}},
		OffsetWidth: {{.Header.OffsetWidth}},
	},
	[]byte({{.Payload}}),
)
`))

type sourceParameters struct {
	Package        string
	Name           string
	Header         huffman.Header
	CompressedSize int
	Payload        string
}

// renderSource returns a formatted Go source file declaring a package-level
// variable that holds the artifact.
func renderSource(packageName, variableName string, artifact *huffman.Artifact) ([]byte, error) {
	if !token.IsIdentifier(packageName) {
		return nil, fmt.Errorf("%q isn't a valid package name", packageName)
	}
	if !token.IsIdentifier(variableName) {
		return nil, fmt.Errorf("%q isn't a valid variable name", variableName)
	}

	buffer := bytes.Buffer{}
	err := sourceTemplate.Execute(
		&buffer,
		sourceParameters{
			Package:        packageName,
			Name:           variableName,
			Header:         artifact.Header(),
			CompressedSize: artifact.CompressedSize(),
			Payload:        strconv.Quote(string(artifact.Data())),
		},
	)
	if err != nil {
		return nil, err
	}
	return format.Source(buffer.Bytes())
}

func generateSource(context *cli.Context) error {
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

	source, err := renderSource(context.String("package"), context.String("name"), artifact)
	if err != nil {
		return err
	}
	return os.WriteFile(context.Args().Get(1), source, 0o644)
}
