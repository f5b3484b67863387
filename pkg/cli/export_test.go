package cli

import "io"

func NewWithWriterForTest(w io.Writer) *CLI {
	return &CLI{writer: w}
}
