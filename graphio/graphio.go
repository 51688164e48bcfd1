// SPDX-License-Identifier: MIT
// Package graphio: the binary CSR codec.

package graphio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/topology"
)

// Format constants.
const (
	// magic identifies the format and its revision.
	magic = "VOLTCSR1"

	// flagEdgeValues marks the presence of the per-edge float32 channel.
	flagEdgeValues uint32 = 1 << 0

	// knownFlags guards against files from a future revision.
	knownFlags = flagEdgeValues
)

// Sentinel errors.
var (
	// ErrBadMagic is returned when the input does not start with the
	// format magic.
	ErrBadMagic = fmt.Errorf("graphio: bad magic, not a voltgraph CSR file: %w", voltgraph.ErrInvalidValue)

	// ErrBadHeader is returned for negative counts or unknown flag bits.
	ErrBadHeader = fmt.Errorf("graphio: malformed header: %w", voltgraph.ErrInvalidValue)
)

// Graph is one decoded file: the CSR topology plus the optional per-edge
// value channel (nil when the file carries none).
type Graph struct {
	CSR        topology.CSR
	EdgeValues []float32
}

// header is the fixed-size portion after the magic.
type header struct {
	N     int32
	NNZ   int32
	Flags uint32
}

// ReadCSR decodes one graph from r, structurally validating the arrays
// (files are untrusted input).
func ReadCSR(r io.Reader) (Graph, error) {
	br := bufio.NewReader(r)

	var got [len(magic)]byte
	if _, err := io.ReadFull(br, got[:]); err != nil {
		return Graph{}, fmt.Errorf("graphio: read magic: %w", err)
	}
	if string(got[:]) != magic {
		return Graph{}, ErrBadMagic
	}

	var h header
	if err := binary.Read(br, binary.LittleEndian, &h); err != nil {
		return Graph{}, fmt.Errorf("graphio: read header: %w", err)
	}
	if h.N < 0 || h.NNZ < 0 || h.Flags&^knownFlags != 0 {
		return Graph{}, fmt.Errorf("n=%d nnz=%d flags=%#x: %w", h.N, h.NNZ, h.Flags, ErrBadHeader)
	}

	g := Graph{CSR: topology.CSR{
		N:          int(h.N),
		NNZ:        int(h.NNZ),
		RowOffsets: make([]int32, h.N+1),
		ColIndices: make([]int32, h.NNZ),
	}}
	if err := binary.Read(br, binary.LittleEndian, g.CSR.RowOffsets); err != nil {
		return Graph{}, fmt.Errorf("graphio: read row offsets: %w", err)
	}
	if err := binary.Read(br, binary.LittleEndian, g.CSR.ColIndices); err != nil {
		return Graph{}, fmt.Errorf("graphio: read column indices: %w", err)
	}
	if h.Flags&flagEdgeValues != 0 {
		g.EdgeValues = make([]float32, h.NNZ)
		if err := binary.Read(br, binary.LittleEndian, g.EdgeValues); err != nil {
			return Graph{}, fmt.Errorf("graphio: read edge values: %w", err)
		}
	}

	if err := g.CSR.CheckStructure(); err != nil {
		return Graph{}, err
	}

	return g, nil
}

// WriteCSR encodes g to w. The topology is checked first so the format
// never ships a file ReadCSR would reject.
func WriteCSR(w io.Writer, g Graph) error {
	if err := g.CSR.CheckStructure(); err != nil {
		return err
	}
	if g.EdgeValues != nil && len(g.EdgeValues) != g.CSR.NNZ {
		return fmt.Errorf("graphio: %d edge values for nnz=%d: %w", len(g.EdgeValues), g.CSR.NNZ, ErrBadHeader)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return fmt.Errorf("graphio: write magic: %w", err)
	}

	var flags uint32
	if g.EdgeValues != nil {
		flags |= flagEdgeValues
	}
	h := header{N: int32(g.CSR.N), NNZ: int32(g.CSR.NNZ), Flags: flags}
	if err := binary.Write(bw, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("graphio: write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, g.CSR.RowOffsets); err != nil {
		return fmt.Errorf("graphio: write row offsets: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, g.CSR.ColIndices); err != nil {
		return fmt.Errorf("graphio: write column indices: %w", err)
	}
	if g.EdgeValues != nil {
		if err := binary.Write(bw, binary.LittleEndian, g.EdgeValues); err != nil {
			return fmt.Errorf("graphio: write edge values: %w", err)
		}
	}

	return bw.Flush()
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return ReadCSR(f)
}

// WriteFile encodes g into a new file at path.
func WriteFile(path string, g Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := WriteCSR(f, g); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
