// Package stlio reads and writes binary STL files. It is host glue: the
// core pipeline (geom, sampler, heightmap, tool, toolpath, session)
// never imports it, and works from flat triangle buffers regardless of
// how a caller obtained them.
package stlio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	headerSize       = 80
	recordSize       = 50 // 12 bytes normal + 9*4 bytes vertices + 2 bytes attribute
	floatsPerTriangle = 9
)

// ReadBinary reads a binary STL file and returns its triangles as a flat
// buffer of 9 floats each (v0.xyz, v1.xyz, v2.xyz), in file order. Each
// triangle's stored face normal and the trailing attribute byte count
// are both discarded; geom.NewTriangle recomputes the normal-Z component
// it actually needs from the vertices themselves.
func ReadBinary(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("stlio: open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Seek(headerSize, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("stlio: skip header: %w", err)
	}

	var count uint32
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, 0, fmt.Errorf("stlio: read triangle count: %w", err)
	}

	flat := make([]float32, int(count)*floatsPerTriangle)
	record := make([]byte, recordSize)

	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(f, record); err != nil {
			return nil, 0, fmt.Errorf("stlio: read triangle %d: %w", i, err)
		}
		base := int(i) * floatsPerTriangle
		for j := 0; j < floatsPerTriangle; j++ {
			off := 12 + j*4 // skip the 12-byte normal
			bits := binary.LittleEndian.Uint32(record[off : off+4])
			flat[base+j] = math.Float32frombits(bits)
		}
	}

	return flat, int(count), nil
}
