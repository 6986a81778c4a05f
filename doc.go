// Package columnio provides file, memory-mapped, and compressed stream
// I/O primitives for columnar data processing.
//
// The package is a facade over the subpackages; most programs only need
// the constructors here plus the interfaces in package stream.
//
// # Quick Start
//
// Reading a file with positioned, concurrency-safe reads:
//
//	in, _ := columnio.OpenInput("table.bin")
//	defer in.Close()
//	buf, _ := in.ReadBufferAt(offset, length)
//	defer buf.Release()
//
// Zero-copy reads through a memory map:
//
//	m, _ := columnio.OpenMemoryMap("table.bin", stream.ModeRead)
//	defer m.Close()
//	buf, _ := m.ReadBufferAt(offset, length) // aliases the mapping
//
// Transparent compression over any stream:
//
//	out, _ := columnio.OpenOutput("table.bin.zst", false)
//	cw, _ := columnio.NewCompressedOutput(codec.Zstd(), out)
//	cw.Write(payload)
//	cw.Close() // closes out too
//
// # Subpackages
//
//   - buffer: reference-counted byte buffers shared across streams
//   - stream: stream interfaces, error kinds, and helpers
//   - file: operating-system file streams
//   - mmap: memory-mapped file streams
//   - codec: compression codec registry (zstd, lz4, gzip, flate, s2)
//   - compress: compressed stream wrappers
package columnio
