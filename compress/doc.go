// Package compress adapts a codec around an arbitrary stream, presenting
// the same stream contracts.
//
// OutputStream compresses written bytes and stages the compressed output
// in 64KB chunks before flushing to the raw stream. InputStream
// decompresses on demand, reading the raw stream in 64KB chunks; a
// stream made of several concatenated compression frames decodes
// transparently, and input that ends mid-frame is reported as a
// truncated-stream I/O error.
//
// Writer-side operations are serialized internally; the reader side is
// meant for a single goroutine per instance.
package compress
