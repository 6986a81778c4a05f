// Package stream defines the byte-stream contracts shared by file,
// memory-mapped and compressed I/O: InputStream, OutputStream and
// RandomAccessFile, plus the error kinds every implementation reports.
//
// Read semantics follow positioned-I/O conventions rather than io.Reader:
// a short count with a nil error means the source is exhausted, and a
// zero count means end of stream. AsReader adapts an InputStream to a
// plain io.Reader for interoperation with the standard library.
//
// The package also carries two cross-cutting safety nets: a debug-only
// shared/exclusive access checker (build tag "iodebug") and
// CloseOnFinalize, which closes leaked streams during garbage collection,
// logging instead of propagating teardown errors.
package stream
