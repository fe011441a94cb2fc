package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	compressionAuto = "auto"
	compressionNone = "none"
	compressionGzip = "gzip"
	compressionZstd = "zstd"
	compressionLZ4  = "lz4"
)

var compressions = []string{
	compressionAuto,
	compressionNone,
	compressionGzip,
	compressionZstd,
	compressionLZ4,
}

// detectCompression guesses the compression of a file from its extension.
func detectCompression(path string) string {
	switch filepath.Ext(path) {
	case ".gz", ".gzip":
		return compressionGzip
	case ".zst", ".zstd":
		return compressionZstd
	case ".lz4":
		return compressionLZ4
	default:
		return compressionNone
	}
}

// decompress wraps r with a decompressing reader.
func decompress(r io.Reader, compression string) (io.ReadCloser, error) {
	switch compression {
	case compressionNone:
		return io.NopCloser(r), nil
	case compressionGzip:
		return gzip.NewReader(r)
	case compressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case compressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCompression, compression)
	}
}

type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() (err error) {
	for i := len(in.closers) - 1; i >= 0; i-- {
		if e := in.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}

// openInput opens path, or stdin when path is empty or "-", decompressing it as needed.
func openInput(path string, compression string, stdin io.Reader) (*input, error) {
	in := input{Reader: stdin}
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		in.Reader = f
		in.closers = append(in.closers, f)
	}
	if compression == compressionAuto {
		compression = detectCompression(path)
	}
	r, err := decompress(in.Reader, compression)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("failed to open %s input: %w", compression, err)
	}
	in.Reader = r
	in.closers = append(in.closers, r)
	return &in, nil
}
