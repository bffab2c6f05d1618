package fetch

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/net/html/charset"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// decompress wraps body according to Content-Encoding. The returned closer
// releases the decompressor, not body.
func decompress(body io.Reader, encoding string) (io.Reader, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return body, nopCloser{}, nil
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		return zr, zr, nil
	case "deflate":
		// Servers disagree on whether deflate means zlib-wrapped or raw.
		br := bufio.NewReader(body)
		if header, err := br.Peek(2); err == nil && isZlibHeader(header) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open deflate body: %w", err)
			}
			return zr, zr, nil
		}
		fr := flate.NewReader(br)
		return fr, fr, nil
	default:
		return nil, nil, fmt.Errorf("unsupported content encoding %q: %w", encoding, ogmi.ErrFetchFailed)
	}
}

func isZlibHeader(b []byte) bool {
	cmf, flg := b[0], b[1]
	return cmf&0x0f == 8 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// readDocument reads at most limit bytes of body and converts them to UTF-8.
// The encoding comes from contentType, a BOM, or a meta charset declaration
// in the first kilobyte, in that order.
func readDocument(body io.Reader, contentType string, limit int64) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(raw)) > limit {
		return "", fmt.Errorf("document exceeds %d bytes: %w", limit, ogmi.ErrFetchFailed)
	}

	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to decode charset: %w", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode charset: %w", err)
	}
	return string(text), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
