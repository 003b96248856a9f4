package container

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/hydrokit/pixml/errs"
)

var payload = []byte(`<TimeSeries version="1.2"><timeZone>0.0</timeZone></TimeSeries>`)

func gzipWrap(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func zipWrap(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func zstdWrap(t *testing.T, data []byte) []byte {
	t.Helper()
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer encoder.Close()

	return encoder.EncodeAll(data, nil)
}

func lz4Wrap(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"document.xml", TypeNone},
		{"document", TypeNone},
		{"document.xml.zip", TypeZip},
		{"DOCUMENT.XML.ZIP", TypeZip},
		{"document.xml.gz", TypeGzip},
		{"document.xml.gzip", TypeGzip},
		{"document.xml.zst", TypeZstd},
		{"document.xml.zstd", TypeZstd},
		{"document.xml.lz4", TypeLZ4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Detect(tc.name))
		})
	}
}

func TestUnwrap(t *testing.T) {
	t.Run("Bare", func(t *testing.T) {
		out, err := Unwrap("document.xml", payload)
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("Gzip", func(t *testing.T) {
		out, err := Unwrap("document.xml.gz", gzipWrap(t, payload))
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("Zip", func(t *testing.T) {
		out, err := Unwrap("document.xml.zip", zipWrap(t, map[string][]byte{"document.xml": payload}))
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("Zstd", func(t *testing.T) {
		out, err := Unwrap("document.xml.zst", zstdWrap(t, payload))
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("LZ4", func(t *testing.T) {
		out, err := Unwrap("document.xml.lz4", lz4Wrap(t, payload))
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("EmptyZip", func(t *testing.T) {
		_, err := Unwrap("document.xml.zip", zipWrap(t, nil))
		require.ErrorIs(t, err, errs.ErrEmptyContainer)
	})

	t.Run("CorruptGzip", func(t *testing.T) {
		_, err := Unwrap("document.xml.gz", []byte("not a gzip stream"))
		require.Error(t, err)
	})
}

func TestNewDecompressor(t *testing.T) {
	t.Run("AllTypes", func(t *testing.T) {
		for _, typ := range []Type{TypeNone, TypeZip, TypeGzip, TypeZstd, TypeLZ4} {
			d, err := NewDecompressor(typ)
			require.NoError(t, err)
			require.NotNil(t, d)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewDecompressor(Type(0xFF))
		require.ErrorIs(t, err, errs.ErrUnsupportedContainer)
	})
}

func TestOpen(t *testing.T) {
	t.Run("ReadsAndUnwraps", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "document.xml.gz")
		require.NoError(t, os.WriteFile(path, gzipWrap(t, payload), 0o644))

		out, err := Open(path)
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "absent.xml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
