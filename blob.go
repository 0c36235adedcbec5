package linguist

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// BlobSuffix marks zstd-compressed catalogs.
const BlobSuffix = ".zst"

func decodeBlob(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// ReadBlob parses a zstd-compressed catalog.
func ReadBlob(r io.Reader, locale string) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseData(data, BlobSuffix, locale)
}

// WriteBlob writes d as a zstd-compressed catalog.
func WriteBlob(w io.Writer, d *Dictionary) error {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return err
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	if _, err := enc.Write(buf.Bytes()); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
