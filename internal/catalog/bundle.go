package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format names a bundle encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Bundle is the on-disk content file: page chrome plus the ordered items.
type Bundle struct {
	Site  Site   `json:"site" msgpack:"site"`
	Items []Item `json:"items" msgpack:"items"`
}

// DefaultBundle returns the shipped content.
func DefaultBundle() Bundle {
	return Bundle{Site: DefaultSite(), Items: Defaults()}
}

// Catalog builds the immutable store from the bundle's items.
func (b Bundle) Catalog() (*Catalog, error) {
	return New(b.Items...)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp", "mpk":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Decode reads a bundle in the given format.
func Decode(r io.Reader, f Format) (Bundle, error) {
	var b Bundle
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&b); err != nil {
			return Bundle{}, fmt.Errorf("decode json bundle: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&b); err != nil {
			return Bundle{}, fmt.Errorf("decode msgpack bundle: %w", err)
		}
	default:
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return b, nil
}

// Encode writes a bundle in the given format.
func Encode(w io.Writer, b Bundle, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(b)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// LoadFile reads a bundle, choosing the format by extension.
func LoadFile(path string) (Bundle, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Bundle{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return Bundle{}, err
	}
	defer fh.Close()
	return Decode(fh, f)
}

// SaveFile writes a bundle atomically.
func SaveFile(path string, b Bundle, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir bundle dir: %w", err)
	}
	tmp := path + ".tmp"
	fh, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Encode(fh, b, f); err != nil {
		_ = fh.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := fh.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
