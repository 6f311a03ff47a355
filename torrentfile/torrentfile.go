// Package torrentfile converts between the canonical bencoded torrent
// metadata blob and a normalized Metadata value, preserving the exact
// info hash used by the protocol.
package torrentfile

import (
	"encoding/hex"
	"time"
)

// Metadata is the convenience representation of a torrent file. The raw
// info dictionary is retained verbatim from decoding so that re-encoding
// reproduces the exact bytes the info hash was computed over; everything
// below it is derived and never fed back into the wire form.
type Metadata struct {
	// Info is the raw info dictionary exactly as validated and hashed.
	// Mutating it invalidates InfoHash.
	Info     map[string]interface{}
	InfoHash [20]byte

	Name         string
	Private      bool
	Publisher    string
	PublisherURL string
	Creator      string
	Created      time.Time
	Encoding     string
	Comment      string

	// AnnounceList holds tracker URLs grouped into fallback tiers;
	// Announce is the same URLs flattened in tier order.
	AnnounceList [][]string
	Announce     []string

	// URLList holds web seed URLs.
	URLList []string

	// Derived layout of the concatenated file content.
	Files           []FileEntry
	Length          int64
	PieceLength     int64
	LastPieceLength int64

	// Pieces holds one lowercase hex hash per piece, in buffer order.
	Pieces []string
}

// FileEntry is one file within the torrent's virtual content stream.
type FileEntry struct {
	Path   string // relative path, "/" separated
	Name   string // final path component
	Length int64
	Offset int64 // position of the file's first byte in the stream
}

// HexHash returns the info hash as a lowercase hex string.
func (m *Metadata) HexHash() string {
	return hex.EncodeToString(m.InfoHash[:])
}
