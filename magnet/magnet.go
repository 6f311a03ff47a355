// Package magnet parses magnet links into the subset of torrent metadata
// a magnet link carries.
package magnet

import (
	"crypto/sha1"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/dvapelnik/parse-torrent-file/torrentfile"
)

const btihPrefix = "urn:btih:"

// Parse parses a magnet url and returns the partial metadata it describes:
// info hash, display name, trackers (one tier per tr parameter) and web
// seeds. No info dictionary is available, so the result cannot be
// re-encoded into a torrent file.
func Parse(s string) (*torrentfile.Metadata, error) {
	uri, err := url.Parse(s)
	if err != nil {
		return nil, err
	}

	if uri.Scheme != "magnet" {
		return nil, fmt.Errorf("expected scheme 'magnet' but got %v", uri.Scheme)
	}

	params := uri.Query()

	xt := params.Get("xt")
	if !strings.HasPrefix(xt, btihPrefix) {
		return nil, fmt.Errorf("magnet link has no btih hash")
	}
	hash, err := decodeHash(strings.TrimPrefix(xt, btihPrefix))
	if err != nil {
		return nil, err
	}

	m := &torrentfile.Metadata{
		Name:     params.Get("dn"),
		InfoHash: hash,
		URLList:  params["ws"],
	}
	for _, tr := range params["tr"] {
		m.AnnounceList = append(m.AnnounceList, []string{tr})
		m.Announce = append(m.Announce, tr)
	}
	return m, nil
}

// decodeHash accepts the two btih spellings: 40 hex characters or 32
// base32 characters.
func decodeHash(s string) ([20]byte, error) {
	var hash [20]byte

	var raw []byte
	var err error
	switch len(s) {
	case 2 * sha1.Size:
		raw, err = hex.DecodeString(s)
	case 32:
		raw, err = base32.StdEncoding.DecodeString(strings.ToUpper(s))
	default:
		return hash, fmt.Errorf("unexpected btih hash length %d", len(s))
	}
	if err != nil {
		return hash, err
	}

	copy(hash[:], raw)
	return hash, nil
}
