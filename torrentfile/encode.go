package torrentfile

import (
	"time"

	"github.com/zeebo/bencode"
)

// Encode serializes a Metadata value back into the canonical blob. When
// Created is unset the creation date defaults to the current time; use
// EncodeAt to pin the clock.
func Encode(m *Metadata) ([]byte, error) {
	return EncodeAt(m, time.Now())
}

// EncodeAt reconstructs the wire dictionary from the retained info
// dictionary plus the top-level scalar and list fields, and serializes it.
// The derived fields (Files, Length, Pieces, LastPieceLength, Name) are
// ignored entirely, which keeps the info hash stable no matter how the
// caller mutated them since decoding.
func EncodeAt(m *Metadata, now time.Time) ([]byte, error) {
	if m.Info == nil {
		return nil, &MissingFieldError{Path: "info"}
	}
	if err := validateInfo(m.Info); err != nil {
		return nil, err
	}

	info := m.Info
	// The private flag on Metadata overrides the retained value, but only
	// when it is set or the key was already present; adding private=0 to a
	// torrent that never carried it would change the info hash.
	if m.Private {
		info = cloneDict(info)
		info["private"] = int64(1)
	} else if _, ok := info["private"]; ok {
		info = cloneDict(info)
		info["private"] = int64(0)
	}

	out := map[string]interface{}{"info": info}

	if len(m.AnnounceList) > 0 {
		out["announce-list"] = m.AnnounceList
		for _, tier := range m.AnnounceList {
			if len(tier) > 0 {
				out["announce"] = tier[0]
				break
			}
		}
	}
	if len(m.URLList) > 0 {
		out["url-list"] = m.URLList
	}
	if m.Comment != "" {
		out["comment"] = m.Comment
	}
	if m.Encoding != "" {
		out["encoding"] = m.Encoding
	}
	if m.Publisher != "" {
		out["publisher"] = m.Publisher
	}
	if m.PublisherURL != "" {
		out["publisher-url"] = m.PublisherURL
	}
	if m.Creator != "" {
		out["created by"] = m.Creator
	}

	created := m.Created
	if created.IsZero() {
		created = now
	}
	out["creation date"] = created.Unix()

	return bencode.EncodeBytes(out)
}

func cloneDict(d map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
