package torrentfile

import (
	"fmt"
	"path"
	"strings"
)

// buildLayout computes the per-file byte layout of the torrent content.
// Multi-file torrents root every path at the torrent name and assign each
// file the running sum of the preceding lengths as its offset; single-file
// torrents get one synthetic entry at offset 0. Length values are re-read
// here rather than trusted from validation, so a non-numeric length still
// fails instead of being coerced to zero.
func buildLayout(info map[string]interface{}) (files []FileEntry, total, lastPiece, pieceLen int64, err error) {
	pieceLen, _ = asInt(info["piece length"])
	name := displayName(info)

	rawFiles, multi := info["files"].([]interface{})
	if multi {
		files = make([]FileEntry, 0, len(rawFiles))
		var offset int64
		for i, rf := range rawFiles {
			entry, _ := rf.(map[string]interface{})
			length, ok := asInt(entry["length"])
			if !ok {
				return nil, 0, 0, 0, &MissingFieldError{Path: fmt.Sprintf("info.files[%d].length", i)}
			}

			parts := append([]string{name}, pathComponents(entry)...)
			p := strings.TrimPrefix(path.Join(parts...), "/")
			files = append(files, FileEntry{
				Path:   p,
				Name:   path.Base(p),
				Length: length,
				Offset: offset,
			})
			offset += length
		}
		total = offset
	} else {
		length, ok := asInt(info["length"])
		if !ok {
			return nil, 0, 0, 0, &MissingFieldError{Path: "info.length"}
		}
		files = []FileEntry{{Path: name, Name: name, Length: length}}
		total = length
	}

	if pieceLen > 0 && len(files) > 0 {
		last := files[len(files)-1]
		lastPiece = (last.Offset + last.Length) % pieceLen
		// The final piece is never recorded as zero-length.
		if lastPiece == 0 {
			lastPiece = pieceLen
		}
	}
	return files, total, lastPiece, pieceLen, nil
}

// pathComponents prefers the path.utf-8 spelling some clients write.
func pathComponents(entry map[string]interface{}) []string {
	raw, ok := entry["path.utf-8"].([]interface{})
	if !ok {
		raw, _ = entry["path"].([]interface{})
	}

	components := make([]string, 0, len(raw))
	for _, c := range raw {
		if s, ok := c.(string); ok {
			components = append(components, s)
		}
	}
	return components
}
