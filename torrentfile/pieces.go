package torrentfile

import (
	"encoding/hex"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
)

const pieceHashSize = 20

// splitPieces cuts the pieces buffer into 20-byte strides and returns one
// lowercase hex hash per stride. The buffer is first reinterpreted through
// the torrent's declared text encoding, which is how historical clients
// read it; that is only lossless for encodings that preserve the source
// bytes, so hashes decoded under other charsets come out mangled. A buffer
// that is not a multiple of 20 bytes after reinterpretation still yields
// its trailing partial slice, with a warning instead of an error.
func splitPieces(buf []byte, encodingLabel string) []string {
	buf = reinterpret(buf, encodingLabel)
	if len(buf) == 0 {
		return nil
	}
	if len(buf)%pieceHashSize != 0 {
		logrus.WithFields(logrus.Fields{
			"length":   len(buf),
			"encoding": encodingLabel,
		}).Warn("pieces buffer length is not a multiple of 20, torrent may be corrupt")
	}

	pieces := make([]string, 0, (len(buf)+pieceHashSize-1)/pieceHashSize)
	for i := 0; i < len(buf); i += pieceHashSize {
		end := i + pieceHashSize
		if end > len(buf) {
			end = len(buf)
		}
		pieces = append(pieces, hex.EncodeToString(buf[i:end]))
	}
	return pieces
}

// reinterpret runs buf through the decoder for the named charset. Unknown
// labels and transform failures fall back to the raw bytes.
func reinterpret(buf []byte, label string) []byte {
	enc, err := htmlindex.Get(normalizeEncodingLabel(label))
	if err != nil {
		return buf
	}
	decoded, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return buf
	}
	return decoded
}

// normalizeEncodingLabel lowercases a charset label and strips punctuation,
// so "UTF-8", "utf8" and "Utf_8" all resolve the same way.
func normalizeEncodingLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
