package torrentfile

import (
	"crypto/sha1"
	"time"

	"github.com/zeebo/bencode"
)

// Decode parses a raw torrent metadata blob into a Metadata value.
func Decode(data []byte) (*Metadata, error) {
	var root map[string]interface{}
	if err := bencode.DecodeBytes(data, &root); err != nil {
		return nil, err
	}
	return DecodeDict(root)
}

// DecodeDict converts an already-parsed top-level dictionary. The info
// dictionary is retained on the result verbatim and the info hash is the
// digest of its canonical re-encoding; since bencode dictionaries encode
// with sorted keys, that re-encoding is byte-identical to the source.
func DecodeDict(root map[string]interface{}) (*Metadata, error) {
	if err := validate(root); err != nil {
		return nil, err
	}
	info := root["info"].(map[string]interface{})

	infoBytes, err := bencode.EncodeBytes(info)
	if err != nil {
		return nil, err
	}

	m := &Metadata{
		Info:     info,
		InfoHash: sha1.Sum(infoBytes),
		Name:     displayName(info),
		Private:  privateFlag(info["private"]),
		Encoding: "UTF-8",
	}

	if s, ok := root["encoding"].(string); ok && s != "" {
		m.Encoding = s
	}
	if s, ok := root["comment"].(string); ok {
		m.Comment = s
	}
	if s, ok := root["publisher"].(string); ok {
		m.Publisher = s
	}
	if s, ok := root["publisher-url"].(string); ok {
		m.PublisherURL = s
	}
	if s, ok := root["created by"].(string); ok {
		m.Creator = s
	}
	if secs, ok := asInt(root["creation date"]); ok {
		m.Created = time.Unix(secs, 0)
	}

	m.AnnounceList = announceTiers(root)
	for _, tier := range m.AnnounceList {
		m.Announce = append(m.Announce, tier...)
	}
	m.URLList = webSeeds(root["url-list"])

	m.Files, m.Length, m.LastPieceLength, m.PieceLength, err = buildLayout(info)
	if err != nil {
		return nil, err
	}

	rawPieces, _ := info["pieces"].(string)
	m.Pieces = splitPieces([]byte(rawPieces), m.Encoding)

	return m, nil
}

// announceTiers normalizes announce-list, falling back to a single tier
// built from announce when the list is absent or empty.
func announceTiers(root map[string]interface{}) [][]string {
	raw, ok := root["announce-list"].([]interface{})
	if !ok || len(raw) == 0 {
		if s, ok := root["announce"].(string); ok && s != "" {
			return [][]string{{s}}
		}
		return nil
	}

	var tiers [][]string
	for _, t := range raw {
		entries, ok := t.([]interface{})
		if !ok {
			continue
		}
		var tier []string
		for _, e := range entries {
			if s, ok := e.(string); ok {
				tier = append(tier, s)
			}
		}
		if len(tier) > 0 {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// webSeeds normalizes url-list, which some clients write as a single
// byte-string instead of a list. A present-but-empty string means an empty
// list, not a list of one empty URL.
func webSeeds(v interface{}) []string {
	switch u := v.(type) {
	case string:
		if u == "" {
			return nil
		}
		return []string{u}
	case []interface{}:
		var urls []string
		for _, e := range u {
			if s, ok := e.(string); ok {
				urls = append(urls, s)
			}
		}
		return urls
	}
	return nil
}

// privateFlag reads the private marker, which appears in the wild as an
// integer, a string or a bool.
func privateFlag(v interface{}) bool {
	switch p := v.(type) {
	case int64:
		return p != 0
	case int:
		return p != 0
	case string:
		return p != "" && p != "0"
	case bool:
		return p
	}
	return false
}
