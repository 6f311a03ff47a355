package torrentfile

import "fmt"

// MissingFieldError reports the first required field that is absent, empty
// or of the wrong type. Path names the checked key in dotted/bracket
// notation, e.g. "info.files[0].length".
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("invalid torrent: missing field %s", e.Path)
}

// validate checks a parsed top-level dictionary before any derived
// computation runs. Decode and encode share the same checks.
func validate(root map[string]interface{}) error {
	info, ok := root["info"].(map[string]interface{})
	if !ok {
		return &MissingFieldError{Path: "info"}
	}
	return validateInfo(info)
}

func validateInfo(info map[string]interface{}) error {
	if displayName(info) == "" {
		return &MissingFieldError{Path: "info.name"}
	}
	if _, ok := asInt(info["piece length"]); !ok {
		return &MissingFieldError{Path: "info['piece length']"}
	}
	if _, ok := info["pieces"].(string); !ok {
		return &MissingFieldError{Path: "info.pieces"}
	}

	rawFiles, multi := info["files"].([]interface{})
	if !multi {
		// Single file mode
		if _, ok := asInt(info["length"]); !ok {
			return &MissingFieldError{Path: "info.length"}
		}
		return nil
	}

	for i, rf := range rawFiles {
		entry, _ := rf.(map[string]interface{})
		if _, ok := asInt(entry["length"]); !ok {
			return &MissingFieldError{Path: fmt.Sprintf("info.files[%d].length", i)}
		}
		if len(pathComponents(entry)) == 0 {
			return &MissingFieldError{Path: fmt.Sprintf("info.files[%d].path", i)}
		}
	}
	return nil
}

// displayName prefers the name.utf-8 spelling some clients write.
func displayName(info map[string]interface{}) string {
	if s, ok := info["name.utf-8"].(string); ok && s != "" {
		return s
	}
	s, _ := info["name"].(string)
	return s
}

// asInt reads a bencode integer out of a dynamic value. The codec decodes
// integers as int64, but dictionaries assembled by callers may hold int.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}
