package torrentfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInfoAcceptsNameUTF8(t *testing.T) {
	info := map[string]interface{}{
		"name.utf-8":   "a.txt",
		"piece length": int64(16384),
		"pieces":       "aabbccddeeffgghhiijj",
		"length":       int64(100),
	}
	assert.NoError(t, validateInfo(info))
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	tests := map[string]struct {
		info map[string]interface{}
		path string
	}{
		"name is not a byte string": {
			info: map[string]interface{}{
				"name": int64(7), "piece length": int64(16384),
				"pieces": "aabbccddeeffgghhiijj", "length": int64(100),
			},
			path: "info.name",
		},
		"piece length is not an integer": {
			info: map[string]interface{}{
				"name": "a.txt", "piece length": "16384",
				"pieces": "aabbccddeeffgghhiijj", "length": int64(100),
			},
			path: "info['piece length']",
		},
		"length is not an integer": {
			info: map[string]interface{}{
				"name": "a.txt", "piece length": int64(16384),
				"pieces": "aabbccddeeffgghhiijj", "length": "100",
			},
			path: "info.length",
		},
		"file path is empty": {
			info: map[string]interface{}{
				"name": "dir", "piece length": int64(16384),
				"pieces": "aabbccddeeffgghhiijj",
				"files": []interface{}{
					map[string]interface{}{"length": int64(1), "path": []interface{}{}},
				},
			},
			path: "info.files[0].path",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := validateInfo(test.info)
			var missing *MissingFieldError
			if assert.ErrorAs(t, err, &missing) {
				assert.Equal(t, test.path, missing.Path)
			}
		})
	}
}

func TestMissingFieldErrorMessage(t *testing.T) {
	err := &MissingFieldError{Path: "info.pieces"}
	assert.Equal(t, "invalid torrent: missing field info.pieces", err.Error())
}
