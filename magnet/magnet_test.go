package magnet

import (
	"encoding/base32"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubuntuHash = "2d066c94480adcf52bfd1185a75eb4ddc1777673"

func TestParse(t *testing.T) {
	m, err := Parse("magnet:?xt=urn:btih:" + ubuntuHash +
		"&dn=ubuntu-14.04.1-server-amd64.iso" +
		"&tr=http%3A%2F%2Ftorrent.ubuntu.com%3A6969%2Fannounce" +
		"&tr=http%3A%2F%2Fipv6.torrent.ubuntu.com%3A6969%2Fannounce" +
		"&ws=http%3A%2F%2Freleases.ubuntu.com%2Fubuntu.iso")
	require.NoError(t, err)

	assert.Equal(t, ubuntuHash, m.HexHash())
	assert.Equal(t, "ubuntu-14.04.1-server-amd64.iso", m.Name)
	assert.Equal(t, [][]string{
		{"http://torrent.ubuntu.com:6969/announce"},
		{"http://ipv6.torrent.ubuntu.com:6969/announce"},
	}, m.AnnounceList)
	assert.Equal(t, []string{
		"http://torrent.ubuntu.com:6969/announce",
		"http://ipv6.torrent.ubuntu.com:6969/announce",
	}, m.Announce)
	assert.Equal(t, []string{"http://releases.ubuntu.com/ubuntu.iso"}, m.URLList)
}

func TestParseBase32Hash(t *testing.T) {
	raw, err := hex.DecodeString(ubuntuHash)
	require.NoError(t, err)
	b32 := base32.StdEncoding.EncodeToString(raw)

	m, err := Parse("magnet:?xt=urn:btih:" + b32)
	require.NoError(t, err)
	assert.Equal(t, ubuntuHash, m.HexHash())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"wrong scheme":    "http://example.com/file.torrent",
		"missing xt":      "magnet:?dn=name-only",
		"wrong urn":       "magnet:?xt=urn:sha1:" + ubuntuHash,
		"bad hash length": "magnet:?xt=urn:btih:abcdef",
		"bad hex":         "magnet:?xt=urn:btih:zz066c94480adcf52bfd1185a75eb4ddc1777673",
	}
	for name, link := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(link)
			assert.Error(t, err)
		})
	}
}
