package main

import (
	"os"

	"github.com/dvapelnik/parse-torrent-file/magnet"
	"github.com/dvapelnik/parse-torrent-file/torrentfile"
	"github.com/dvapelnik/parse-torrent-file/util"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	if len(os.Args) < 2 {
		logger.Fatal("usage: parse-torrent-file <torrent path or magnet link>")
	}
	in := os.Args[1]

	var m *torrentfile.Metadata
	var err error
	if util.IsURL(in) {
		m, err = magnet.Parse(in)
		if err != nil {
			logger.WithError(err).Fatal("Error parsing magnet link")
		}
	} else {
		var data []byte
		data, err = os.ReadFile(in)
		if err != nil {
			logger.WithError(err).Fatal("Error reading torrent file")
		}
		m, err = torrentfile.Decode(data)
		if err != nil {
			logger.WithError(err).Fatal("Error parsing torrent file")
		}
	}

	logger.Infof("Name: %s", m.Name)
	logger.Infof("Hash: %s", m.HexHash())
	if len(m.Pieces) > 0 {
		logger.Infof("Size: %s (%d pieces of %s)", util.FormatBytes(m.Length), len(m.Pieces), util.FormatBytes(m.PieceLength))
	}
	for _, tier := range m.AnnounceList {
		for _, tracker := range tier {
			logger.Infof("Tracker: %s", tracker)
		}
	}
	for _, seed := range m.URLList {
		logger.Infof("Web seed: %s", seed)
	}
	for _, f := range m.Files {
		logger.Infof("File: %s (%s)", f.Path, util.FormatBytes(f.Length))
	}
}
