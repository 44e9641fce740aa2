package commands

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"

	"modelpickd/pkg/gpu"
	"modelpickd/pkg/logging"
)

// cliLogger returns a logger suitable for interactive use: warnings and
// errors only, so command output stays clean.
func cliLogger() logging.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}

// loadDatabase loads the reference database from the given path, or the
// embedded copy when the path is empty.
func loadDatabase(path string) (*gpu.Database, error) {
	if path != "" {
		db, err := gpu.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading GPU database: %w", err)
		}
		return db, nil
	}
	db, err := gpu.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("loading embedded GPU database: %w", err)
	}
	return db, nil
}

// formatMB renders a size in MB as a human-readable string.
func formatMB(mb float64) string {
	return units.BytesSize(mb * 1024 * 1024)
}
