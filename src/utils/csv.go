package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricing/src/models"
)

// ExportPricesToCsv writes pricing rows to outFile, creating the parent
// directory if needed.
func ExportPricesToCsv(rows []*models.PricedOptionDTO, outFile string) error {
	if len(rows) == 0 {
		return fmt.Errorf("ExportPricesToCsv: no rows to export")
	}

	outDir := filepath.Dir(outFile)
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("ExportPricesToCsv: failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("ExportPricesToCsv: failed to create %s: %w", outFile, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportPricesToCsv: failed to marshal csv: %w", err)
	}

	log.Infof("exported %d rows to %s", len(rows), outFile)

	return nil
}
