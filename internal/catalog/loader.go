package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/pkg/logger"
)

// Load reads the sensor catalog from a CSV file with a header row. Every
// column is optional per row; malformed cells degrade to missing values
// rather than failing the load.
func Load(path string) ([]SensorRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file %s is empty", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	records := make([]SensorRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		record := SensorRecord{
			Name:          cell("name"),
			Type:          cell("type"),
			Features:      cell("features"),
			IPRating:      cell("ip_rating"),
			OperatingTemp: cell("operating_temp"),
			Range:         cell("range"),
			Precision:     cell("precision"),
		}

		if raw := cell("power_consumption"); raw != "" {
			if power, err := strconv.ParseFloat(raw, 64); err == nil {
				record.PowerConsumption = &power
			}
		}

		record.CompatibleModules = ParseModules(cell("compatible_modules"))
		record.SearchText = BuildSearchText(&record)

		records = append(records, record)
	}

	logger.Info("Sensor catalog loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	return records, nil
}
