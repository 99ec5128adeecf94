// Package export flattens evaluation output into tabular form.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dynastybot/internal/models"
)

var header = []string{"Player", "Position", "Fantasy_Score", "Peripheral_Score", "Value_Rating", "Confidence", "Flags"}

// WritePlayerValues writes one CSV row per evaluation, flags joined into a
// single comma-delimited field.
func WritePlayerValues(w io.Writer, values []models.PlayerValue) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, v := range values {
		row := []string{
			v.PlayerName,
			v.Position,
			strconv.FormatFloat(v.FantasyScore, 'f', 2, 64),
			strconv.FormatFloat(v.PeripheralScore, 'f', 2, 64),
			string(v.ValueRating),
			strconv.FormatFloat(v.Confidence, 'f', 2, 64),
			strings.Join(v.Flags, ", "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", v.PlayerName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
