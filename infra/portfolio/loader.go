package portfolio

import (
	"encoding/json"
	"fmt"
	"os"

	"folio/domain"
)

// Load reads the portfolio data file. The returned record is treated as
// read-only by every view; the file is owned by whoever generates it.
func Load(path string) (domain.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Portfolio{}, fmt.Errorf("reading portfolio %s: %w", path, err)
	}
	var p domain.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Portfolio{}, fmt.Errorf("parsing portfolio: %w", err)
	}
	return p, nil
}
