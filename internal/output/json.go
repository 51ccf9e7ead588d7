package output

import (
	json "github.com/goccy/go-json"

	"github.com/nwgo/networth-projector/internal/domain"
)

// JSONFormatter serializes the projection as pretty-printed JSON, the same
// record shape the HTTP API returns.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(records []domain.YearRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}
