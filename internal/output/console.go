package output

import (
	"bytes"
	"fmt"

	"github.com/nwgo/networth-projector/internal/domain"
)

// ConsoleFormatter renders the projection as an aligned text table, one
// row per simulated year. Past years (no breakdowns) are collapsed into a
// single note line to keep lifetime horizons readable.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(records []domain.YearRecord) ([]byte, error) {
	buf := &bytes.Buffer{}

	skipped := 0
	for _, rec := range records {
		if rec.AssetBalances == nil && rec.TotalAssets.IsZero() {
			skipped++
			continue
		}
		break
	}
	if skipped > 0 {
		fmt.Fprintf(buf, "(%d past years omitted)\n\n", skipped)
	}

	fmt.Fprintf(buf, "%-6s %-4s %16s %16s %16s\n", "YEAR", "AGE", "NET WORTH", "PENSIONS", "DRAWDOWNS")
	fmt.Fprintln(buf, "------ ---- ---------------- ---------------- ----------------")

	for _, rec := range records[skipped:] {
		pensions := sumValues(rec.PensionIncomes)
		drawdowns := sumValues(rec.AssetDrawdowns)
		fmt.Fprintf(buf, "%-6d %-4d %16s %16s %16s\n",
			rec.Year, rec.Age,
			rec.TotalAssets.StringFixed(2),
			pensions.StringFixed(2),
			drawdowns.StringFixed(2))
	}

	return buf.Bytes(), nil
}
