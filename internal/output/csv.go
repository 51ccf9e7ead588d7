package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/nwgo/networth-projector/internal/domain"
)

// CSVFormatter exports the projection with one row per year: fixed
// year/age/total columns followed by one balance column per asset, one
// income column per pension, and one drawdown column per asset with a
// withdrawal policy. Column sets are derived from the union of all
// records so every row has the same shape.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(records []domain.YearRecord) ([]byte, error) {
	assetNames := collectKeys(records, func(r domain.YearRecord) map[string]decimal.Decimal { return r.AssetBalances })
	pensionNames := collectKeys(records, func(r domain.YearRecord) map[string]decimal.Decimal { return r.PensionIncomes })
	drawdownNames := collectKeys(records, func(r domain.YearRecord) map[string]decimal.Decimal { return r.AssetDrawdowns })

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"year", "age", "total_assets"}
	for _, name := range assetNames {
		header = append(header, "balance:"+name)
	}
	for _, name := range pensionNames {
		header = append(header, "pension:"+name)
	}
	for _, name := range drawdownNames {
		header = append(header, "drawdown:"+name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Age),
			rec.TotalAssets.StringFixed(2),
		}
		row = appendValues(row, rec.AssetBalances, assetNames)
		row = appendValues(row, rec.PensionIncomes, pensionNames)
		row = appendValues(row, rec.AssetDrawdowns, drawdownNames)
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func collectKeys(records []domain.YearRecord, pick func(domain.YearRecord) map[string]decimal.Decimal) []string {
	seen := make(map[string]bool)
	for _, rec := range records {
		for name := range pick(rec) {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appendValues(row []string, values map[string]decimal.Decimal, names []string) []string {
	for _, name := range names {
		row = append(row, values[name].StringFixed(2))
	}
	return row
}

func sumValues(values map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
