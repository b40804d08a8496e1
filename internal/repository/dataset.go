package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spacex_dashboard/internal/models"

	"github.com/montanaflynn/stats"
)

// Dataset is the immutable launch table plus summaries computed at load time.
type Dataset struct {
	records []models.LaunchRecord
	bounds  models.PayloadRange
	sites   []string
}

// Ensure Dataset satisfies LaunchRepo at compile time.
var _ LaunchRepo = (*Dataset)(nil)

// Summary describes a dataset for startup diagnostics.
type Summary struct {
	Rows          int
	ClassCounts   map[int]int
	Sites         []string
	PayloadBounds models.PayloadRange
}

// LoadDataset reads the launch table at path. Files ending in .xlsx are read
// as Excel workbooks; anything else is parsed as CSV.
func LoadDataset(ctx context.Context, path string) (*Dataset, error) {
	var (
		records []models.LaunchRecord
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readXLSX(ctx, path)
	default:
		records, err = readCSVFile(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	ds, err := NewDataset(records)
	if err != nil {
		return nil, loadErr(path, "summarize payload", err)
	}
	return ds, nil
}

// NewDataset copies records into an immutable Dataset.
func NewDataset(records []models.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no rows")
	}

	owned := make([]models.LaunchRecord, len(records))
	copy(owned, records)

	payloads := make([]float64, len(owned))
	seen := make(map[string]struct{})
	var sites []string
	for i, r := range owned {
		payloads[i] = r.PayloadMassKg
		if _, ok := seen[r.Site]; !ok {
			seen[r.Site] = struct{}{}
			sites = append(sites, r.Site)
		}
	}

	lo, err := stats.Min(payloads)
	if err != nil {
		return nil, fmt.Errorf("min payload: %w", err)
	}
	hi, err := stats.Max(payloads)
	if err != nil {
		return nil, fmt.Errorf("max payload: %w", err)
	}

	return &Dataset{
		records: owned,
		bounds:  models.PayloadRange{Low: lo, High: hi},
		sites:   sites,
	}, nil
}

// Records returns a copy of every row, so callers cannot alter the table.
func (d *Dataset) Records() []models.LaunchRecord {
	out := make([]models.LaunchRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Len is the number of rows.
func (d *Dataset) Len() int { return len(d.records) }

// PayloadBounds is the [min, max] payload mass over all rows.
func (d *Dataset) PayloadBounds() models.PayloadRange { return d.bounds }

// Sites lists distinct launch sites in first-seen order.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// Summary counts rows, classes and sites for the startup log.
func (d *Dataset) Summary() Summary {
	counts := make(map[int]int)
	for _, r := range d.records {
		counts[r.Class]++
	}
	sites := d.Sites()
	sort.Strings(sites)
	return Summary{
		Rows:          len(d.records),
		ClassCounts:   counts,
		Sites:         sites,
		PayloadBounds: d.bounds,
	}
}

func openForRead(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, "open file", err)
	}
	return f, nil
}
