package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"spacex_dashboard/internal/models"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// Column headers of the launch table.
const (
	colFlightNumber    = "Flight Number"
	colLaunchSite      = "Launch Site"
	colPayloadMass     = "Payload Mass (kg)"
	colClass           = "class"
	colBoosterVersion  = "Booster Version"
	colBoosterCategory = "Booster Version Category"
)

var requiredColumns = []string{colLaunchSite, colPayloadMass, colClass, colBoosterCategory}

// columnTypes pins numeric columns so the frame never guesses them as strings.
var columnTypes = map[string]interface{}{
	colFlightNumber: int64(0),
	colPayloadMass:  float64(0),
	colClass:        int64(0),
}

func readCSVFile(ctx context.Context, path string) ([]models.LaunchRecord, error) {
	f, err := openForRead(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readCSV(ctx, path, f)
}

// readCSV parses a launch table. path is only used in error messages.
func readCSV(ctx context.Context, path string, r io.ReadSeeker) ([]models.LaunchRecord, error) {
	header, offset, err := readHeader(r)
	if err != nil {
		return nil, loadErr(path, "read header", err)
	}
	if err := checkColumns(header); err != nil {
		return nil, loadErr(path, "validate header", err)
	}
	body, err := withHeader(r, header, offset)
	if err != nil {
		return nil, loadErr(path, "rewind", err)
	}

	dictated := make(map[string]interface{})
	for _, name := range header {
		if typ, ok := columnTypes[name]; ok {
			dictated[name] = typ
		}
	}

	df, err := imports.LoadFromCSV(ctx, body, imports.CSVLoadOptions{
		TrimLeadingSpace: true,
		DictateDataType:  dictated,
	})
	if err != nil {
		return nil, loadErr(path, "parse rows", err)
	}

	records, err := recordsFromFrame(df)
	if err != nil {
		return nil, loadErr(path, "convert rows", err)
	}
	return records, nil
}

// readHeader returns the cleaned column names and the byte offset where the
// data rows start.
func readHeader(r io.Reader) ([]string, int64, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.New("file is empty")
		}
		return nil, 0, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	return header, cr.InputOffset(), nil
}

// withHeader replaces the first line of r with header, so the frame's series
// carry the same names checkColumns saw.
func withHeader(r io.ReadSeeker, header []string, offset int64) (io.ReadSeeker, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func checkColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// frameColumns maps each launch field to its series index; -1 when absent.
type frameColumns struct {
	flight, site, payload, class, booster, category int
}

func lookupColumns(df *dataframe.DataFrame) (frameColumns, error) {
	find := func(name string, required bool) (int, error) {
		idx, err := df.NameToColumn(name)
		if err != nil {
			if required {
				return -1, fmt.Errorf("%w: %s", ErrMissingColumn, name)
			}
			return -1, nil
		}
		return idx, nil
	}

	var (
		cols frameColumns
		err  error
	)
	if cols.site, err = find(colLaunchSite, true); err != nil {
		return cols, err
	}
	if cols.payload, err = find(colPayloadMass, true); err != nil {
		return cols, err
	}
	if cols.class, err = find(colClass, true); err != nil {
		return cols, err
	}
	if cols.category, err = find(colBoosterCategory, true); err != nil {
		return cols, err
	}
	cols.flight, _ = find(colFlightNumber, false)
	cols.booster, _ = find(colBoosterVersion, false)
	return cols, nil
}

func recordsFromFrame(df *dataframe.DataFrame) ([]models.LaunchRecord, error) {
	cols, err := lookupColumns(df)
	if err != nil {
		return nil, err
	}

	n := df.NRows()
	out := make([]models.LaunchRecord, 0, n)
	for row := 0; row < n; row++ {
		// data rows start on line 2 of the file
		line := row + 2

		site, err := stringAt(df, cols.site, row)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, colLaunchSite, err)
		}
		payload, err := floatAt(df, cols.payload, row)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, colPayloadMass, err)
		}
		if payload < 0 {
			return nil, fmt.Errorf("line %d %q: negative payload %v", line, colPayloadMass, payload)
		}
		class, err := intAt(df, cols.class, row)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, colClass, err)
		}
		if class != models.ClassSuccess && class != models.ClassFailure {
			return nil, fmt.Errorf("line %d %q: class must be 0 or 1, got %d", line, colClass, class)
		}
		category, err := stringAt(df, cols.category, row)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", line, colBoosterCategory, err)
		}

		rec := models.LaunchRecord{
			Site:            site,
			PayloadMassKg:   payload,
			Class:           class,
			BoosterCategory: category,
		}
		if cols.flight >= 0 {
			if v, err := intAt(df, cols.flight, row); err == nil {
				rec.FlightNumber = v
			}
		}
		if cols.booster >= 0 {
			if v, err := stringAt(df, cols.booster, row); err == nil {
				rec.BoosterVersion = v
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

var errMissingValue = errors.New("missing value")

func stringAt(df *dataframe.DataFrame, col, row int) (string, error) {
	switch v := df.Series[col].Value(row).(type) {
	case nil:
		return "", errMissingValue
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", errMissingValue
		}
		return s, nil
	default:
		return fmt.Sprint(v), nil
	}
}

func floatAt(df *dataframe.DataFrame, col, row int) (float64, error) {
	switch v := df.Series[col].Value(row).(type) {
	case nil:
		return 0, errMissingValue
	case float64:
		if math.IsNaN(v) {
			return 0, errMissingValue
		}
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}

func intAt(df *dataframe.DataFrame, col, row int) (int, error) {
	switch v := df.Series[col].Value(row).(type) {
	case nil:
		return 0, errMissingValue
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("unexpected value %v (%T)", v, v)
	}
}
