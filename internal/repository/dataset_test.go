package repository

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"spacex_dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestLoadDataset_CSV(t *testing.T) {
	t.Parallel()

	ds, err := LoadDataset(ctx(t), filepath.Join("testdata", "launches.csv"))
	require.NoError(t, err)

	assert.Equal(t, 12, ds.Len())
	assert.Equal(t, models.PayloadRange{Low: 0, High: 9600}, ds.PayloadBounds())
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, ds.Sites())

	first := ds.Records()[0]
	assert.Equal(t, models.LaunchRecord{
		FlightNumber:    1,
		Site:            "CCAFS LC-40",
		PayloadMassKg:   0,
		Class:           0,
		BoosterVersion:  "F9 v1.0  B0003",
		BoosterCategory: "v1.0",
	}, first)

	sum := ds.Summary()
	assert.Equal(t, 12, sum.Rows)
	assert.Equal(t, map[int]int{0: 8, 1: 4}, sum.ClassCounts)
	assert.Equal(t, []string{"CCAFS LC-40", "CCAFS SLC-40", "KSC LC-39A", "VAFB SLC-4E"}, sum.Sites)
}

func TestLoadDataset_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		path   string
		reason string
	}{
		{"missing file", filepath.Join("testdata", "nope.csv"), "open file"},
		{"missing column", filepath.Join("testdata", "missing_column.csv"), "validate header"},
		{"class out of range", filepath.Join("testdata", "bad_class.csv"), "convert rows"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ds, err := LoadDataset(ctx(t), tc.path)
			require.Error(t, err)
			assert.Nil(t, ds)

			var le *LoadError
			require.True(t, errors.As(err, &le), "want *LoadError, got %T", err)
			assert.Equal(t, tc.path, le.Path)
			assert.Equal(t, tc.reason, le.Reason)
		})
	}
}

func TestLoadDataset_MissingColumnNamesColumn(t *testing.T) {
	t.Parallel()

	_, err := LoadDataset(ctx(t), filepath.Join("testdata", "missing_column.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "class")
}

func TestLoadDataset_HeaderOnlyFails(t *testing.T) {
	t.Parallel()

	_, err := LoadDataset(ctx(t), filepath.Join("testdata", "header_only.csv"))
	var le *LoadError
	require.True(t, errors.As(err, &le), "want *LoadError, got %v", err)
}

func TestLoadDataset_NormalizesHeaderNames(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		file string
	}{
		{"utf-8 byte order mark", "bom_header.csv"},
		{"space padded names", "padded_header.csv"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ds, err := LoadDataset(ctx(t), filepath.Join("testdata", tc.file))
			require.NoError(t, err)

			recs := ds.Records()
			require.Len(t, recs, 2)
			assert.Equal(t, "KSC LC-39A", recs[0].Site)
			assert.Equal(t, 2490.0, recs[0].PayloadMassKg)
			assert.Equal(t, models.ClassSuccess, recs[0].Class)
			assert.Equal(t, "v1.1", recs[1].BoosterCategory)
			assert.Equal(t, models.PayloadRange{Low: 500, High: 2490}, ds.PayloadBounds())
		})
	}
}

func TestWithHeader_RewritesFirstLine(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("\ufeff a , b \n1,2\n")
	header, offset, err := readHeader(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)

	body, err := withHeader(r, header, offset)
	require.NoError(t, err)
	out, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(out))
}

func TestLoadDataset_MissingPayloadValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gap.csv")
	body := strings.Join([]string{
		"Launch Site,class,Payload Mass (kg),Booster Version Category",
		"CCAFS LC-40,1,100.0,v1.0",
		"CCAFS LC-40,1,,v1.0",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := LoadDataset(ctx(t), path)
	var le *LoadError
	require.True(t, errors.As(err, &le), "want *LoadError, got %v", err)
}

func TestLoadDataset_XLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "launches.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Launch Site", "class", "Payload Mass (kg)", "Booster Version Category"},
		{"KSC LC-39A", 1, 2490.0, "FT"},
		{"VAFB SLC-4E", 0, 500.0, "v1.1"},
		{"KSC LC-39A", 1, 5300.0, "FT"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := LoadDataset(ctx(t), path)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, models.PayloadRange{Low: 500, High: 5300}, ds.PayloadBounds())
	assert.Equal(t, "FT", ds.Records()[0].BoosterCategory)
}

func TestNewDataset_IsolatedFromCaller(t *testing.T) {
	t.Parallel()

	in := []models.LaunchRecord{
		{Site: "A", PayloadMassKg: 10, Class: 1, BoosterCategory: "FT"},
		{Site: "B", PayloadMassKg: 20, Class: 0, BoosterCategory: "B5"},
	}
	ds, err := NewDataset(in)
	require.NoError(t, err)

	in[0].Site = "mutated"
	out := ds.Records()
	out[1].Site = "mutated too"

	again := ds.Records()
	assert.Equal(t, "A", again[0].Site)
	assert.Equal(t, "B", again[1].Site)
}

func TestNewDataset_Empty(t *testing.T) {
	t.Parallel()

	_, err := NewDataset(nil)
	assert.Error(t, err)
}

func TestRowsToCSV_PadsShortRows(t *testing.T) {
	t.Parallel()

	buf, err := rowsToCSV([][]string{{"a", "b", "c"}, {"1"}, {"1", "2", "3", "4"}})
	require.NoError(t, err)
	assert.Equal(t, "a,b,c\n1,,\n1,2,3\n", string(buf))
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset([]models.LaunchRecord{{Site: "A", PayloadMassKg: 1, BoosterCategory: "FT"}})
	require.NoError(t, err)

	repo := NewRepository(ds)
	assert.Len(t, repo.Launches.Records(), 1)
	assert.Equal(t, models.PayloadRange{Low: 1, High: 1}, repo.Launches.PayloadBounds())
}
