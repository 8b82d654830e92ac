package record_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incarcnet/record"
)

const sampleCSV = `jurisdiction,year,prisoner_count,state_population,violent_crime_total
Alabama,"2001","24,741",4467634,19582
Alaska,2001,4570,633630,3735
Arizona,2001,27710,,28675
Arkansas,2001,11489,2692090,0
California,x,1,1,1
Colorado,2002,18833,4506542.4,15882.6
`

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		raw     record.Raw
		wantErr error
	}{
		{"missing population", record.Raw{Jurisdiction: "A", Year: "2001", StatePopulation: " ", ViolentCrimeTotal: "1"}, record.ErrMissingField},
		{"missing crime", record.Raw{Jurisdiction: "A", Year: "2001", StatePopulation: "10", ViolentCrimeTotal: ""}, record.ErrMissingField},
		{"zero population", record.Raw{Jurisdiction: "A", Year: "2001", StatePopulation: "0.2", ViolentCrimeTotal: "5"}, record.ErrZeroDenominator},
		{"bad year", record.Raw{Jurisdiction: "A", Year: "20x1", StatePopulation: "10", ViolentCrimeTotal: "5"}, record.ErrMalformed},
		{"bad prisoners", record.Raw{Jurisdiction: "A", Year: "2001", PrisonerCount: "n/a", StatePopulation: "10", ViolentCrimeTotal: "5"}, record.ErrMalformed},
		{"negative population", record.Raw{Jurisdiction: "A", Year: "2001", StatePopulation: "-10", ViolentCrimeTotal: "5"}, record.ErrMalformed},
		{"empty jurisdiction", record.Raw{Jurisdiction: " ", Year: "2001", StatePopulation: "10", ViolentCrimeTotal: "5"}, record.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := record.Clean(tc.raw)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	r, err := record.Clean(record.Raw{
		Jurisdiction:      "Ohio",
		Year:              `"1999"`,
		PrisonerCount:     "2,000",
		StatePopulation:   "1,000,000",
		ViolentCrimeTotal: "4999.6",
	})
	require.NoError(t, err)
	assert.Equal(t, 1999, r.Year)
	assert.Equal(t, 2000, r.PrisonerCount)
	assert.Equal(t, 5000, r.ViolentCrimeTotal)
	assert.InDelta(t, 200.0, r.IncarcerationRate, 1e-9)
	assert.InDelta(t, 500.0, r.CrimeRate, 1e-9)
}

func TestLoad(t *testing.T) {
	ds, err := record.Load(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, ds.Records, 3)
	assert.Equal(t, "Alabama", ds.Records[0].Jurisdiction)
	assert.Equal(t, 24741, ds.Records[0].PrisonerCount)
	assert.Equal(t, "Colorado", ds.Records[2].Jurisdiction)
	assert.Equal(t, 4506542, ds.Records[2].StatePopulation)
	assert.Equal(t, 15883, ds.Records[2].ViolentCrimeTotal)

	require.Len(t, ds.Rejected, 3)
	assert.Equal(t, 4, ds.Rejected[0].Line)
	assert.ErrorIs(t, ds.Rejected[0].Reason, record.ErrMissingField)
	assert.ErrorIs(t, ds.Rejected[1].Reason, record.ErrZeroDenominator)
	assert.ErrorIs(t, ds.Rejected[2].Reason, record.ErrMalformed)
}

func TestLoad_Structural(t *testing.T) {
	_, err := record.Load(strings.NewReader("jurisdiction,year\nA,2001\n"))
	assert.ErrorIs(t, err, record.ErrMissingColumn)

	ds, err := record.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Records)

	// Header names are case-insensitive and order-free.
	ds, err = record.Load(strings.NewReader(
		"YEAR,Violent_Crime_Total,State_Population,Prisoner_Count,Jurisdiction\n2003,10,1000,5,Utah\n"))
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, "Utah", ds.Records[0].Jurisdiction)
	assert.InDelta(t, 500.0, ds.Records[0].IncarcerationRate, 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	ds, err := record.FileSource{Path: path}.Load()
	require.NoError(t, err)
	assert.Len(t, ds.Records, 3)

	_, err = record.LoadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilterAndCompare(t *testing.T) {
	recs := []record.Record{
		{Jurisdiction: "Ohio", Year: 2002, IncarcerationRate: 1},
		{Jurisdiction: "Iowa", Year: 2001, IncarcerationRate: 2},
		{Jurisdiction: "ohio", Year: 2001, IncarcerationRate: 3},
		{Jurisdiction: "Iowa", Year: 2003, IncarcerationRate: 4},
	}

	assert.Len(t, record.Filter(recs, "OHIO"), 2)
	assert.Equal(t, []string{"Ohio", "Iowa", "ohio"}, record.Jurisdictions(recs))
	assert.Equal(t, []float64{1, 2, 3, 4}, record.IncarcerationRates(recs))

	pairs := record.Compare(recs, "Ohio", "Iowa")
	require.Len(t, pairs, 3)
	assert.Equal(t, 2001, pairs[0].Year)
	assert.Equal(t, 3.0, pairs[0].A.IncarcerationRate)
	assert.Equal(t, 2.0, pairs[0].B.IncarcerationRate)
	assert.Nil(t, pairs[1].B)
	assert.Nil(t, pairs[2].A)
	assert.Equal(t, 4.0, pairs[2].B.IncarcerationRate)
}
