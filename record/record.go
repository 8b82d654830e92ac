package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RatePer is the population base for both derived rates.
const RatePer = 100000.0

var (
	// ErrMissingField indicates an empty population or violent-crime cell.
	ErrMissingField = errors.New("record: missing population or crime total")

	// ErrZeroDenominator indicates a population or crime total that parsed to zero.
	ErrZeroDenominator = errors.New("record: zero population or crime total")

	// ErrMalformed indicates a numeric cell that could not be parsed.
	ErrMalformed = errors.New("record: malformed numeric field")

	// ErrInvalid indicates a Record that fails struct validation.
	ErrInvalid = errors.New("record: invalid record")
)

// Raw is one CSV row exactly as read, before cleaning.
type Raw struct {
	Jurisdiction      string
	Year              string
	PrisonerCount     string
	StatePopulation   string
	ViolentCrimeTotal string
}

// Record is a cleaned jurisdiction-year observation.
type Record struct {
	Jurisdiction      string  `validate:"required"`
	Year              int     `validate:"gte=0"`
	PrisonerCount     int     `validate:"gte=0"`
	StatePopulation   int     `validate:"gt=0"`
	ViolentCrimeTotal int     `validate:"gt=0"`
	IncarcerationRate float64 `validate:"gte=0"`
	CrimeRate         float64 `validate:"gte=0"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Validate checks the struct constraints of r and that both rates are finite.
func (r Record) Validate() error {
	if err := structValidator().Struct(r); err != nil {
		return fmt.Errorf("%w: %s %d: %v", ErrInvalid, r.Jurisdiction, r.Year, err)
	}
	if math.IsInf(r.IncarcerationRate, 0) || math.IsInf(r.CrimeRate, 0) {
		return fmt.Errorf("%w: %s %d: infinite rate", ErrInvalid, r.Jurisdiction, r.Year)
	}

	return nil
}

// Clean parses raw into a Record and derives both rates.
func Clean(raw Raw) (Record, error) {
	if strings.TrimSpace(raw.StatePopulation) == "" || strings.TrimSpace(raw.ViolentCrimeTotal) == "" {
		return Record{}, fmt.Errorf("%w: %s %s", ErrMissingField, raw.Jurisdiction, raw.Year)
	}

	year, err := parseInt(strings.Trim(strings.TrimSpace(raw.Year), `"`))
	if err != nil {
		return Record{}, fmt.Errorf("%w: year %q", ErrMalformed, raw.Year)
	}
	prisoners, err := parseInt(raw.PrisonerCount)
	if err != nil {
		return Record{}, fmt.Errorf("%w: prisoner_count %q", ErrMalformed, raw.PrisonerCount)
	}
	population, err := parseRounded(raw.StatePopulation)
	if err != nil {
		return Record{}, fmt.Errorf("%w: state_population %q", ErrMalformed, raw.StatePopulation)
	}
	crimes, err := parseRounded(raw.ViolentCrimeTotal)
	if err != nil {
		return Record{}, fmt.Errorf("%w: violent_crime_total %q", ErrMalformed, raw.ViolentCrimeTotal)
	}
	if population == 0 || crimes == 0 {
		return Record{}, fmt.Errorf("%w: %s %d (population=%d, crimes=%d)",
			ErrZeroDenominator, raw.Jurisdiction, year, population, crimes)
	}

	r := Record{
		Jurisdiction:      strings.TrimSpace(raw.Jurisdiction),
		Year:              year,
		PrisonerCount:     prisoners,
		StatePopulation:   population,
		ViolentCrimeTotal: crimes,
		IncarcerationRate: float64(prisoners) / float64(population) * RatePer,
		CrimeRate:         float64(crimes) / float64(population) * RatePer,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}

	return r, nil
}

// parseInt accepts "1,234" and surrounding spaces; an empty cell is 0.
func parseInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

// parseRounded accepts fractional totals and rounds them to the nearest integer.
func parseRounded(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}

	return int(math.Round(f)), nil
}
