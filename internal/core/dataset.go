package core

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyDataset is returned when a source yields no data rows.
	ErrEmptyDataset = errors.New("dataset empty: no data rows")

	// ErrCompanyNotFound is returned by lookups for a company absent from the dataset.
	ErrCompanyNotFound = errors.New("company not found")
)

// recordKey indexes records by normalized company and fiscal year.
type recordKey struct {
	company string
	year    int
}

// Dataset is the immutable in-memory table of financial records.
// It is built once at startup and only read afterwards, so it is safe
// for concurrent use without locking.
type Dataset struct {
	LoadID   uuid.UUID
	Source   string
	LoadedAt time.Time

	records    []Record
	index      map[recordKey]int
	display    map[string]string
	years      map[string][]int
	companies  []string
	duplicates int
}

// NormalizeCompany returns the case-insensitive lookup form of a company name.
func NormalizeCompany(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewDataset validates records and builds the lookup index.
//
// When several records share a (company, fiscal year) pair the first one in
// source order wins; later ones are counted by Duplicates but never indexed.
// A company's display name is the spelling used by its first record.
func NewDataset(source string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	d := &Dataset{
		LoadID:   uuid.New(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		records:  make([]Record, len(records)),
		index:    make(map[recordKey]int, len(records)),
		display:  make(map[string]string),
		years:    make(map[string][]int),
	}
	copy(d.records, records)

	for i := range d.records {
		rec := &d.records[i]
		rec.Company = strings.TrimSpace(rec.Company)
		if err := ValidateRecord(*rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}

		name := NormalizeCompany(rec.Company)
		k := recordKey{company: name, year: rec.FiscalYear}
		if _, exists := d.index[k]; exists {
			d.duplicates++
			continue
		}
		d.index[k] = i

		if _, seen := d.display[name]; !seen {
			d.display[name] = rec.Company
			d.companies = append(d.companies, rec.Company)
		}
		d.years[name] = append(d.years[name], rec.FiscalYear)
	}

	sort.Strings(d.companies)
	for name := range d.years {
		slices.SortFunc(d.years[name], func(a, b int) int { return b - a })
	}

	return d, nil
}

// Len returns the number of records read from the source, duplicates included.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Duplicates returns how many records were shadowed by an earlier record
// for the same company and fiscal year.
func (d *Dataset) Duplicates() int {
	return d.duplicates
}

// Lookup returns the record for company (case-insensitive) and fiscal year.
func (d *Dataset) Lookup(company string, year int) (Record, bool) {
	i, ok := d.index[recordKey{company: NormalizeCompany(company), year: year}]
	if !ok {
		return Record{}, false
	}
	return d.records[i], true
}

// Companies returns the distinct company names in alphabetical order.
func (d *Dataset) Companies() []string {
	return slices.Clone(d.companies)
}

// DisplayName returns the canonical spelling of company.
func (d *Dataset) DisplayName(company string) (string, bool) {
	name, ok := d.display[NormalizeCompany(company)]
	return name, ok
}

// Years returns the distinct fiscal years present for company, most recent first.
// The result is empty for an unknown company.
func (d *Dataset) Years(company string) []int {
	return slices.Clone(d.years[NormalizeCompany(company)])
}

// HasYear reports whether company has a record for year.
func (d *Dataset) HasYear(company string, year int) bool {
	_, ok := d.index[recordKey{company: NormalizeCompany(company), year: year}]
	return ok
}

// Series returns one record per fiscal year for company, ordered by
// fiscal year ascending. Unknown companies yield an empty slice.
func (d *Dataset) Series(company string) []Record {
	name := NormalizeCompany(company)
	years := d.years[name]

	series := make([]Record, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		series = append(series, d.records[d.index[recordKey{company: name, year: years[i]}]])
	}
	return series
}
