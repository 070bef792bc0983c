package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error returns empty", nil, ""},
		{"company not found", fmt.Errorf("years for %q: %w", "Nobody", ErrCompanyNotFound), "DATA001"},
		{"empty dataset", ErrEmptyDataset, "DATA002"},
		{"invalid year", errors.New(`invalid year "abc"`), "VAL001"},
		{"invalid number", errors.New(`row 3: Net Income: invalid number "N/A"`), "VAL002"},
		{"required field", errors.New(`required field "Company" is empty`), "VAL003"},
		{"missing column", errors.New("missing required column(s): Net Income"), "VAL004"},
		{"missing file", &os.PathError{Op: "open", Path: "data.csv", Err: os.ErrNotExist}, "FILE001"},
		{"bad csv", errors.New("invalid csv: record on line 2: wrong number of fields"), "FILE002"},
		{"bad workbook", errors.New("invalid spreadsheet: zip: not a valid zip file"), "FILE003"},
		{"db down", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), "DB001"},
		{"deadline", context.DeadlineExceeded, "DB002"},
		{"rate limited", errors.New("rate limit exceeded"), "RATE001"},
		{"case insensitive", errors.New("INVALID NUMBER in cell"), "VAL002"},
		{"unknown", errors.New("something odd"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, MapError(tt.err).Code)
		})
	}
}

func TestFormatUserError(t *testing.T) {
	assert.Equal(t, "", FormatUserError(nil))
	assert.Equal(t,
		"Too many requests (Code: RATE001). Please wait a moment before trying again",
		FormatUserError(errors.New("rate limit exceeded")))
}

func TestIsUserFacing(t *testing.T) {
	assert.False(t, IsUserFacing(nil))
	assert.False(t, IsUserFacing(errors.New("boom")))
	assert.True(t, IsUserFacing(ErrCompanyNotFound))
}
