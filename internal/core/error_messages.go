package core

// error_messages.go maps technical errors to user-friendly messages with
// codes for support reference.
//
// # Data Errors (DATA001-DATA099)
//
//	DATA001 - Company not found: the company is not in the dataset
//	DATA002 - Dataset empty: the source has a header but no data rows
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Invalid year: fiscal year is not a positive integer
//	VAL002 - Invalid number: a metric cell is not numeric
//	VAL003 - Required field: a required cell or parameter is empty
//	VAL004 - Missing column: the header lacks a required column
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File not found: the dataset path does not exist
//	FILE002 - Invalid CSV: the file could not be parsed as CSV
//	FILE003 - Invalid spreadsheet: the workbook or sheet could not be read
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Connection refused: the dataset database is unreachable
//	DB002 - Timeout: the operation timed out
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests from one client
//
// ERR000 is the fallback when no pattern matches; check the server log for
// the technical error logged with the same request ID.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns are matched case-insensitively with strings.Contains.
// The first match wins, so specific patterns come before general ones.
var errorPatterns = []errorPattern{
	// Data
	{"company not found", UserMessage{
		Message: "Company not found in the dataset",
		Action:  "Pick a company from the list",
		Code:    "DATA001",
	}},
	{"dataset empty", UserMessage{
		Message: "The dataset contains no records",
		Action:  "Check that the dataset file has data rows below the header",
		Code:    "DATA002",
	}},

	// Validation
	{"invalid year", UserMessage{
		Message: "Invalid fiscal year",
		Action:  "Use a four-digit year such as 2023",
		Code:    "VAL001",
	}},
	{"invalid number", UserMessage{
		Message: "Invalid number format detected",
		Action:  "Use plain numbers; currency symbols and thousands separators are allowed",
		Code:    "VAL002",
	}},
	{"required field", UserMessage{
		Message: "Required field is empty",
		Action:  "Ensure every required value is present",
		Code:    "VAL003",
	}},
	{"missing required column", UserMessage{
		Message: "Required column is missing from the dataset",
		Action:  "Check the header row against the expected column names",
		Code:    "VAL004",
	}},

	// File
	{"no such file", UserMessage{
		Message: "Dataset file not found",
		Action:  "Set DATASET_PATH to an existing file",
		Code:    "FILE001",
	}},
	{"file does not exist", UserMessage{
		Message: "Dataset file not found",
		Action:  "Set DATASET_PATH to an existing file",
		Code:    "FILE001",
	}},
	{"invalid csv", UserMessage{
		Message: "Dataset is not a valid CSV file",
		Action:  "Ensure the file is comma-separated with consistent columns",
		Code:    "FILE002",
	}},
	{"invalid spreadsheet", UserMessage{
		Message: "Dataset workbook could not be read",
		Action:  "Check the file is a valid .xlsx workbook and DATASET_SHEET exists",
		Code:    "FILE003",
	}},

	// Database
	{"connection refused", UserMessage{
		Message: "Unable to connect to the dataset database",
		Action:  "Check DATASET_DATABASE_URL and that the database is running",
		Code:    "DB001",
	}},
	{"timeout", UserMessage{
		Message: "Operation timed out",
		Action:  "Please try again",
		Code:    "DB002",
	}},
	{"context deadline exceeded", UserMessage{
		Message: "Operation timed out",
		Action:  "Please try again",
		Code:    "DB002",
	}},

	// Rate limiting
	{"rate limit", UserMessage{
		Message: "Too many requests",
		Action:  "Please wait a moment before trying again",
		Code:    "RATE001",
	}},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first matching pattern, or ERR000 when none match.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
