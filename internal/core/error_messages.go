package core

// # Error Codes Reference
//
// Every dataset failure and row diagnostic is logged with a code so a run
// log can be grepped for one class of problem.
//
//	FILE001 - Input not found: the dataset's CSV file does not exist
//	          Action: Place the file in the data directory or set DATA_DIR
//
//	FILE002 - Invalid CSV: the file could not be parsed as CSV
//	          Action: Re-export the sheet as comma-separated UTF-8
//
//	FILE003 - File too large: the input exceeds MAX_FILE_SIZE
//	          Action: Raise MAX_FILE_SIZE or trim the file
//
//	FILE004 - Write failed: the output document could not be written
//	          Action: Check permissions and free space in the data directory
//
//	ROW001  - Invalid key: a row's integer key could not be parsed
//	          Action: Fix the iana_id cell; the row was left out
//
//	RUN001  - Cancelled: the run was interrupted
//	          Action: Run again
//
//	ERR000  - Unexpected error (fallback)

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the converter.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrInvalidCSV    = errors.New("invalid csv")
	ErrFileTooLarge  = errors.New("file too large")
	ErrWriteFailed   = errors.New("write failed")
	ErrInvalidKey    = errors.New("invalid key")

	// ErrBlankKey marks a row whose key column is empty.
	// Such rows are skipped without a diagnostic.
	ErrBlankKey = errors.New("blank key")
)

// RowError describes why a single row was excluded.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// UserMessage is a coded, human-readable description of an error.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

type errorMapping struct {
	target error
	msg    UserMessage
}

var errorMappings = []errorMapping{
	{ErrInputNotFound, UserMessage{"Input file not found", "Place the file in the data directory or set DATA_DIR", "FILE001"}},
	{ErrInvalidCSV, UserMessage{"Input is not valid UTF-8 CSV", "Re-export the sheet as comma-separated UTF-8", "FILE002"}},
	{ErrFileTooLarge, UserMessage{"Input file is too large", "Raise MAX_FILE_SIZE or trim the file", "FILE003"}},
	{ErrWriteFailed, UserMessage{"Output document could not be written", "Check permissions and free space in the data directory", "FILE004"}},
	{ErrInvalidKey, UserMessage{"Row key is not a valid integer", "Fix the key cell; the row was left out", "ROW001"}},
	{context.Canceled, UserMessage{"Run was cancelled", "Run again", "RUN001"}},
	{context.DeadlineExceeded, UserMessage{"Run timed out", "Run again", "RUN001"}},
}

// defaultMessage is returned when no mapping matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the underlying error",
	Code:    "ERR000",
}

// MapError converts an error to a coded message.
// The first mapping whose sentinel matches via errors.Is wins.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
