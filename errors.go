package gokml

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeRegistration indicates a malformed registry item descriptor.
	CodeRegistration = "registration_error"
	// CodeParse indicates content that fails structural coercion; the Issue
	// carries the offending tag or field name in Path.
	CodeParse = "parse_error"
	// CodeValidation indicates an XML Schema failure reported in strict mode.
	CodeValidation = "validation_error"
	// CodeUnrecognizedElement indicates a tag with no registered type.
	CodeUnrecognizedElement = "unrecognized_element"
	// CodeDimensionality indicates mixed 2D/3D parts within one geometry.
	CodeDimensionality = "dimensionality_error"
)

// Issue represents a single parsing or validation entry.
type Issue struct {
	Path    string // Element/field path (for example: Placemark/name).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of parse/validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. parse_error at Placemark/name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// singleIssue wraps one code/message pair into an Issues error.
func singleIssue(path, code, msg string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: msg}}
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with CodeParse.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{Issue{Path: path, Code: CodeParse, Message: err.Error(), Cause: err}}
}
