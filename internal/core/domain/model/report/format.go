package report

import (
	"fmt"
	"strings"

	"creational/internal/pkg/errs"
)

// Format names a report variant.
type Format int

const (
	// Unknown catches uninitialised Format values.
	Unknown Format = iota

	// Plain selects TextBuilder.
	Plain

	// HTML selects HTMLBuilder.
	HTML
)

func getFormatStrings() map[Format]string {
	return map[Format]string{
		Unknown: "unknown",
		Plain:   "plain",
		HTML:    "html",
	}
}

// ParseFormat maps "plain" or "html" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "text":
		return Plain, nil
	case "html":
		return HTML, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("report format", fmt.Errorf("%q is not a known format", s))
	}
}

// Validate accepts Plain and HTML.
func (f Format) Validate() error {
	if f != Plain && f != HTML {
		return errs.NewValueIsInvalidErrorWithCause("report format", fmt.Errorf("%d is not a valid format", f))
	}
	return nil
}

func (f Format) String() string {
	if s, ok := getFormatStrings()[f]; ok {
		return s
	}
	return "unknown"
}

// NewBuilder returns a fresh builder for the format.
func NewBuilder(f Format) (Builder, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f == HTML {
		return NewHTMLBuilder(), nil
	}
	return NewTextBuilder(), nil
}
