package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/pocketlove/internal/models"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ExportRange bounds dated records inclusively; nil ends are open.
type ExportRange struct {
	From *time.Time
	To   *time.Time
}

func ParseExportRange(rawFrom string, rawTo string) (ExportRange, error) {
	var exportRange ExportRange

	if fromRaw := strings.TrimSpace(rawFrom); fromRaw != "" {
		from, err := ParseDay(fromRaw)
		if err != nil {
			return ExportRange{}, ErrExportFromDateInvalid
		}
		exportRange.From = &from
	}
	if toRaw := strings.TrimSpace(rawTo); toRaw != "" {
		to, err := ParseDay(toRaw)
		if err != nil {
			return ExportRange{}, ErrExportToDateInvalid
		}
		exportRange.To = &to
	}

	if exportRange.From != nil && exportRange.To != nil && exportRange.To.Before(*exportRange.From) {
		return ExportRange{}, ErrExportRangeInvalid
	}
	return exportRange, nil
}

// Contains reports whether the YYYY-MM-DD prefix of raw lies in the range.
// Values that do not parse are kept only by an unbounded range.
func (exportRange ExportRange) Contains(raw string) bool {
	if exportRange.From == nil && exportRange.To == nil {
		return true
	}
	if len(raw) > len(models.DateLayout) {
		raw = raw[:len(models.DateLayout)]
	}
	day, err := ParseDay(raw)
	if err != nil {
		return false
	}
	if exportRange.From != nil && day.Before(*exportRange.From) {
		return false
	}
	if exportRange.To != nil && day.After(*exportRange.To) {
		return false
	}
	return true
}
