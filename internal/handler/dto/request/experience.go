package request

import (
	"strconv"
	"strings"
	"time"

	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ListExperiencesQuery struct {
	Category  string `form:"category"`
	MinPrice  string `form:"min_price"`
	MaxPrice  string `form:"max_price"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Limit     string `form:"limit"`
	Offset    string `form:"offset"`
}

// ParamError names the query parameter that could not be parsed.
type ParamError struct {
	Param string
}

func (e *ParamError) Error() string {
	return "Invalid " + e.Param + " parameter"
}

func (q ListExperiencesQuery) ToFilter() (queries.ExperienceFilter, error) {
	f := queries.ExperienceFilter{
		SortBy:    strings.TrimSpace(q.SortBy),
		SortOrder: strings.TrimSpace(q.SortOrder),
		Limit:     atoiOrZero(q.Limit),
		Offset:    atoiOrZero(q.Offset),
	}
	if c := strings.TrimSpace(q.Category); c != "" {
		f.Category = &c
	}

	var err error
	if f.MinPrice, err = parsePrice(q.MinPrice, "min_price"); err != nil {
		return queries.ExperienceFilter{}, err
	}
	if f.MaxPrice, err = parsePrice(q.MaxPrice, "max_price"); err != nil {
		return queries.ExperienceFilter{}, err
	}
	return f, nil
}

func parsePrice(raw, param string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil, &ParamError{Param: param}
	}
	return &d, nil
}

// Unparseable limit/offset fall back to the defaults.
func atoiOrZero(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

type SlotsQuery struct {
	Date string `form:"date"`
}

func (q SlotsQuery) OnDate() (*time.Time, error) {
	raw := strings.TrimSpace(q.Date)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(pgconv.DateLayout, raw)
	if err != nil {
		return nil, &ParamError{Param: "date"}
	}
	return &t, nil
}

// ParseID accepts positive integer path ids only.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
