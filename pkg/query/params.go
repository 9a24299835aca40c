package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/finops/backoffice/pkg/apperr"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar-date range. A nil bound is unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// UpperBound returns the exclusive upper bound for timestamp comparison,
// i.e. midnight of the day after To, or nil when To is unbounded.
func (r DateRange) UpperBound() *time.Time {
	if r.To == nil {
		return nil
	}
	u := r.To.AddDate(0, 0, 1)
	return &u
}

// FromString returns From formatted as YYYY-MM-DD for filter echoes.
func (r DateRange) FromString() string {
	if r.From == nil {
		return ""
	}
	return r.From.Format(dateLayout)
}

// ToString returns To formatted as YYYY-MM-DD for filter echoes.
func (r DateRange) ToString() string {
	if r.To == nil {
		return ""
	}
	return r.To.Format(dateLayout)
}

// ParsePage normalizes page/limit with the given default and cap. An absent
// page defaults to 1; a malformed or non-positive value is a validation
// failure. Limits above max are clamped rather than rejected.
func ParsePage(vs url.Values, defaultLimit, maxLimit int) (PageRequest, error) {
	page := 1
	if raw := strings.TrimSpace(vs.Get("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return PageRequest{}, apperr.ValidationField("page", "page must be a positive integer")
		}
		page = n
	}
	limit := defaultLimit
	if raw := strings.TrimSpace(vs.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return PageRequest{}, apperr.ValidationField("limit", "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

// DecimalParam parses an optional decimal parameter. Non-numeric input is a
// validation failure naming the field.
func DecimalParam(vs url.Values, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(vs.Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperr.ValidationField(name, fmt.Sprintf("%s must be a number", name))
	}
	return &d, nil
}

// DecimalRange parses a min/max pair and rejects an inverted range.
func DecimalRange(vs url.Values, minName, maxName string) (minVal, maxVal *decimal.Decimal, err error) {
	if minVal, err = DecimalParam(vs, minName); err != nil {
		return nil, nil, err
	}
	if maxVal, err = DecimalParam(vs, maxName); err != nil {
		return nil, nil, err
	}
	if minVal != nil && maxVal != nil && minVal.GreaterThan(*maxVal) {
		return nil, nil, apperr.ValidationField(minName, fmt.Sprintf("%s must not exceed %s", minName, maxName))
	}
	return minVal, maxVal, nil
}

// IDSetParam collects an id-set filter. It accepts the bare name, the
// PHP-style name[] variant, repeated values and comma-separated values, and
// returns a deduplicated list preserving first occurrence. An empty set means
// the filter is omitted.
func IDSetParam(vs url.Values, name string) ([]int64, error) {
	raws := append([]string{}, vs[name]...)
	raws = append(raws, vs[name+"[]"]...)
	seen := make(map[int64]struct{})
	var ids []int64
	for _, raw := range raws {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, apperr.ValidationField(name, fmt.Sprintf("%s must contain integers", name))
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DateRangeParam parses an inclusive date range. Either bound may be
// omitted; a present bound must be YYYY-MM-DD, and From must not come after
// To when both are given.
func DateRangeParam(vs url.Values, fromName, toName string) (*DateRange, error) {
	fromRaw := strings.TrimSpace(vs.Get(fromName))
	toRaw := strings.TrimSpace(vs.Get(toName))
	if fromRaw == "" && toRaw == "" {
		return nil, nil
	}
	var r DateRange
	if fromRaw != "" {
		from, err := time.Parse(dateLayout, fromRaw)
		if err != nil {
			return nil, apperr.ValidationField(fromName, fmt.Sprintf("%s must be YYYY-MM-DD", fromName))
		}
		r.From = &from
	}
	if toRaw != "" {
		to, err := time.Parse(dateLayout, toRaw)
		if err != nil {
			return nil, apperr.ValidationField(toName, fmt.Sprintf("%s must be YYYY-MM-DD", toName))
		}
		r.To = &to
	}
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return nil, apperr.ValidationField(fromName, fmt.Sprintf("%s must not be after %s", fromName, toName))
	}
	return &r, nil
}

// EnumParam parses an optional string enum parameter.
func EnumParam(vs url.Values, name string, allowed ...string) (string, error) {
	raw := strings.TrimSpace(vs.Get(name))
	if raw == "" {
		return "", nil
	}
	for _, a := range allowed {
		if raw == a {
			return raw, nil
		}
	}
	return "", apperr.ValidationField(name,
		fmt.Sprintf("%s must be one of: %s", name, strings.Join(allowed, ", ")))
}

// IntEnumParam parses an optional integer enum parameter such as
// transaction_type.
func IntEnumParam(vs url.Values, name string, allowed ...int) (*int, error) {
	raw := strings.TrimSpace(vs.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.ValidationField(name, fmt.Sprintf("%s must be an integer", name))
	}
	for _, a := range allowed {
		if n == a {
			return &n, nil
		}
	}
	vals := make([]string, len(allowed))
	for i, a := range allowed {
		vals[i] = strconv.Itoa(a)
	}
	return nil, apperr.ValidationField(name,
		fmt.Sprintf("%s must be one of: %s", name, strings.Join(vals, ", ")))
}
