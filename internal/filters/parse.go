package filters

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "sort_option", func(fl validator.FieldLevel) bool {
		return SortOption(fl.Field().String()).Valid()
	})
	mustRegister(v, "sort_direction", func(fl validator.FieldLevel) bool {
		return SortDirection(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("filters: register %s validation: %v", tag, err))
	}
}

// ParseFilters reads the chart filter schema from query values.
// Unknown keys are ignored; an all-absent input yields DefaultFilters.
func ParseFilters(values url.Values) (Filters, error) {
	r := &reader{values: values}
	f := r.filters()
	r.check(&f)
	if err := r.err(); err != nil {
		return Filters{}, err
	}
	return f, nil
}

// ParseSearch reads the search schema, which extends the chart filter schema.
func ParseSearch(values url.Values) (Search, error) {
	r := &reader{values: values}
	s := DefaultSearch()
	s.Filters = r.filters()

	if v, ok := r.str("searchString"); ok {
		s.SearchString = v
	}
	if v, ok := r.str("sortBy"); ok {
		s.SortBy = SortOption(v)
	}
	if v, ok := r.str("sortDirection"); ok {
		s.SortDirection = SortDirection(v)
	}
	if v := r.int("page"); v != nil {
		s.Page = int(*v)
	}
	if v := r.int("perPage"); v != nil {
		s.PerPage = int(*v)
	}

	r.check(&s)
	if err := r.err(); err != nil {
		return Search{}, err
	}
	return s, nil
}

type reader struct {
	values url.Values
	issues []Issue
}

func (r *reader) filters() Filters {
	f := DefaultFilters()
	if v, ok := r.str("metric"); ok {
		f.Metric = v
	}
	f.MinDate = r.datetime("minDate")
	f.MaxDate = r.datetime("maxDate")
	if v := r.bool("includeUnreleased"); v != nil {
		f.IncludeUnreleased = *v
	}
	f.MinPrice = r.float("minPrice")
	f.MaxPrice = r.float("maxPrice")
	if v := r.bool("includeFree"); v != nil {
		f.IncludeFree = *v
	}
	f.MinFollowers = r.int("minFollowers")
	f.MaxFollowers = r.int("maxFollowers")
	f.MinTotalReviews = r.int("minTotalReviews")
	f.MaxTotalReviews = r.int("maxTotalReviews")
	f.MinPositiveReviews = r.float("minPositiveReviews")
	f.MaxPositiveReviews = r.float("maxPositiveReviews")
	f.Genres = r.list("genres")
	f.Tags = r.list("tags")
	return f
}

// str returns the last non-blank value for key.
func (r *reader) str(key string) (string, bool) {
	vs := r.values[key]
	if len(vs) == 0 {
		return "", false
	}
	v := strings.TrimSpace(vs[len(vs)-1])
	return v, v != ""
}

func (r *reader) fail(key, message string, value any) {
	r.issues = append(r.issues, Issue{Field: key, Message: message, Value: value})
}

func (r *reader) float(key string) *float64 {
	v, ok := r.str(key)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(key, "expected number", v)
		return nil
	}
	return &f
}

func (r *reader) int(key string) *int64 {
	v, ok := r.str(key)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(key, "expected number", v)
		return nil
	}
	if f != math.Trunc(f) {
		r.fail(key, "expected integer", v)
		return nil
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		r.fail(key, "integer out of range", v)
		return nil
	}
	i := int64(f)
	return &i
}

func (r *reader) bool(key string) *bool {
	v, ok := r.str(key)
	if !ok {
		return nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		r.fail(key, "expected boolean", v)
		return nil
	}
	return &b
}

// datetime accepts ISO-8601 date-times carrying a UTC offset or Z.
func (r *reader) datetime(key string) *time.Time {
	v, ok := r.str(key)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		r.fail(key, "expected ISO-8601 datetime with offset", v)
		return nil
	}
	return &t
}

func (r *reader) list(key string) []string {
	v, ok := r.str(key)
	if !ok {
		return nil
	}
	return splitCommaSeparated(v)
}

// check runs struct validation, skipping fields that already failed coercion.
func (r *reader) check(target any) {
	err := validate.Struct(target)
	if err == nil {
		return
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		r.fail("query", err.Error(), nil)
		return
	}
	for _, fe := range validationErrors {
		r.fail(fe.Field(), describe(fe), fe.Value())
	}
}

func (r *reader) err() error {
	if len(r.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: r.issues}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "sort_option":
		return fmt.Sprintf("must be one of %q", SortOptions)
	case "sort_direction":
		return fmt.Sprintf("must be one of %q", SortDirections)
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// splitCommaSeparated splits a comma-separated list, dropping blank entries.
func splitCommaSeparated(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
