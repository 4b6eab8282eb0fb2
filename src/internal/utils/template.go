package utils

import (
	"io"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

const (
	templateStart = "{{"
	templateEnd   = "}}"
)

// ExpandTemplate replaces {{name}} placeholders in tmpl with values from vars.
// Unknown placeholders are replaced with an empty string.
func ExpandTemplate(tmpl string, vars map[string]string) string {
	if !strings.Contains(tmpl, templateStart) {
		return tmpl
	}

	values := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		values[k] = v
	}
	return fasttemplate.New(tmpl, templateStart, templateEnd).ExecuteString(values)
}

// TemplateTags returns the placeholder names used in tmpl, or an error if
// tmpl contains an unterminated placeholder.
func TemplateTags(tmpl string) ([]string, error) {
	t, err := fasttemplate.NewTemplate(tmpl, templateStart, templateEnd)
	if err != nil {
		return nil, err
	}

	var tags []string
	t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		tags = append(tags, tag)
		return 0, nil
	})
	return tags, nil
}

// DateStamp returns the UTC date of the day after now formatted as YYYYMMDD.
// Lists published for import are labelled with the next day.
func DateStamp(now time.Time) string {
	return now.UTC().AddDate(0, 0, 1).Format("20060102")
}
