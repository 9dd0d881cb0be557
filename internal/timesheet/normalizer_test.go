package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LabelCaseInsensitive(t *testing.T) {
	raw := RawRow{
		"Date":         "2024-01-15",
		"CLIENT NAME":  "Acme",
		"Project Name": "Apollo",
		"employee id":  "42",
		"Email ID":     "jo@acme.test",
		"First Name":   "Jo",
		"Hour(s)":      "7.5",
	}

	rec := Normalize(raw)

	assert.NotNil(t, rec.Date)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *rec.Date)
	assert.Equal(t, "Acme", *rec.ClientName)
	assert.Equal(t, "Apollo", *rec.ProjectName)
	assert.Equal(t, "42", *rec.EmployeeID)
	assert.Equal(t, "jo@acme.test", *rec.EmailID)
	assert.Equal(t, "Jo", *rec.FirstName)
	assert.Equal(t, 7.5, *rec.Hours)
}

func TestNormalize_EmptyAndAbsentBecomeNil(t *testing.T) {
	rec := Normalize(RawRow{
		"Client Name": "",
		"Job Name":    nil,
		"Hour(s)":     "not a number",
	})

	assert.Nil(t, rec.ClientName)
	assert.Nil(t, rec.JobName)
	assert.Nil(t, rec.ProjectName)
	assert.Nil(t, rec.Hours)
	assert.Nil(t, rec.Date)
}

func TestNormalize_DateLayouts(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2024-01-15",
		"2024/01/15",
		"01/15/2024",
		"1/15/2024",
		"15-Jan-2024",
		"2024-01-15T09:30:00Z",
		"2024-01-15 09:30:00",
	} {
		rec := Normalize(RawRow{"Date": input})
		if assert.NotNil(t, rec.Date, "layout %q", input) {
			assert.Equal(t, want, *rec.Date, "layout %q", input)
		}
	}
}

func TestNormalize_ExcelSerialDate(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	asFloat := Normalize(RawRow{"Date": 45306.0})
	if assert.NotNil(t, asFloat.Date) {
		assert.Equal(t, want, *asFloat.Date)
	}

	asString := Normalize(RawRow{"Date": "45306"})
	if assert.NotNil(t, asString.Date) {
		assert.Equal(t, want, *asString.Date)
	}

	// Plain small numbers are not serial dates.
	assert.Nil(t, Normalize(RawRow{"Date": "2024"}).Date)
}

func TestNormalize_UnparseableDateIsNil(t *testing.T) {
	rec := Normalize(RawRow{"Date": "sometime last week"})
	assert.Nil(t, rec.Date)
}

func TestValidEmployeeID(t *testing.T) {
	valid := []string{"42", "007", "12.5", "-3", "+8", " 42 "}
	for _, s := range valid {
		s := s
		assert.True(t, ValidEmployeeID(&s), "expected %q to be valid", s)
	}

	invalid := []string{"", "abc", "a42", "-", "+", "  "}
	for _, s := range invalid {
		s := s
		assert.False(t, ValidEmployeeID(&s), "expected %q to be invalid", s)
	}

	assert.False(t, ValidEmployeeID(nil))
}
