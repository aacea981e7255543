package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imani-cms/imani_backend/internal/apperrors"
)

func TestExportThenImportRoundTrip(t *testing.T) {
	type person struct {
		Name   string
		City   string
		Groups []string
	}
	people := []person{
		{Name: "Grace Wanjiku", City: "Nairobi", Groups: []string{"Choir", "Ushering"}},
		{Name: "O'Brien, Sam", City: "Accra", Groups: nil}, // embedded comma must survive
	}

	var buf bytes.Buffer
	header := []string{"Name", "City", "Groups"}
	err := Export(&buf, header, people, func(p person) []string {
		return []string{p.Name, p.City, JoinMulti(p.Groups)}
	})
	require.NoError(t, err)

	rows, err := Import(&buf, []string{"name", "city"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Grace Wanjiku", rows[0].Get("Name"))
	assert.Equal(t, []string{"Choir", "Ushering"}, SplitMulti(rows[0].Get("groups")))
	assert.Equal(t, "O'Brien, Sam", rows[1].Get("NAME"))
	assert.Nil(t, SplitMulti(rows[1].Get("groups")))
}

func TestImportHeaderIsCaseInsensitive(t *testing.T) {
	input := "FIRST NAME,Last Name\nGrace,Wanjiku\n"
	rows, err := Import(strings.NewReader(input), []string{"first name", "last name"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grace", rows[0].Get("First Name"))
}

func TestImportRejectsMissingRequiredColumn(t *testing.T) {
	input := "name\nGrace\n"
	_, err := Import(strings.NewReader(input), []string{"name", "status"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestExportRejectsMismatchedRowWidth(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, []string{"a", "b"}, []int{1}, func(int) []string {
		return []string{"only one"}
	})
	assert.Error(t, err)
}
