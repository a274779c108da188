package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	csv := "phone,name,amount\n" +
		"+2348012345678,John Doe,15000.50\n" +
		"+2348023456789,Jane Smith,25000.00\n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	require.Equal(t, 2, len(candidates))
	require.Equal(t, "+2348012345678", candidates[0].Phone)
	require.Equal(t, "John Doe", candidates[0].Name)
	require.NotNil(t, candidates[0].Amount)
	require.Equal(t, 15000.5, *candidates[0].Amount)
}

func TestParseHeaderCaseAndSpacing(t *testing.T) {
	csv := " Phone , NAME \n+2348012345678, John \n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	require.Equal(t, 1, len(candidates))
	require.Equal(t, "+2348012345678", candidates[0].Phone)
	require.Equal(t, "John", candidates[0].Name)
	require.Nil(t, candidates[0].Amount)
}

func TestParseNoPhoneColumn(t *testing.T) {
	csv := "name,amount\nJohn,100\n"

	candidates, err := Parse(csv)

	require.Error(t, err)
	require.IsType(t, &FormatErr{}, err)
	require.Empty(t, candidates)
}

func TestParseDropsPhonelessRows(t *testing.T) {
	csv := "phone,name\n+2348012345678,John\n,NoPhone\n\n   \n+2348023456789,Jane\n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	require.Equal(t, 2, len(candidates))
}

func TestParseUnparseableAmount(t *testing.T) {
	csv := "phone,amount\n+2348012345678,N/A\n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	require.Equal(t, 1, len(candidates))
	require.Nil(t, candidates[0].Amount)
}

func TestParseUnrecognizedColumnsIgnored(t *testing.T) {
	csv := "email,phone,city\na@b.c,+2348012345678,Lagos\n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	require.Equal(t, 1, len(candidates))
	require.Equal(t, "+2348012345678", candidates[0].Phone)
	require.Equal(t, "", candidates[0].Name)
}

func TestParseShortRow(t *testing.T) {
	csv := "name,phone\nJohn\n+2348012345678\n"

	candidates, err := Parse(csv)

	require.NoError(t, err)
	//both rows lack a value in the phone position
	require.Empty(t, candidates)
}

func TestValidatePhones(t *testing.T) {
	candidates := []Candidate{
		{Phone: "+2348012345678"},
		{Phone: "+2348023456789"},
	}

	require.NoError(t, ValidatePhones(candidates))
}

func TestValidatePhonesMissingPlus(t *testing.T) {
	candidates := []Candidate{
		{Phone: "+2348012345678"},
		{Phone: "08012345678"},
	}

	err := ValidatePhones(candidates)

	require.Error(t, err)
	require.IsType(t, &ValidationErr{}, err)
}

func TestValidatePhonesTooShort(t *testing.T) {
	err := ValidatePhones([]Candidate{{Phone: "+23480123"}})

	require.Error(t, err)
	require.IsType(t, &ValidationErr{}, err)
}

func TestValidPhone(t *testing.T) {
	require.True(t, ValidPhone("+2348012345678"))
	require.False(t, ValidPhone("2348012345678"))
	require.False(t, ValidPhone("+23480123"))
	//ten characters including the plus is the minimum
	require.True(t, ValidPhone("+234801234"))
	require.False(t, ValidPhone(""))
}
