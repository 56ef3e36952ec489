package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseHireDate(t *testing.T) {
	tests := []struct {
		text    string
		want    time.Time
		wantErr bool
	}{
		{text: "15/03/2023", want: time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{text: "1/2/2022", want: time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{text: " 29/02/2024 ", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{text: "29/02/2023", wantErr: true},
		{text: "15/13/2023", wantErr: true},
		{text: "00/01/2023", wantErr: true},
		{text: "15-03-2023", wantErr: true},
		{text: "15/03", wantErr: true},
		{text: "15/03/2023/1", wantErr: true},
		{text: "aa/03/2023", wantErr: true},
		{text: "", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			got, err := ParseHireDate(test.text)
			if test.wantErr {
				require.ErrorIs(t, err, ErrMalformedDate)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestNewEmployee(t *testing.T) {
	require := require.New(t)

	e := NewEmployee("Ann", 7)
	require.Equal("Ann", e.Name)
	require.Equal(7, e.Number)
	require.Nil(e.HireDate)
	require.Empty(e.Phone)
	require.Empty(e.Email)
	require.False(e.HiredIn(2023))

	e, err := NewEmployeeDetails("Bob", 8, "10/10/2023", "600111222", "bob@mail.com")
	require.NoError(err)
	require.True(e.HiredIn(2023))
	require.False(e.HiredIn(2022))
	require.Equal("10/10/2023", e.FormatHireDate())

	_, err = NewEmployeeDetails("Bob", 8, "2023-10-10", "600111222", "bob@mail.com")
	require.ErrorIs(err, ErrMalformedDate)
}

func TestEmployeeEqual(t *testing.T) {
	require := require.New(t)

	a, err := NewEmployeeDetails("Ann", 1, "01/06/2022", "600111222", "ann@mail.com")
	require.NoError(err)
	b, err := NewEmployeeDetails("Ann", 1, "1/6/2022", "600111222", "ann@mail.com")
	require.NoError(err)
	require.True(a.Equal(b))
	require.True(b.Equal(a))

	b.Phone = "600000000"
	require.False(a.Equal(b))

	require.True(NewEmployee("Ann", 1).Equal(NewEmployee("Ann", 1)))
	require.False(NewEmployee("Ann", 1).Equal(NewEmployee("Ann", 2)))
	require.False(NewEmployee("Ann", 1).Equal(a))
	require.False(a.Equal(nil))

	var none *Employee
	require.True(none.Equal(nil))
}
