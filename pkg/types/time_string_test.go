package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeString
		wantErr bool
	}{
		{in: "10:00", want: "10:00"},
		{in: "9:30", want: "09:30"},
		{in: "23:59", want: "23:59"},
		{in: "00:00", want: "00:00"},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10:5", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10:00:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
		{in: "+1:00", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: " 1:00", wantErr: true},
		{in: " 23:59 ", wantErr: true},
		{in: "1:+5", wantErr: true},
		{in: "001:00", wantErr: true},
		{in: "١٠:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEndTimeStringFromString(t *testing.T) {
	got, err := NewEndTimeStringFromString("24:00")
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, got)

	got, err = NewEndTimeStringFromString("7:15")
	require.NoError(t, err)
	assert.Equal(t, TimeString("07:15"), got)

	for _, in := range []string{"24:01", "25:00", "+24:00"} {
		_, err := NewEndTimeStringFromString(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, in)
	}
}

func TestTimeStringOn(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, loc)

	got, err := TimeString("10:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 30, 0, 0, loc), got)

	got, err = EndOfDay.On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, loc), got)

	_, err = TimeString("bad").On(date)
	assert.Error(t, err)

	_, err = TimeString("25:00").On(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestFormatEnd(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "24:00", FormatEnd(date.AddDate(0, 0, 1), date))
	assert.Equal(t, "17:30", FormatEnd(date.Add(17*time.Hour+30*time.Minute), date))
}
