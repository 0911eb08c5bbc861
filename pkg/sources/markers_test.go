package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShowLocation(t *testing.T) {
	tests := []struct {
		name      string
		call      string
		ok        bool
		placename string
		lat, lon  float64
	}{
		{
			name:      "no flag",
			call:      "showLocation(1,'Jerusalem',31.7780,35.2354,31.7780,35.2354,0,0,0,5000,'')",
			ok:        true,
			placename: "Jerusalem",
			lat:       31.7780,
			lon:       35.2354,
		},
		{
			name:      "flag appended",
			call:      "showLocation(7,'Zion',31.77,35.22,31.77,35.22,0,0,0,5000,'>')",
			ok:        true,
			placename: "Zion >",
			lat:       31.77,
			lon:       35.22,
		},
		{
			name: "too few arguments",
			call: "showLocation(1,'Jerusalem',31.77,35.23)",
		},
		{
			name: "latitude not numeric",
			call: "showLocation(1,'Nowhere',north,35.2,0,0,0,0,0,0,'')",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := ParseShowLocation(tt.call)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.placename, m.Placename)
			assert.InDelta(t, tt.lat, m.Latitude, 1e-9)
			assert.InDelta(t, tt.lon, m.Longitude, 1e-9)
		})
	}
}

func TestExtractMarkersIgnoresOtherAnchors(t *testing.T) {
	markup := `<p><a href="#1:2">link</a>
<a onclick="showFootnote(3)">fn</a>
<a onclick="showLocation(1,'Egypt',26.0,30.0,26.0,30.0,0,0,0,5000,'')">Egypt</a></p>`

	markers, err := ExtractMarkers(markup)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "Egypt", markers[0].Placename)
}
