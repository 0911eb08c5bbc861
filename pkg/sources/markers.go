package sources

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/kerbaras/scriptures/pkg/data"
	"github.com/kerbaras/scriptures/pkg/utils"
)

// showLocation(id,'placename',lat,lon,viewLat,viewLon,tilt,roll,altitude,range,'flag')
var showLocationArgs = regexp.MustCompile(`\((.*),'(.*)',(.*),(.*),(.*),(.*),(.*),(.*),(.*),(.*),(.*)\)`)

const showLocationPrefix = "showLocation("

// ExtractMarkers walks chapter markup and returns one marker per location
// anchor, in document order. Anchors whose arguments do not parse are skipped.
func ExtractMarkers(markup string) ([]data.Marker, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var markers []data.Marker
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if onclick := utils.Attr(n, "onclick"); strings.HasPrefix(onclick, showLocationPrefix) {
				if m, ok := ParseShowLocation(onclick); ok {
					markers = append(markers, m)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return markers, nil
}

// ParseShowLocation decodes the arguments of a showLocation(...) call. A
// non-empty flag argument is appended to the placename.
func ParseShowLocation(call string) (data.Marker, bool) {
	matches := showLocationArgs.FindStringSubmatch(call)
	if matches == nil {
		return data.Marker{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(matches[3]), 64)
	if err != nil {
		return data.Marker{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(matches[4]), 64)
	if err != nil {
		return data.Marker{}, false
	}

	flag := strings.TrimSpace(matches[11])
	if len(flag) >= 2 {
		flag = flag[1 : len(flag)-1]
	} else {
		flag = ""
	}

	placename := matches[2]
	if flag != "" {
		placename += " " + flag
	}

	return data.Marker{Placename: placename, Latitude: lat, Longitude: lon, Flag: flag}, true
}
