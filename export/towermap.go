package export

import (
	"html/template"
	"os"

	"github.com/wiless/coverage/geodata"
)

// towerMapTmpl renders a self-contained Leaflet page: one marker per tower,
// color coded by height, popup with the raw record.
var towerMapTmpl = template.Must(template.New("towermap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tower Heights</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], 12);
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
	attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{range .Towers}}
L.circleMarker([{{.Lat}}, {{.Lon}}], {radius: 8, color: '{{.Color}}', fillOpacity: 0.8})
	.bindPopup('<b>Type:</b> {{.Type}}<br><b>Height:</b> {{.HeightM}} m<br><b>Estimated:</b> {{.Estimated}}<br><b>Coordinates:</b> {{.Lat}}, {{.Lon}}')
	.addTo(map);
{{end}}
</script>
</body>
</html>
`))

type towerMarker struct {
	geodata.TowerHeight
	Color string
}

type towerMapData struct {
	CenterLat float64
	CenterLon float64
	Towers    []towerMarker
}

// heightColor follows the report's banding: low towers green, medium orange,
// tall red.
func heightColor(heightM float64) string {
	switch {
	case heightM < 20:
		return "green"
	case heightM < 50:
		return "orange"
	default:
		return "red"
	}
}

// WriteTowerMap writes the interactive tower map HTML centred on the given
// coordinate. It consumes raw tower/height records, independent of the
// coverage dataset.
func WriteTowerMap(fname string, centerLat, centerLon float64, records []geodata.TowerHeight) error {
	data := towerMapData{CenterLat: centerLat, CenterLon: centerLon}
	for _, r := range records {
		data.Towers = append(data.Towers, towerMarker{TowerHeight: r, Color: heightColor(r.HeightM)})
	}

	fid, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer fid.Close()
	return towerMapTmpl.Execute(fid, data)
}
