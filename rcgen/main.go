// rcgen evaluates radio coverage for a configured tower list over a
// geographic grid and writes the GIS exports: a timestamped CSV snapshot,
// an optional SQLite snapshot, per-tower heatmaps, the interactive tower
// map and the tower height report.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wiless/coverage"
	"github.com/wiless/coverage/deployment"
	"github.com/wiless/coverage/export"
	"github.com/wiless/coverage/geodata"
)

var CenterLat = 47.9212
var CenterLon = 106.9186
var GridSize = 30
var AreaKm = 15.0
var TowersFile = "towers.json"
var FeaturesFile = ""
var Heatmaps = true
var WebPQuality = 0.0
var SQLiteFile = ""

var outdir string
var indir string
var defaultdir string
var currentdir string

func SwitchBack() {
	pwd, _ := os.Getwd()
	log.Printf("Switching to DEFAULT %s to %s ", pwd, currentdir)
	os.Chdir(currentdir)
}

func SwitchInput() {
	pwd, _ := os.Getwd()
	currentdir = pwd
	log.Printf("Switching to INPUT %s to %s ", pwd, indir)
	os.Chdir(indir)
}

func SwitchOutput() {
	pwd, _ := os.Getwd()
	currentdir = pwd
	log.Printf("Switching to OUTPUT %s to %s ", pwd, outdir)
	os.Chdir(outdir)
}

func ReadConfig() {
	defaultdir, _ = os.Getwd()
	currentdir = defaultdir
	if indir == "." {
		indir = defaultdir
	} else {
		finfo, err := os.Stat(indir)
		if err != nil {
			log.Println("Error Input Dir ", indir, err)
			os.Exit(-1)
		} else {
			if !finfo.IsDir() {
				log.Println("Error Input Dir is not a Directory ", indir)
				os.Exit(-1)
			}
		}
	}

	if outdir == "." {
		outdir = defaultdir
	} else {
		finfo, err := os.Stat(outdir)
		if err != nil {
			log.Print("Creating OUTPUT directory : ", outdir)
			err = os.Mkdir(outdir, os.ModeDir|os.ModePerm)
			if err != nil {
				log.Print("Error Creating Directory ", outdir, err)
				os.Exit(-1)
			}
		} else {
			if !finfo.IsDir() {
				log.Panicln("Error Output Dir is not a Directory ", outdir)
			}
		}
	}
	outdir, _ = filepath.Abs(outdir)
	indir, _ = filepath.Abs(indir)
	log.Printf("WORK directory : %s", defaultdir)
	log.Printf("INPUT directory :  %s", indir)
	log.Printf("OUTPUT directory :  %s", outdir)
}

func init() {
	flag.StringVar(&outdir, "outdir", ".", "Directory where all the output files are generated..")
	flag.StringVar(&indir, "indir", ".", "Directory where all the input files are read..")
	help := flag.Bool("help", false, "prints this help")
	verbose := flag.Bool("v", true, "Print logs verbose mode")
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		os.Exit(0)
		return
	}

	ReadConfig()
	log.Println("Current indir & outdir ", indir, outdir)
	ReadAppConfig()
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
}

func main() {
	SwitchInput()
	towers, err := deployment.LoadTowers(TowersFile)
	SwitchBack()
	if err != nil {
		log.Fatal("Tower configuration : ", err)
	}

	grid, err := deployment.Generate(deployment.GridConfig{
		CenterLat: CenterLat,
		CenterLon: CenterLon,
		GridSize:  GridSize,
		AreaKm:    AreaKm,
	})
	if err != nil {
		log.Fatal("Grid configuration : ", err)
	}

	csys := coverage.NewCSystem()
	csys.Parallel = true

	dataset, err := csys.EvaluateCoverage(towers, grid)
	if err != nil {
		log.Fatal("Coverage evaluation : ", err)
	}

	// Optional external layers. Failures degrade to unavailable and never
	// abort the run.
	layers, outcomes := geodata.Collect(loadSources()...)
	for _, o := range outcomes {
		if o.OK {
			log.Infof("layer %s : ok", o.Source)
		} else {
			log.Warnf("layer %s : failed : %s", o.Source, o.Reason)
		}
	}
	extracted, excluded := geodata.ExtractTowerHeights(layers)
	records := towerRecords(towers)
	records = append(records, extracted...)

	SwitchOutput()
	if _, err := export.WriteSnapshot(".", dataset); err != nil {
		log.Fatal("CSV export : ", err)
	}

	if SQLiteFile != "" {
		runID := time.Now().Format("20060102_150405")
		if err := export.WriteSQLite(SQLiteFile, runID, dataset); err != nil {
			log.Error("SQLite export : ", err)
		}
	}

	if Heatmaps {
		for _, tw := range towers {
			field, ferr := csys.EvaluateField(tw, grid)
			if ferr != nil {
				log.Error("Heatmap field : ", ferr)
				continue
			}
			if err := export.SaveHeatmapPNG("heatmap_"+tw.ID+".png", field, 4); err != nil {
				log.Error("Heatmap PNG : ", err)
			}
			if WebPQuality > 0 {
				if err := export.SaveHeatmapWebP("heatmap_"+tw.ID+".webp", field, 4, float32(WebPQuality)); err != nil {
					log.Error("Heatmap WebP : ", err)
				}
			}
		}
	}

	if err := export.WriteTowerMap("tower_height_map.html", CenterLat, CenterLon, records); err != nil {
		log.Error("Tower map : ", err)
	}

	report := export.BuildHeightReport(records, excluded)
	report.Print(os.Stdout)
	report.ExportHistogram("tower_height_distribution")

	printSummary(dataset, len(towers))
	SwitchBack()
}

// loadSources assembles the optional layer sources for this run. DEM,
// population and imagery catalogs are not acquired by this build and report
// unavailable; a cached feature extract can be supplied through FeaturesFile.
func loadSources() []geodata.Source {
	sources := []geodata.Source{
		geodata.UnavailableSource{Layer: "elevation"},
		geodata.UnavailableSource{Layer: "population"},
		geodata.UnavailableSource{Layer: "imagery"},
	}
	if FeaturesFile == "" {
		return sources
	}
	var features []geodata.RawFeature
	SwitchInput()
	vlib.LoadStructure(FeaturesFile, &features)
	SwitchBack()
	if len(features) == 0 {
		log.Warnf("No features read from %s", FeaturesFile)
		return sources
	}
	return append(sources, geodata.StaticSource{Layer: "towers_osm", Features: features})
}

func towerRecords(towers []deployment.Tower) []geodata.TowerHeight {
	records := make([]geodata.TowerHeight, len(towers))
	for i, tw := range towers {
		records[i] = geodata.TowerHeight{
			Type:      tw.Type,
			Lat:       tw.Lat,
			Lon:       tw.Lon,
			HeightM:   tw.HeightM,
			Estimated: tw.HeightEstimated,
		}
	}
	return records
}

func printSummary(dataset coverage.CoverageDataset, ntowers int) {
	signal := dataset.SignalDbm()
	errdb := dataset.ErrorDb()

	fmt.Println("\n=== Coverage Summary ===")
	fmt.Printf("Total coverage points: %d\n", len(dataset))
	fmt.Printf("Number of towers: %d\n", ntowers)
	if len(dataset) > 0 {
		fmt.Printf("Average signal strength: %.2f dBm\n", stat.Mean(signal, nil))
		fmt.Printf("Signal strength range: %.2f to %.2f dBm\n", floats.Min(signal), floats.Max(signal))
		fmt.Printf("Average error estimate: %.2f dB\n", stat.Mean(errdb, nil))
	}
}
