package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ReadAppConfig reads all the configuration for the app
func ReadAppConfig() {
	viper.AddConfigPath(indir)
	viper.SetConfigName("config")

	err := viper.ReadInConfig()
	if err != nil {
		log.Print("ReadInConfig ", err)
	}
	// Set all the default values
	{
		viper.SetDefault("CenterLat", CenterLat)
		viper.SetDefault("CenterLon", CenterLon)
		viper.SetDefault("GridSize", GridSize)
		viper.SetDefault("AreaKm", AreaKm)
		viper.SetDefault("TowersFile", TowersFile)
		viper.SetDefault("FeaturesFile", FeaturesFile)
		viper.SetDefault("Heatmaps", Heatmaps)
		viper.SetDefault("WebPQuality", WebPQuality)
		viper.SetDefault("SQLiteFile", SQLiteFile)
	}

	// Load from the external configuration files
	CenterLat = viper.GetFloat64("CenterLat")
	CenterLon = viper.GetFloat64("CenterLon")
	GridSize = viper.GetInt("GridSize")
	AreaKm = viper.GetFloat64("AreaKm")
	TowersFile = viper.GetString("TowersFile")
	FeaturesFile = viper.GetString("FeaturesFile")
	Heatmaps = viper.GetBool("Heatmaps")
	WebPQuality = viper.GetFloat64("WebPQuality")
	SQLiteFile = viper.GetString("SQLiteFile")

	log.Println("Grid : ", GridSize, "x", GridSize, " over ", AreaKm, "km at (", CenterLat, ",", CenterLon, ")")
}
