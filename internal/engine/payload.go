package engine

import (
	"time"

	"github.com/vk/embergrid/internal/export"
	"github.com/vk/embergrid/internal/fuels"
	"github.com/vk/embergrid/internal/job"
	"github.com/vk/embergrid/internal/params"
)

// jobPayload is the wire form of one submission. The engine's API uses
// lowerCamel field names throughout; timestamps travel as RFC 3339 strings.
type jobPayload struct {
	ID          string            `json:"id"`
	CreatedAt   string            `json:"createdAt"`
	Priority    int               `json:"priority"`
	Tags        map[string]string `json:"tags,omitempty"`
	Parameters  parametersPayload `json:"parameters"`
	Fuels       []fuels.Fuel      `json:"fuels"`
	Exports     []exportPayload   `json:"exports"`
	StagedFiles []string          `json:"stagedFiles"`
}

type coordinatePayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type parametersPayload struct {
	InputFolder    string `json:"inputFolder"`
	LutFile        string `json:"lutFile"`
	ProjectionFile string `json:"projectionFile"`
	ElevationFile  string `json:"elevationFile"`
	FuelMapFile    string `json:"fuelMapFile"`
	WeatherFile    string `json:"weatherFile"`

	IgnitionTime     string            `json:"ignitionTime"`
	IgnitionLocation coordinatePayload `json:"ignitionLocation"`
	ScenarioStart    string            `json:"scenarioStart"`
	ScenarioEnd      string            `json:"scenarioEnd"`

	StationName      string            `json:"stationName"`
	StationElevation float64           `json:"stationElevation"`
	StationLocation  coordinatePayload `json:"stationLocation"`

	StartingFfmc   float64 `json:"startingFfmc"`
	StartingDmc    float64 `json:"startingDmc"`
	StartingDc     float64 `json:"startingDc"`
	StartingPrecip float64 `json:"startingPrecip"`
	HffmcValue     float64 `json:"hffmcValue"`
	HffmcHour      int     `json:"hffmcHour"`

	StreamStart string `json:"streamStart"`
	StreamEnd   string `json:"streamEnd"`

	BurningMinFwi float64 `json:"burningMinFwi"`
	BurningMinIsi float64 `json:"burningMinIsi"`
	BurningMaxRh  float64 `json:"burningMaxRh"`
	BurningMaxWs  float64 `json:"burningMaxWs"`

	MaxAccelStep        float64 `json:"maxAccelStep"`
	DistanceResolution  float64 `json:"distanceResolution"`
	PerimeterResolution float64 `json:"perimeterResolution"`
	MinSpreadingRos     float64 `json:"minSpreadingRos"`
	StopAtGridEnd       bool    `json:"stopAtGridEnd"`
	Breaching           bool    `json:"breaching"`
	DynamicThreshold    bool    `json:"dynamicThreshold"`
	Spotting            bool    `json:"spotting"`

	IgnitionDeltaX    float64 `json:"ignitionDeltaX"`
	IgnitionDeltaY    float64 `json:"ignitionDeltaY"`
	IgnitionDeltaTime float64 `json:"ignitionDeltaTime"`

	TerrainEffect bool `json:"terrainEffect"`
	WindEffect    bool `json:"windEffect"`

	PercentOverride float64 `json:"percentOverride"`
	NodataElevation float64 `json:"nodataElevation"`

	SpatialInterp       bool `json:"spatialInterp"`
	FromSpatialWeather  bool `json:"fromSpatialWeather"`
	HistoryOnFwi        bool `json:"historyOnFwi"`
	BurningConditionsOn bool `json:"burningConditionsOn"`
	TemporalInterp      bool `json:"temporalInterp"`
}

// exportPayload carries one descriptor. Instant exports set time; range
// exports set start and end.
type exportPayload struct {
	Statistic string `json:"statistic"`
	Output    string `json:"output"`
	Time      string `json:"time,omitempty"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

func encodeJob(j *job.Job) jobPayload {
	exports := make([]exportPayload, 0, len(j.Exports))
	for _, d := range j.Exports {
		exports = append(exports, encodeExport(d))
	}
	return jobPayload{
		ID:          j.ID,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339),
		Priority:    j.Priority,
		Tags:        j.Tags,
		Parameters:  encodeParameters(j.Params),
		Fuels:       j.Fuels,
		Exports:     exports,
		StagedFiles: j.StagedFiles,
	}
}

func encodeExport(d export.Descriptor) exportPayload {
	p := exportPayload{
		Statistic: string(d.Statistic),
		Output:    d.OutputPath,
	}
	if d.Temporal.IsRange() {
		p.Start = d.Temporal.Start.Format(time.RFC3339)
		p.End = d.Temporal.End.Format(time.RFC3339)
	} else {
		p.Time = d.Temporal.Start.Format(time.RFC3339)
	}
	return p
}

func encodeParameters(p *params.Parameters) parametersPayload {
	return parametersPayload{
		InputFolder:    p.InputFolder,
		LutFile:        p.LUTFile,
		ProjectionFile: p.ProjectionFile,
		ElevationFile:  p.ElevationFile,
		FuelMapFile:    p.FuelMapFile,
		WeatherFile:    p.WeatherFile,

		IgnitionTime:     p.IgnitionTime.Format(time.RFC3339),
		IgnitionLocation: coordinatePayload{Lat: p.IgnitionLocation.Lat, Lon: p.IgnitionLocation.Lon},
		ScenarioStart:    p.ScenarioStart.Format(time.RFC3339),
		ScenarioEnd:      p.ScenarioEnd.Format(time.RFC3339),

		StationName:      p.StationName,
		StationElevation: p.StationElevation,
		StationLocation:  coordinatePayload{Lat: p.StationLocation.Lat, Lon: p.StationLocation.Lon},

		StartingFfmc:   p.StartingFFMC,
		StartingDmc:    p.StartingDMC,
		StartingDc:     p.StartingDC,
		StartingPrecip: p.StartingPrecip,
		HffmcValue:     p.HFFMCValue,
		HffmcHour:      p.HFFMCHour,

		StreamStart: p.StreamStart.Format(time.RFC3339),
		StreamEnd:   p.StreamEnd.Format(time.RFC3339),

		BurningMinFwi: p.BurningMinFWI,
		BurningMinIsi: p.BurningMinISI,
		BurningMaxRh:  p.BurningMaxRH,
		BurningMaxWs:  p.BurningMaxWS,

		MaxAccelStep:        p.MaxAccelStep,
		DistanceResolution:  p.DistanceResolution,
		PerimeterResolution: p.PerimeterResolution,
		MinSpreadingRos:     p.MinSpreadingROS,
		StopAtGridEnd:       p.StopAtGridEnd,
		Breaching:           p.Breaching,
		DynamicThreshold:    p.DynamicThreshold,
		Spotting:            p.Spotting,

		IgnitionDeltaX:    p.IgnitionDeltaX,
		IgnitionDeltaY:    p.IgnitionDeltaY,
		IgnitionDeltaTime: p.IgnitionDeltaTime,

		TerrainEffect: p.TerrainEffect,
		WindEffect:    p.WindEffect,

		PercentOverride: p.PercentOverride,
		NodataElevation: p.NodataElevation,

		SpatialInterp:       p.SpatialInterp,
		FromSpatialWeather:  p.FromSpatialWeather,
		HistoryOnFwi:        p.HistoryOnFWI,
		BurningConditionsOn: p.BurningConditionsOn,
		TemporalInterp:      p.TemporalInterp,
	}
}
