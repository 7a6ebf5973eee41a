package export

// Statistic identifies the physical quantity a single export captures. The
// string form is the key the engine expects in job payloads.
type Statistic string

// Scalar statistics, tied to one instant or one time range.
const (
	StatMaxFireIntensity      Statistic = "max_fire_intensity"
	StatMaxFlameLength        Statistic = "max_flame_length"
	StatMaxSpreadRate         Statistic = "max_spread_rate"
	StatMaxSurfaceConsumption Statistic = "max_surface_consumption"
	StatMaxCrownConsumption   Statistic = "max_crown_consumption"
	StatMaxTotalConsumption   Statistic = "max_total_consumption"
	StatMaxCrownBurn          Statistic = "max_crown_burn"
	StatMaxSpreadAzimuth      Statistic = "max_spread_azimuth"
	StatBurnGrid              Statistic = "burn_grid"
	StatMaxHeadRate           Statistic = "max_head_rate"
	StatMaxFlankRate          Statistic = "max_flank_rate"
	StatMaxBackRate           Statistic = "max_back_rate"
	StatArrivalTime           Statistic = "arrival_time"
	StatArrivalTimeMin        Statistic = "arrival_time_min"
	StatArrivalTimeMax        Statistic = "arrival_time_max"
)

// Spatial map statistics, tied to exactly one instant.
const (
	StatBackRate           Statistic = "back_rate"
	StatCrownBaseHeight    Statistic = "crown_base_height"
	StatCrownBurn          Statistic = "crown_burn"
	StatCrownConsumption   Statistic = "crown_consumption"
	StatCrownFuelLoad      Statistic = "crown_fuel_load"
	StatFireIntensity      Statistic = "fire_intensity"
	StatFlameLength        Statistic = "flame_length"
	StatFoliarMoisture     Statistic = "foliar_moisture"
	StatFlankRate          Statistic = "flank_rate"
	StatHeadRate           Statistic = "head_rate"
	StatPercentConifer     Statistic = "percent_conifer"
	StatPercentDeadFir     Statistic = "percent_dead_fir"
	StatSpreadAzimuth      Statistic = "spread_azimuth"
	StatSurfaceSpreadRate  Statistic = "surface_spread_rate"
	StatSurfaceConsumption Statistic = "surface_consumption"
	StatTotalConsumption   Statistic = "total_consumption"
	StatCuringDegree       Statistic = "curing_degree"
	StatDirectionVector    Statistic = "direction_vector"
	StatFuelLoad           Statistic = "fuel_load"
	StatGrassPhenology     Statistic = "grass_phenology"
	StatGreenup            Statistic = "greenup"
	StatSpreadVector       Statistic = "spread_vector"
	StatTreeHeight         Statistic = "tree_height"
)

// flagClass splits the recognized flags into the two grammars they follow:
// scalar exports take a filename plus one or two times, map exports take a
// filename plus exactly one time.
type flagClass int

const (
	classScalar flagClass = iota
	classMap
)

// flagSpec ties one command-line flag to its statistic and argument grammar.
type flagSpec struct {
	stat  Statistic
	class flagClass
}

// flagTable is the single source of truth for every recognized export flag.
// Each flag maps to a distinct statistic; adding a statistic is a one-row
// edit here, not a new branch anywhere else.
var flagTable = map[string]flagSpec{
	"-FI":    {StatMaxFireIntensity, classScalar},
	"-FL":    {StatMaxFlameLength, classScalar},
	"-ROS":   {StatMaxSpreadRate, classScalar},
	"-SFC":   {StatMaxSurfaceConsumption, classScalar},
	"-CFC":   {StatMaxCrownConsumption, classScalar},
	"-TFC":   {StatMaxTotalConsumption, classScalar},
	"-CFB":   {StatMaxCrownBurn, classScalar},
	"-RAZ":   {StatMaxSpreadAzimuth, classScalar},
	"-BG":    {StatBurnGrid, classScalar},
	"-HROS":  {StatMaxHeadRate, classScalar},
	"-FROS":  {StatMaxFlankRate, classScalar},
	"-BROS":  {StatMaxBackRate, classScalar},
	"-AT":    {StatArrivalTime, classScalar},
	"-ATMIN": {StatArrivalTimeMin, classScalar},
	"-ATMAX": {StatArrivalTimeMax, classScalar},

	"-BROS_MAP":           {StatBackRate, classMap},
	"-CBH_MAP":            {StatCrownBaseHeight, classMap},
	"-CFB_MAP":            {StatCrownBurn, classMap},
	"-CFC_MAP":            {StatCrownConsumption, classMap},
	"-CFL_MAP":            {StatCrownFuelLoad, classMap},
	"-FI_MAP":             {StatFireIntensity, classMap},
	"-FL_MAP":             {StatFlameLength, classMap},
	"-FMC_MAP":            {StatFoliarMoisture, classMap},
	"-FROS_MAP":           {StatFlankRate, classMap},
	"-HROS_MAP":           {StatHeadRate, classMap},
	"-PC_MAP":             {StatPercentConifer, classMap},
	"-PDF_MAP":            {StatPercentDeadFir, classMap},
	"-RAZ_MAP":            {StatSpreadAzimuth, classMap},
	"-RSS_MAP":            {StatSurfaceSpreadRate, classMap},
	"-SFC_MAP":            {StatSurfaceConsumption, classMap},
	"-TFC_MAP":            {StatTotalConsumption, classMap},
	"-CURINGDEGREE_MAP":   {StatCuringDegree, classMap},
	"-DIRVECTOR_MAP":      {StatDirectionVector, classMap},
	"-FUELLOAD_MAP":       {StatFuelLoad, classMap},
	"-GRASSPHENOLOGY_MAP": {StatGrassPhenology, classMap},
	"-GREENUP_MAP":        {StatGreenup, classMap},
	"-ROSVECTOR_MAP":      {StatSpreadVector, classMap},
	"-TREEHEIGHT_MAP":     {StatTreeHeight, classMap},
}

// Flags returns every recognized export flag. The order is unspecified.
func Flags() []string {
	flags := make([]string, 0, len(flagTable))
	for flag := range flagTable {
		flags = append(flags, flag)
	}
	return flags
}
