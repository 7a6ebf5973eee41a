package fuels

// RGB is the display color of a fuel type on rendered grids.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Fuel is one row of the lookup table: an FBP fuel code, its descriptive
// name, the grid cell value that maps to it, and a display color.
type Fuel struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Index int    `json:"index"`
	Color RGB    `json:"color"`
}

// Default returns a fresh copy of the packaged fuel table. Callers may
// mutate the result freely.
func Default() []Fuel {
	out := make([]Fuel, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// defaultTable lists the standard FBP fuel types with their conventional
// grid values and colors. Grid values group by category: conifers 1-7,
// deciduous 11-12, mixedwood 21-24, grass 31-32, slash 41-43, and the
// non-burnable classes from 101.
var defaultTable = []Fuel{
	{Code: "C-1", Name: "Spruce-Lichen Woodland", Index: 1, Color: RGB{R: 209, G: 255, B: 115}},
	{Code: "C-2", Name: "Boreal Spruce", Index: 2, Color: RGB{R: 34, G: 102, B: 51}},
	{Code: "C-3", Name: "Mature Jack or Lodgepole Pine", Index: 3, Color: RGB{R: 131, G: 199, B: 149}},
	{Code: "C-4", Name: "Immature Jack or Lodgepole Pine", Index: 4, Color: RGB{R: 112, G: 168, B: 0}},
	{Code: "C-5", Name: "Red and White Pine", Index: 5, Color: RGB{R: 223, G: 184, B: 230}},
	{Code: "C-6", Name: "Conifer Plantation", Index: 6, Color: RGB{R: 172, G: 102, B: 237}},
	{Code: "C-7", Name: "Ponderosa Pine / Douglas-Fir", Index: 7, Color: RGB{R: 112, G: 12, B: 242}},
	{Code: "D-1", Name: "Leafless Aspen", Index: 11, Color: RGB{R: 196, G: 189, B: 151}},
	{Code: "D-2", Name: "Green Aspen", Index: 12, Color: RGB{R: 137, G: 112, B: 68}},
	{Code: "M-1", Name: "Boreal Mixedwood, Leafless", Index: 21, Color: RGB{R: 255, G: 211, B: 127}},
	{Code: "M-2", Name: "Boreal Mixedwood, Green", Index: 22, Color: RGB{R: 255, G: 170, B: 0}},
	{Code: "M-3", Name: "Dead Balsam Fir Mixedwood, Leafless", Index: 23, Color: RGB{R: 99, G: 0, B: 0}},
	{Code: "M-4", Name: "Dead Balsam Fir Mixedwood, Green", Index: 24, Color: RGB{R: 170, G: 0, B: 0}},
	{Code: "O-1a", Name: "Matted Grass", Index: 31, Color: RGB{R: 255, G: 255, B: 190}},
	{Code: "O-1b", Name: "Standing Grass", Index: 32, Color: RGB{R: 230, G: 230, B: 0}},
	{Code: "S-1", Name: "Jack or Lodgepole Pine Slash", Index: 41, Color: RGB{R: 170, G: 0, B: 255}},
	{Code: "S-2", Name: "White Spruce / Balsam Slash", Index: 42, Color: RGB{R: 200, G: 120, B: 255}},
	{Code: "S-3", Name: "Coastal Cedar / Hemlock / Douglas-Fir Slash", Index: 43, Color: RGB{R: 115, G: 38, B: 115}},
	{Code: "Non-fuel", Name: "Non-fuel", Index: 101, Color: RGB{R: 130, G: 130, B: 130}},
	{Code: "Water", Name: "Water", Index: 102, Color: RGB{R: 115, G: 223, B: 255}},
	{Code: "Unclassified", Name: "Unclassified", Index: 103, Color: RGB{R: 0, G: 0, B: 0}},
}
