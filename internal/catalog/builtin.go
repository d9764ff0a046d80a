package catalog

import "github.com/mesh-intelligence/unitconv/pkg/types"

// Category names of the built-in table.
const (
	PlaneAngle       = "Plane Angle"
	Length           = "Length"
	Mass             = "Mass"
	Temperature      = "Temperature"
	Speed            = "Speed"
	Time             = "Time"
	Volume           = "Volume"
	Pressure         = "Pressure"
	Energy           = "Energy"
	Power            = "Power"
	FuelEconomy      = "Fuel Economy"
	DataTransferRate = "Data Transfer Rate"
	DigitalStorage   = "Digital Storage"
	Area             = "Area"
	Frequency        = "Frequency"
)

// builtInUnit describes one linear unit of the built-in table.
type builtInUnit struct {
	name   string
	factor float64
}

// builtInCategory describes one linear category of the built-in table.
type builtInCategory struct {
	name  string
	units []builtInUnit
}

// Linear categories, keyed by factor to the category's base unit. The
// Temperature category is affine and is declared by temperatureCategory.
var (
	planeAngle = builtInCategory{PlaneAngle, []builtInUnit{
		{"Degree", 1.0},
		{"Arcsecond", 1.0 / 3600},
		{"Gradian", 0.9},
		{"Milliradian", 0.0572958},
		{"Minute of arc", 1.0 / 60},
		{"Radian", 57.2958},
	}}

	length = builtInCategory{Length, []builtInUnit{
		{"Meter", 1.0},
		{"Kilometer", 1000.0},
		{"Centimeter", 0.01},
		{"Millimeter", 0.001},
		{"Micrometer", 1e-6},
		{"Nanometer", 1e-9},
		{"Mile", 1609.34},
		{"Yard", 0.9144},
		{"Foot", 0.3048},
		{"Inch", 0.0254},
		{"Nautical Mile", 1852.0},
	}}

	mass = builtInCategory{Mass, []builtInUnit{
		{"Tonne", 1000.0},
		{"Kilogram", 1.0},
		{"Gram", 0.001},
		{"Milligram", 1e-6},
		{"Microgram", 1e-9},
		{"Pound", 0.453592},
		{"Ounce", 0.0283495},
		{"Stone", 6.35029},
		{"Ton (metric)", 1000.0},
		{"Imperial ton", 1016.04691},
	}}

	speed = builtInCategory{Speed, []builtInUnit{
		{"Meters per second", 1.0},
		{"Kilometers per hour", 0.277778},
		{"Miles per hour", 0.44704},
		{"Knots", 0.514444},
		{"Feet per second", 0.3048},
	}}

	timeUnits = builtInCategory{Time, []builtInUnit{
		{"Nanosecond", 1e-9},
		{"Microsecond", 1e-6},
		{"Millisecond", 0.001},
		{"Second", 1.0},
		{"Minute", 60.0},
		{"Hour", 3600.0},
		{"Day", 86400.0},
		{"Week", 604800.0},
		{"Month", 2629746.0},
		{"Year", 31556952.0},
		{"Decade", 315569520.0},
		{"Century", 3155695200.0},
	}}

	volume = builtInCategory{Volume, []builtInUnit{
		{"US liquid gallon", 3.78541},
		{"US liquid quart", 0.946353},
		{"US liquid pint", 0.473176},
		{"US fluid ounce", 0.0295735},
		{"US tablespoon", 0.0147868},
		{"US teaspoon", 0.00492892},
		{"Imperial gallon", 4.54609},
		{"Imperial quart", 1.13652},
		{"Imperial pint", 0.568261},
		{"Imperial cup", 0.284131},
		{"Imperial fluid ounce", 0.0284131},
		{"Imperial tablespoon", 0.0177582},
		{"Imperial teaspoon", 0.00591939},
		{"Cubic foot", 28.3168},
		{"Cubic inch", 0.0163871},
		{"Liter", 1.0},
		{"Milliliter", 0.001},
		{"Cubic meter", 1000.0},
		{"Cubic centimeter", 0.001},
	}}

	pressure = builtInCategory{Pressure, []builtInUnit{
		{"Pascal", 1.0},
		{"Kilopascal", 1000.0},
		{"Bar", 100000.0},
		{"Atmosphere", 101325.0},
		{"PSI", 6894.76},
		{"Torr", 133.322},
	}}

	energy = builtInCategory{Energy, []builtInUnit{
		{"Joule", 1.0},
		{"Kilojoule", 1000.0},
		{"Calorie", 4.184},
		{"Kilocalorie", 4184.0},
		{"Watt-hour", 3600.0},
		{"Kilowatt-hour", 3.6e6},
		{"Electronvolt", 1.60218e-19},
		{"British thermal unit", 1055.06},
	}}

	power = builtInCategory{Power, []builtInUnit{
		{"Watt", 1.0},
		{"Kilowatt", 1000.0},
		{"Megawatt", 1000000.0},
		{"Horsepower", 745.7},
	}}

	// Liters per 100km and Litres per 1000km are inverse-style units carried
	// as plain ratios; see DESIGN.md.
	fuelEconomy = builtInCategory{FuelEconomy, []builtInUnit{
		{"Miles per gallon (US)", 1.0},
		{"Miles per gallon (UK)", 1.20095},
		{"Kilometers per liter", 0.425144},
		{"Liters per 100km", 235.215},
		{"Kilometre per gallon (US)", kilometrePerGallonUS},
		{"Litres per 1000km", 23.5215},
	}}

	dataTransferRate = builtInCategory{DataTransferRate, []builtInUnit{
		{"Bits per second", 1.0},
		{"Kilobits per second", 1e3},
		{"Megabits per second", 1e6},
		{"Gigabits per second", 1e9},
		{"Terabits per second", 1e12},
		{"Kilobytes per second", 8e3},
		{"Megabytes per second", 8e6},
		{"Gigabytes per second", 8e9},
		{"Terabytes per second", 8e12},
	}}

	digitalStorage = builtInCategory{DigitalStorage, []builtInUnit{
		{"Bit", 1.0},
		{"Byte", 8.0},
		{"Kilobit", 1e3},
		{"Megabit", 1e6},
		{"Gigabit", 1e9},
		{"Terabit", 1e12},
		{"Petabit", 1e15},
		{"Kilobyte", 8e3},
		{"Megabyte", 8e6},
		{"Gigabyte", 8e9},
		{"Terabyte", 8e12},
		{"Petabyte", 8e15},
	}}

	area = builtInCategory{Area, []builtInUnit{
		{"Square kilometre", 1e6},
		{"Square metre", 1.0},
		{"Square mile", 2.58999e6},
		{"Square yard", 0.836127},
		{"Square foot", 0.092903},
		{"Square inch", 0.00064516},
		{"Hectare", 10000},
		{"Acre", 4046.85642},
	}}

	frequency = builtInCategory{Frequency, []builtInUnit{
		{"Hertz", 1.0},
		{"Kilohertz", 1e3},
		{"Megahertz", 1e6},
		{"Gigahertz", 1e9},
	}}
)

// Kilometre per gallon (US) is the Kilometers per liter factor times liters
// per US gallon, multiplied as float64 values rather than folded as an exact
// constant.
var (
	kilometersPerLiter   = 0.425144
	litersPerUSGallon    = 3.78541
	kilometrePerGallonUS = kilometersPerLiter * litersPerUSGallon
)

func celsiusToBase(x float64) float64   { return x }
func celsiusFromBase(x float64) float64 { return x }

func fahrenheitToBase(x float64) float64   { return (x - 32) * 5 / 9 }
func fahrenheitFromBase(x float64) float64 { return (x * 9 / 5) + 32 }

func kelvinToBase(x float64) float64   { return x - 273.15 }
func kelvinFromBase(x float64) float64 { return x + 273.15 }

// temperatureCategory is the only affine category. Its base is Celsius.
func temperatureCategory() types.Category {
	return types.Category{
		Name: Temperature,
		Units: []types.Unit{
			{Name: "Celsius", Rule: types.AffineRule{ToBaseFunc: celsiusToBase, FromBaseFunc: celsiusFromBase}},
			{Name: "Fahrenheit", Rule: types.AffineRule{ToBaseFunc: fahrenheitToBase, FromBaseFunc: fahrenheitFromBase}},
			{Name: "Kelvin", Rule: types.AffineRule{ToBaseFunc: kelvinToBase, FromBaseFunc: kelvinFromBase}},
		},
	}
}

func (b builtInCategory) category() types.Category {
	units := make([]types.Unit, len(b.units))
	for i, u := range b.units {
		units[i] = types.Unit{Name: u.name, Rule: types.LinearRule{Factor: u.factor}}
	}
	return types.Category{Name: b.name, Units: units}
}

// BuiltIn returns the built-in categories in listing order.
func BuiltIn() []types.Category {
	return []types.Category{
		planeAngle.category(),
		length.category(),
		mass.category(),
		temperatureCategory(),
		speed.category(),
		timeUnits.category(),
		volume.category(),
		pressure.category(),
		energy.category(),
		power.category(),
		fuelEconomy.category(),
		dataTransferRate.category(),
		digitalStorage.category(),
		area.category(),
		frequency.category(),
	}
}

// defaultCatalog is built once at package initialisation and shared by every
// caller. A failure here is a defect in the table above.
var defaultCatalog = mustNew(BuiltIn())

func mustNew(categories []types.Category) *Catalog {
	c, err := New(categories)
	if err != nil {
		panic("catalog: invalid built-in table: " + err.Error())
	}
	return c
}

// Default returns the built-in conversion table.
func Default() *Catalog {
	return defaultCatalog
}
