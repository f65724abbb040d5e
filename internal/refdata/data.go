package refdata

// BuiltinUnits returns the unit table used by DefaultIndex. Factors convert
// to one reference unit per dimension: meter, degree (angle), radian,
// kilogram, newton, second, kelvin, cubic meter (volume), byte and meter
// per second (speed).
func BuiltinUnits() []*Unit {
	return []*Unit{
		// Length, base: meter.
		{ID: "meter", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "m", Singular: "meter", Plural: "meters"},
			Names:       []string{"m", "meter", "meters", "metre", "metres"}},
		{ID: "millimeter", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 0.001},
			DisplayName: DisplayName{Symbol: "mm", Singular: "millimeter", Plural: "millimeters"},
			Names:       []string{"mm", "millimeter", "millimeters", "millimetre", "millimetres"}},
		{ID: "centimeter", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 0.01},
			DisplayName: DisplayName{Symbol: "cm", Singular: "centimeter", Plural: "centimeters"},
			Names:       []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}},
		{ID: "kilometer", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 1000},
			DisplayName: DisplayName{Symbol: "km", Singular: "kilometer", Plural: "kilometers"},
			Names:       []string{"km", "kilometer", "kilometers", "kilometre", "kilometres"}},
		{ID: "inch", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 0.0254},
			DisplayName: DisplayName{Symbol: "in", Singular: "inch", Plural: "inches"},
			Names:       []string{"in", "inch", "inches"}},
		{ID: "foot", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 0.3048},
			DisplayName: DisplayName{Symbol: "ft", Singular: "foot", Plural: "feet"},
			Names:       []string{"ft", "foot", "feet"}},
		{ID: "yard", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 0.9144},
			DisplayName: DisplayName{Symbol: "yd", Singular: "yard", Plural: "yards"},
			Names:       []string{"yd", "yard", "yards"}},
		{ID: "mile", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 1609.344},
			DisplayName: DisplayName{Symbol: "mi", Singular: "mile", Plural: "miles"},
			Names:       []string{"mi", "mile", "miles"}},
		{ID: "nautical-mile", Dimension: "length", Conversion: Conversion{Kind: Linear, Factor: 1852},
			DisplayName: DisplayName{Symbol: "nmi", Singular: "nautical mile", Plural: "nautical miles"},
			Names:       []string{"nmi", "nautical mile", "nautical miles"}},
		{ID: "arcminute", Dimension: "angle", Conversion: Conversion{Kind: Linear, Factor: 1.0 / 60},
			DisplayName: DisplayName{Symbol: "′", Singular: "arcminute", Plural: "arcminutes"},
			Names:       []string{"′", "arcmin", "arcminute", "arcminutes"}},
		{ID: "arcsecond", Dimension: "angle", Conversion: Conversion{Kind: Linear, Factor: 1.0 / 3600},
			DisplayName: DisplayName{Symbol: "″", Singular: "arcsecond", Plural: "arcseconds"},
			Names:       []string{"″", "arcsec", "arcsecond", "arcseconds"}},
		{ID: "degree", Dimension: "angle", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "°", Singular: "degree", Plural: "degrees"},
			Names:       []string{"°", "deg", "degree", "degrees"}},
		{ID: "radian", Dimension: "angle-radian", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "rad", Singular: "radian", Plural: "radians"},
			Names:       []string{"rad", "radian", "radians"}},

		// Mass, base: kilogram.
		{ID: "kilogram", Dimension: "mass", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "kg", Singular: "kilogram", Plural: "kilograms"},
			Names:       []string{"kg", "kilogram", "kilograms"}},
		{ID: "gram", Dimension: "mass", Conversion: Conversion{Kind: Linear, Factor: 0.001},
			DisplayName: DisplayName{Symbol: "g", Singular: "gram", Plural: "grams"},
			Names:       []string{"g", "gram", "grams"}},
		{ID: "pound-mass", Dimension: "mass", Conversion: Conversion{Kind: Linear, Factor: 0.45359237},
			DisplayName: DisplayName{Symbol: "lb", Singular: "pound", Plural: "pounds"},
			Names:       []string{"lb", "lbs", "pound", "pounds"}},
		{ID: "ounce", Dimension: "mass", Conversion: Conversion{Kind: Linear, Factor: 0.028349523125},
			DisplayName: DisplayName{Symbol: "oz", Singular: "ounce", Plural: "ounces"},
			Names:       []string{"oz", "ounce", "ounces"}},

		// Force, base: newton. Ground §8 scenario 8's "pound force".
		{ID: "newton", Dimension: "force", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "N", Singular: "newton", Plural: "newtons"},
			Names:       []string{"N", "newton", "newtons"}},
		{ID: "pound-force", Dimension: "force", Conversion: Conversion{Kind: Linear, Factor: 4.4482216152605},
			DisplayName: DisplayName{Symbol: "lbf", Singular: "pound force", Plural: "pounds force"},
			Names:       []string{"lbf", "pound force", "pounds force", "pound-force"}},

		// Time, base: second.
		{ID: "second", Dimension: "time", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "s", Singular: "second", Plural: "seconds"},
			Names:       []string{"s", "sec", "second", "seconds"}},
		{ID: "minute", Dimension: "time", Conversion: Conversion{Kind: Linear, Factor: 60},
			DisplayName: DisplayName{Symbol: "min", Singular: "minute", Plural: "minutes"},
			Names:       []string{"min", "minute", "minutes"}},
		{ID: "hour", Dimension: "time", Conversion: Conversion{Kind: Linear, Factor: 3600},
			DisplayName: DisplayName{Symbol: "h", Singular: "hour", Plural: "hours"},
			Names:       []string{"h", "hr", "hour", "hours"}},
		{ID: "day", Dimension: "time", Conversion: Conversion{Kind: Linear, Factor: 86400},
			DisplayName: DisplayName{Symbol: "d", Singular: "day", Plural: "days"},
			Names:       []string{"d", "day", "days"}},
		{ID: "week", Dimension: "time", Conversion: Conversion{Kind: Linear, Factor: 604800},
			DisplayName: DisplayName{Symbol: "wk", Singular: "week", Plural: "weeks"},
			Names:       []string{"wk", "week", "weeks"}},

		// Temperature, base: kelvin. Affine conversions.
		{ID: "kelvin", Dimension: "temperature", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "K", Singular: "kelvin", Plural: "kelvin"},
			Names:       []string{"K", "kelvin"}},
		{ID: "celsius", Dimension: "temperature", Conversion: Conversion{Kind: Affine, Factor: 1, Offset: 273.15},
			DisplayName: DisplayName{Symbol: "°C", Singular: "degree Celsius", Plural: "degrees Celsius"},
			Names:       []string{"°C", "degC", "celsius"}},
		{ID: "fahrenheit", Dimension: "temperature", Conversion: Conversion{Kind: Affine, Factor: 5.0 / 9, Offset: 459.67},
			DisplayName: DisplayName{Symbol: "°F", Singular: "degree Fahrenheit", Plural: "degrees Fahrenheit"},
			Names:       []string{"°F", "degF", "fahrenheit"}},

		// Volume, base: cubic meter.
		{ID: "liter", Dimension: "volume", Conversion: Conversion{Kind: Linear, Factor: 0.001},
			DisplayName: DisplayName{Symbol: "L", Singular: "liter", Plural: "liters"},
			Names:       []string{"L", "l", "liter", "liters", "litre", "litres"}},
		{ID: "milliliter", Dimension: "volume", Conversion: Conversion{Kind: Linear, Factor: 1e-6},
			DisplayName: DisplayName{Symbol: "mL", Singular: "milliliter", Plural: "milliliters"},
			Names:       []string{"mL", "ml", "milliliter", "milliliters"}},
		{ID: "gallon", Dimension: "volume", Conversion: Conversion{
			Kind: Variant,
			US:   &Conversion{Kind: Linear, Factor: 0.003785411784},
			UK:   &Conversion{Kind: Linear, Factor: 0.00454609},
		}, DisplayName: DisplayName{Symbol: "gal", Singular: "gallon", Plural: "gallons"},
			Names: []string{"gal", "gallon", "gallons"}},
		{ID: "fl-oz", Dimension: "volume", Conversion: Conversion{Kind: Linear, Factor: 2.95735295625e-5},
			DisplayName: DisplayName{Symbol: "fl oz", Singular: "fluid ounce", Plural: "fluid ounces"},
			Names:       []string{"fl oz", "fluid ounce", "fluid ounces"}},

		// Data size, base: byte.
		{ID: "byte", Dimension: "data", Conversion: Conversion{Kind: Linear, Factor: 1},
			DisplayName: DisplayName{Symbol: "B", Singular: "byte", Plural: "bytes"},
			Names:       []string{"B", "byte", "bytes"}},
		{ID: "kibibyte", Dimension: "data", Conversion: Conversion{Kind: Linear, Factor: 1024},
			DisplayName: DisplayName{Symbol: "KiB", Singular: "kibibyte", Plural: "kibibytes"},
			Names:       []string{"KiB", "kibibyte", "kibibytes"}},
		{ID: "mebibyte", Dimension: "data", Conversion: Conversion{Kind: Linear, Factor: 1024 * 1024},
			DisplayName: DisplayName{Symbol: "MiB", Singular: "mebibyte", Plural: "mebibytes"},
			Names:       []string{"MiB", "mebibyte", "mebibytes"}},
		{ID: "kilobyte", Dimension: "data", Conversion: Conversion{Kind: Linear, Factor: 1000},
			DisplayName: DisplayName{Symbol: "kB", Singular: "kilobyte", Plural: "kilobytes"},
			Names:       []string{"kB", "KB", "kilobyte", "kilobytes"}},

		// Speed, base: meter/second is expressed as a Derived unit; knot is
		// kept as a first-class named unit since it has no clean SI symbol.
		{ID: "knot", Dimension: "speed", Conversion: Conversion{Kind: Linear, Factor: 0.514444444},
			DisplayName: DisplayName{Symbol: "kn", Singular: "knot", Plural: "knots"},
			Names:       []string{"kn", "knot", "knots"}},
	}
}

// BuiltinDimensions lists the base unit for every dimension above.
func BuiltinDimensions() []*Dimension {
	return []*Dimension{
		{Name: "length", BaseUnit: "meter"},
		{Name: "angle", BaseUnit: "degree"},
		{Name: "angle-radian", BaseUnit: "radian"},
		{Name: "mass", BaseUnit: "kilogram"},
		{Name: "force", BaseUnit: "newton"},
		{Name: "time", BaseUnit: "second"},
		{Name: "temperature", BaseUnit: "kelvin"},
		{Name: "volume", BaseUnit: "liter"},
		{Name: "data", BaseUnit: "byte"},
		{Name: "speed", BaseUnit: "knot"},
	}
}
