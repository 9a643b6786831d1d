package grocery

import "strings"

// Dimension is the physical quantity a unit measures. Units only convert
// within the same dimension.
type Dimension int

const (
	Other Dimension = iota
	Volume
	Weight
	Count
)

// String returns the lowercase dimension name
func (d Dimension) String() string {
	switch d {
	case Volume:
		return "volume"
	case Weight:
		return "weight"
	case Count:
		return "count"
	default:
		return "other"
	}
}

// UnitConversion describes a unit spelling: its dimension and the factor that
// converts one of it into the dimension's base unit (mL, g, or 1 item).
type UnitConversion struct {
	Dimension Dimension
	ToBase    float64
}

// Measure is a quantity paired with the unit it is expressed in.
type Measure struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Base unit factors. A cup is the rounded 240 mL, not 236.588; stored lists
// depend on it.
const (
	mlPerTsp     = 5.0
	mlPerTbsp    = 15.0
	mlPerFlOz    = 30.0
	mlPerCup     = 240.0
	mlPerPint    = 480.0
	mlPerQuart   = 960.0
	mlPerLiter   = 1000.0
	mlPerGallon  = 3840.0
	gramsPerOz   = 28.35
	gramsPerLb   = 453.59
	gramsPerKg   = 1000.0
	gramsPerMg   = 0.001
	itemsPerUnit = 1.0
)

var unitTable = map[string]UnitConversion{
	// volume, base mL
	"ml":           {Volume, 1},
	"milliliter":   {Volume, 1},
	"milliliters":  {Volume, 1},
	"millilitre":   {Volume, 1},
	"millilitres":  {Volume, 1},
	"l":            {Volume, mlPerLiter},
	"liter":        {Volume, mlPerLiter},
	"liters":       {Volume, mlPerLiter},
	"litre":        {Volume, mlPerLiter},
	"litres":       {Volume, mlPerLiter},
	"tsp":          {Volume, mlPerTsp},
	"tsps":         {Volume, mlPerTsp},
	"teaspoon":     {Volume, mlPerTsp},
	"teaspoons":    {Volume, mlPerTsp},
	"tbsp":         {Volume, mlPerTbsp},
	"tbsps":        {Volume, mlPerTbsp},
	"tbs":          {Volume, mlPerTbsp},
	"tablespoon":   {Volume, mlPerTbsp},
	"tablespoons":  {Volume, mlPerTbsp},
	"fl oz":        {Volume, mlPerFlOz},
	"fluid ounce":  {Volume, mlPerFlOz},
	"fluid ounces": {Volume, mlPerFlOz},
	"cup":          {Volume, mlPerCup},
	"cups":         {Volume, mlPerCup},
	"pint":         {Volume, mlPerPint},
	"pints":        {Volume, mlPerPint},
	"pt":           {Volume, mlPerPint},
	"quart":        {Volume, mlPerQuart},
	"quarts":       {Volume, mlPerQuart},
	"qt":           {Volume, mlPerQuart},
	"gallon":       {Volume, mlPerGallon},
	"gallons":      {Volume, mlPerGallon},
	"gal":          {Volume, mlPerGallon},

	// weight, base g
	"mg":        {Weight, gramsPerMg},
	"g":         {Weight, 1},
	"gram":      {Weight, 1},
	"grams":     {Weight, 1},
	"kg":        {Weight, gramsPerKg},
	"kilogram":  {Weight, gramsPerKg},
	"kilograms": {Weight, gramsPerKg},
	"oz":        {Weight, gramsPerOz},
	"ounce":     {Weight, gramsPerOz},
	"ounces":    {Weight, gramsPerOz},
	"lb":        {Weight, gramsPerLb},
	"lbs":       {Weight, gramsPerLb},
	"pound":     {Weight, gramsPerLb},
	"pounds":    {Weight, gramsPerLb},

	// count, base 1
	"piece":  {Count, itemsPerUnit},
	"pieces": {Count, itemsPerUnit},
	"whole":  {Count, itemsPerUnit},
	"each":   {Count, itemsPerUnit},
	"clove":  {Count, itemsPerUnit},
	"cloves": {Count, itemsPerUnit},
	"slice":  {Count, itemsPerUnit},
	"slices": {Count, itemsPerUnit},
	"can":    {Count, itemsPerUnit},
	"cans":   {Count, itemsPerUnit},

	// known but never scaled
	"pinch":   {Other, 1},
	"pinches": {Other, 1},
	"dash":    {Other, 1},
	"dashes":  {Other, 1},
}

type displayStep struct {
	unit   string
	factor float64
}

// Largest first; the first step whose factor fits wins.
var (
	volumeLadder = []displayStep{
		{"gallon", mlPerGallon},
		{"quart", mlPerQuart},
		{"cup", mlPerCup},
		{"tbsp", mlPerTbsp},
		{"tsp", mlPerTsp},
	}
	weightLadder = []displayStep{
		{"kg", gramsPerKg},
		{"lb", gramsPerLb},
		{"oz", gramsPerOz},
		{"g", 1},
	}
)

// NormalizeUnit lowercases and trims a unit spelling.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// LookupUnit returns the conversion for a unit spelling. Unknown units report
// false; callers treat them as dimensionless.
func LookupUnit(unit string) (UnitConversion, bool) {
	info, ok := unitTable[NormalizeUnit(unit)]
	return info, ok
}

// CanConvertUnits reports whether both units are known and share a dimension.
func CanConvertUnits(a, b string) bool {
	ia, ok := LookupUnit(a)
	if !ok {
		return false
	}
	ib, ok := LookupUnit(b)
	if !ok {
		return false
	}
	return ia.Dimension == ib.Dimension
}

// ConvertToBaseUnit converts qty of unit into the dimension's base unit.
func ConvertToBaseUnit(qty float64, unit string) (float64, bool) {
	info, ok := LookupUnit(unit)
	if !ok {
		return 0, false
	}
	return qty * info.ToBase, true
}

// ConvertFromBaseUnit converts a base-unit quantity into target.
func ConvertFromBaseUnit(baseQty float64, target string) (float64, bool) {
	info, ok := LookupUnit(target)
	if !ok {
		return 0, false
	}
	return baseQty / info.ToBase, true
}

// ConvertUnit converts qty between two units of the same dimension.
func ConvertUnit(qty float64, from, to string) (float64, bool) {
	if !CanConvertUnits(from, to) {
		return 0, false
	}
	base, _ := ConvertToBaseUnit(qty, from)
	return ConvertFromBaseUnit(base, to)
}

// BestDisplayUnit picks the largest unit whose factor is <= baseQty. Volume
// and weight have ladders; any other dimension returns the base quantity with
// an empty unit.
func BestDisplayUnit(baseQty float64, dim Dimension) Measure {
	var ladder []displayStep
	switch dim {
	case Volume:
		ladder = volumeLadder
	case Weight:
		ladder = weightLadder
	default:
		return Measure{Quantity: baseQty}
	}

	for _, step := range ladder[:len(ladder)-1] {
		if baseQty >= step.factor {
			return Measure{Quantity: baseQty / step.factor, Unit: step.unit}
		}
	}
	last := ladder[len(ladder)-1]
	return Measure{Quantity: baseQty / last.factor, Unit: last.unit}
}

// countSpellings folds the plural and synonym spellings of count and
// never-scaled units onto one key.
var countSpellings = map[string]string{
	"pieces":  "piece",
	"whole":   "piece",
	"each":    "piece",
	"cloves":  "clove",
	"slices":  "slice",
	"cans":    "can",
	"pinches": "pinch",
	"dashes":  "dash",
}

// mergeUnitKey is the unit half of a merge key. Volume and weight collapse
// to their dimension so "cup" and "tbsp" of the same ingredient land on one
// line. Count units key on their singular spelling: "clove" and "cloves"
// share a line, cans and pieces of the same thing do not.
func mergeUnitKey(unit string) string {
	info, ok := LookupUnit(unit)
	if ok && (info.Dimension == Volume || info.Dimension == Weight) {
		return info.Dimension.String()
	}
	u := NormalizeUnit(unit)
	if singular, found := countSpellings[u]; found {
		return singular
	}
	return u
}
