package synth

import (
	"math"

	"skylens/models"
)

// Per-archetype baselines. Tropical regions run hottest with the densest
// vegetation, arctic coldest and sparsest; arid is derived by override below.
var archetypeBaselines = map[models.ClimateArchetype]struct {
	TemperatureC      float64
	VegetationDensity float64
}{
	models.ArchetypeTropical:    {27, 0.90},
	models.ArchetypeSubtropical: {22, 0.70},
	models.ArchetypeTemperate:   {15, 0.50},
	models.ArchetypeArctic:      {-5, 0.10},
}

const (
	aridTemperatureOffsetC = 8
	aridVegetationDensity  = 0.08
)

// desertBelts are rough longitude windows where the 15°–35° latitude band is
// dominated by desert. Northern hemisphere: Sahara/Arabia, Thar, Sonoran.
// Southern: Australian interior, Kalahari/Namib, Atacama.
var desertBelts = map[bool][][2]float64{
	true:  {{-17, 60}, {70, 80}, {-120, -102}},
	false: {{112, 150}, {14, 25}, {-75, -67}},
}

// DefaultProfile is the safe fallback when no usable polygon exists: a
// generic temperate region at the null island centroid.
func DefaultProfile() models.ClimateProfile {
	return models.ClimateProfile{
		Archetype:            models.ArchetypeTemperate,
		BaselineTemperatureC: 15,
		VegetationDensity:    0.5,
	}
}

// EstimateClimate classifies the ring's centroid into a climate archetype and
// returns the matching baselines. It never fails; callers handle absent rings
// with DefaultProfile.
func EstimateClimate(ring [][]float64) models.ClimateProfile {
	lat, lon := Centroid(ring)
	abs := math.Abs(lat)

	var archetype models.ClimateArchetype
	switch {
	case abs < 23.5:
		archetype = models.ArchetypeTropical
	case abs < 35:
		archetype = models.ArchetypeSubtropical
	case abs < 60:
		archetype = models.ArchetypeTemperate
	default:
		archetype = models.ArchetypeArctic
	}

	base := archetypeBaselines[archetype]
	profile := models.ClimateProfile{
		Archetype:            archetype,
		BaselineTemperatureC: base.TemperatureC,
		VegetationDensity:    base.VegetationDensity,
		CentroidLat:          lat,
		CentroidLon:          lon,
	}

	if abs >= 15 && abs <= 35 && inDesertBelt(lat, lon) {
		profile.Archetype = models.ArchetypeArid
		profile.BaselineTemperatureC += aridTemperatureOffsetC
		profile.VegetationDensity = aridVegetationDensity
	}
	return profile
}

func inDesertBelt(lat, lon float64) bool {
	for _, belt := range desertBelts[lat >= 0] {
		if lon >= belt[0] && lon <= belt[1] {
			return true
		}
	}
	return false
}
