package taskverify

import "math"

const (
	// Geofence policy for location check-ins. The allowed radius expands
	// with reported GPS imprecision: base 100 meters while accuracy stays
	// at or under 50, then one extra meter per accuracy meter up to the
	// 200 meter cap. Reports with accuracy worse than 150 are rejected
	// outright.
	geofenceBaseRadius      = 100.0
	geofenceRadiusCap       = 200.0
	geofenceAccuracyBase    = 50.0
	geofenceAccuracyMaximum = 150.0

	earthRadiusMeters = 6371000.0
)

func allowedRadius(accuracy float64) float64 {
	if accuracy <= geofenceAccuracyBase {
		return geofenceBaseRadius
	}

	radius := geofenceBaseRadius + (accuracy - geofenceAccuracyBase)
	if radius > geofenceRadiusCap {
		radius = geofenceRadiusCap
	}

	return radius
}

// haversineDistance returns the great-circle distance in meters between two
// coordinates.
func haversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
