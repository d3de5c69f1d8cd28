package geolocate

import "math"

// earthRadiusMeters is the mean spherical Earth radius.
const earthRadiusMeters = 6371000.0

// GroundRange returns the horizontal camera-to-object distance in meters and
// the bearing in radians within the world frame's horizontal plane. The
// vertical component of the offset plays no part: it was consumed when the
// ray was scaled to the ground plane.
func GroundRange(offset WorldOffset) (distance, bearing float64) {
	return math.Hypot(offset.X, offset.Y), math.Atan2(offset.Y, offset.X)
}

// TranslateToGPS moves the camera's GPS position by the ground distance and
// bearing of the world offset, using the direct geodesic on a spherical
// Earth. The world x axis is taken as north and y as east; the camera mount
// must follow the same convention for the bearing to be a compass bearing.
//
// The spherical formula ignores the Earth's flattening, which is adequate at
// the camera-altitude-scale ranges this pipeline produces.
func TranslateToGPS(offset WorldOffset, origin Coordinates) Coordinates {
	distance, bearing := GroundRange(offset)

	lat1 := Degrees2Rad(origin.Latitude)
	lon1 := Degrees2Rad(origin.Longitude)

	angular := distance / earthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) +
		math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2))

	return Coordinates{
		Latitude:  Rad2Degrees(lat2),
		Longitude: Rad2Degrees(lon2),
	}
}
