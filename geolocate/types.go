package geolocate

// Pixel is an image-space coordinate in pixels, origin at the top-left
// corner of the image.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WorldOffset is a camera-centred offset in meters. By construction of the
// ground projection, Z always equals the camera altitude: the object is
// assumed to lie on the ground plane directly below the tilted view.
type WorldOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FocalLength is the lens focal length in millimetres per image axis.
type FocalLength struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SensorSize is the physical sensor size in millimetres.
type SensorSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ImageSize is the image resolution in pixels.
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
