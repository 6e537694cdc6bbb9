// Package neural defines the neural classifier and detector target records
// reported by the camera.
package neural

// Classifier is a neural classifier pipeline result from the JSON dump.
type Classifier struct {
	// ClassName is the human-readable class name.
	ClassName string `json:"class"`
	// ClassID is the class index.
	ClassID float64 `json:"classID"`
	// Confidence of the prediction.
	Confidence float64 `json:"conf"`
	Zone       float64 `json:"zone"`

	TX       float64 `json:"tx"`
	TXPixels float64 `json:"txp"`
	TY       float64 `json:"ty"`
	TYPixels float64 `json:"typ"`
}

// Detector is a neural detector pipeline result from the JSON dump.
type Detector struct {
	// ClassName is the human-readable class name.
	ClassName string `json:"class"`
	// ClassID is the class index.
	ClassID float64 `json:"classID"`
	// Confidence of the prediction.
	Confidence float64 `json:"conf"`

	// TA is the target area as a percentage of the image [0-1].
	TA float64 `json:"ta"`
	// TX and TY are offsets from the crosshair in degrees.
	TX float64 `json:"tx"`
	TY float64 `json:"ty"`
	// TXPixels and TYPixels are offsets from the crosshair in pixels.
	TXPixels float64 `json:"txp"`
	TYPixels float64 `json:"typ"`
	// TXNoCrosshair and TYNoCrosshair are offsets from the principal pixel
	// in degrees.
	TXNoCrosshair float64 `json:"tx_nocross"`
	TYNoCrosshair float64 `json:"ty_nocross"`
}

// RawDetection is one stride-12 record from the camera's raw detector
// output: a class ID, angular offsets, area, and the four bounding-quad
// corners in pixels.
type RawDetection struct {
	ClassID int
	// TXNC and TYNC are offsets from the principal pixel in degrees.
	TXNC float64
	TYNC float64
	// TA is the target area as a percentage of the image.
	TA float64

	Corner0X float64
	Corner0Y float64
	Corner1X float64
	Corner1Y float64
	Corner2X float64
	Corner2Y float64
	Corner3X float64
	Corner3Y float64
}
