// Package pose provides the 3D and 2D transform types published by the
// camera and their flat-array wire codecs.
//
// The camera encodes every transform as a 6-slot double array
// [x, y, z, roll, pitch, yaw] with translation in meters and rotation in
// degrees. Decoding is best-effort: slots missing from a short or absent
// array read as zero, so a malformed publish degrades to a zero transform
// instead of failing the poll.
package pose

import "gonum.org/v1/gonum/spatial/r3"

// ArrayLen is the number of slots in the wire layout of one transform.
const ArrayLen = 6

// Rotation is an orientation expressed as roll, pitch and yaw in degrees.
type Rotation struct {
	RollDegrees  float64
	PitchDegrees float64
	YawDegrees   float64
}

// Pose3D is a 3D transform: a translation in meters and a rotation.
type Pose3D struct {
	Translation r3.Vec
	Rotation    Rotation
}

// Pose2D is the planar projection of a Pose3D.
type Pose2D struct {
	X          float64
	Y          float64
	YawDegrees float64
}

// To2D projects the pose onto the floor plane, keeping x, y and yaw.
func (p Pose3D) To2D() Pose2D {
	return Pose2D{
		X:          p.Translation.X,
		Y:          p.Translation.Y,
		YawDegrees: p.Rotation.YawDegrees,
	}
}

// FromArray decodes a 6-slot wire array into a Pose3D. Slots beyond the end
// of a short array read as zero.
func FromArray(arr []float64) Pose3D {
	return Pose3D{
		Translation: r3.Vec{
			X: slot(arr, 0),
			Y: slot(arr, 1),
			Z: slot(arr, 2),
		},
		Rotation: Rotation{
			RollDegrees:  slot(arr, 3),
			PitchDegrees: slot(arr, 4),
			YawDegrees:   slot(arr, 5),
		},
	}
}

// Array encodes the pose into the 6-slot wire layout.
func (p Pose3D) Array() []float64 {
	return []float64{
		p.Translation.X,
		p.Translation.Y,
		p.Translation.Z,
		p.Rotation.RollDegrees,
		p.Rotation.PitchDegrees,
		p.Rotation.YawDegrees,
	}
}

// TranslationArray encodes a translation into the camera's 3-slot
// [x, y, z] layout in meters.
func TranslationArray(v r3.Vec) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func slot(arr []float64, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return arr[i]
}
