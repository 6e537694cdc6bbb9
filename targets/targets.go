// Package targets defines the target records the camera reports, both the
// raw fixed-stride records published on the table and the richer structures
// carried in the JSON results dump.
package targets

import "github.com/banshee-data/limelight.client/pose"

// RawFiducial is one stride-7 record from the camera's raw fiducial output:
// an AprilTag sighting with angular offsets, area and distance metrics.
type RawFiducial struct {
	// ID is the detected tag's identifier.
	ID int
	// TXNC and TYNC are the horizontal and vertical offsets from the
	// principal pixel, in degrees.
	TXNC float64
	TYNC float64
	// TA is the target area as a percentage of the image.
	TA float64
	// DistToCamera and DistToRobot are distances to the tag in meters.
	DistToCamera float64
	DistToRobot  float64
	// Ambiguity is the pose ambiguity of the detection.
	Ambiguity float64
}

// Retroreflective is a color/retroreflective pipeline result from the JSON
// dump. The five pose arrays use the 6-slot wire layout decoded by the
// pose accessors below.
type Retroreflective struct {
	CameraPoseTargetSpaceArr []float64 `json:"t6c_ts"`
	RobotPoseFieldSpaceArr   []float64 `json:"t6r_fs"`
	RobotPoseTargetSpaceArr  []float64 `json:"t6r_ts"`
	TargetPoseCameraSpaceArr []float64 `json:"t6t_cs"`
	TargetPoseRobotSpaceArr  []float64 `json:"t6t_rs"`

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
	Timestamp     float64 `json:"ts"`
}

// CameraPoseTargetSpace returns the camera's transform in the target's
// coordinate system.
func (t Retroreflective) CameraPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(t.CameraPoseTargetSpaceArr)
}

// RobotPoseFieldSpace returns the robot's transform in the field's
// coordinate system.
func (t Retroreflective) RobotPoseFieldSpace() pose.Pose3D {
	return pose.FromArray(t.RobotPoseFieldSpaceArr)
}

// RobotPoseTargetSpace returns the robot's transform in the target's
// coordinate system.
func (t Retroreflective) RobotPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(t.RobotPoseTargetSpaceArr)
}

// TargetPoseCameraSpace returns the target's transform in the camera's
// coordinate system.
func (t Retroreflective) TargetPoseCameraSpace() pose.Pose3D {
	return pose.FromArray(t.TargetPoseCameraSpaceArr)
}

// TargetPoseRobotSpace returns the target's transform in the robot's
// coordinate system.
func (t Retroreflective) TargetPoseRobotSpace() pose.Pose3D {
	return pose.FromArray(t.TargetPoseRobotSpaceArr)
}

// Fiducial is an AprilTag pipeline result from the JSON dump.
type Fiducial struct {
	// FiducialID is the ID of the detected tag.
	FiducialID float64 `json:"fID"`
	// Family is the tag family, e.g. "16h5".
	Family string `json:"fam"`

	CameraPoseTargetSpaceArr []float64 `json:"t6c_ts"`
	RobotPoseFieldSpaceArr   []float64 `json:"t6r_fs"`
	RobotPoseTargetSpaceArr  []float64 `json:"t6r_ts"`
	TargetPoseCameraSpaceArr []float64 `json:"t6t_cs"`
	TargetPoseRobotSpaceArr  []float64 `json:"t6t_rs"`

	TA            float64 `json:"ta"`
	TX            float64 `json:"tx"`
	TY            float64 `json:"ty"`
	TXPixels      float64 `json:"txp"`
	TYPixels      float64 `json:"typ"`
	TXNoCrosshair float64 `json:"tx_nocross"`
	TYNoCrosshair float64 `json:"ty_nocross"`
	Timestamp     float64 `json:"ts"`
}

// CameraPoseTargetSpace returns the camera's transform in the tag's
// coordinate system.
func (t Fiducial) CameraPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(t.CameraPoseTargetSpaceArr)
}

// RobotPoseFieldSpace returns the robot's transform in the field's
// coordinate system.
func (t Fiducial) RobotPoseFieldSpace() pose.Pose3D {
	return pose.FromArray(t.RobotPoseFieldSpaceArr)
}

// RobotPoseTargetSpace returns the robot's transform in the tag's
// coordinate system.
func (t Fiducial) RobotPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(t.RobotPoseTargetSpaceArr)
}

// TargetPoseCameraSpace returns the tag's transform in the camera's
// coordinate system.
func (t Fiducial) TargetPoseCameraSpace() pose.Pose3D {
	return pose.FromArray(t.TargetPoseCameraSpaceArr)
}

// TargetPoseRobotSpace returns the tag's transform in the robot's
// coordinate system.
func (t Fiducial) TargetPoseRobotSpace() pose.Pose3D {
	return pose.FromArray(t.TargetPoseRobotSpaceArr)
}

// Barcode is a barcode pipeline result from the JSON dump.
type Barcode struct {
	// Family is the barcode family, e.g. "QR" or "DataMatrix".
	Family string `json:"fam"`
	// Data is the decoded content of the barcode.
	Data string `json:"data"`

	TXPixels      float64 `json:"txp"`
	TYPixels      float64 `json:"typ"`
	TX            float64 `json:"tx"`
	TY            float64 `json:"ty"`
	TXNoCrosshair float64 `json:"tx_nocross"`
	TYNoCrosshair float64 `json:"ty_nocross"`
	TA            float64 `json:"ta"`

	// Corners holds corner coordinate pairs in pixels. Only populated when
	// corner output is enabled on the camera.
	Corners [][]float64 `json:"pts"`
}
