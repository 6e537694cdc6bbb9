package limelight

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/banshee-data/limelight.client/pose"
	"github.com/banshee-data/limelight.client/targets"
	"github.com/banshee-data/limelight.client/targets/neural"
)

// NumericBool is a bool the camera serializes as a JSON number (0 or 1).
type NumericBool bool

// UnmarshalJSON decodes a JSON number into the bool; any non-zero value is
// true.
func (b *NumericBool) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = v != 0
	return nil
}

// Bool returns the value as a plain bool.
func (b NumericBool) Bool() bool { return bool(b) }

// PipelineResult is one full processing cycle decoded from the camera's
// JSON results dump. Unknown JSON fields are ignored so firmware additions
// don't break decoding.
type PipelineResult struct {
	// Error holds the JSON decode error, if any. The rest of the result is
	// left at defaults when set.
	Error string `json:"-"`
	// ParseLatency is the time this client spent decoding the JSON dump,
	// in milliseconds.
	ParseLatency float64 `json:"-"`

	// PipelineID is the index of the pipeline that produced the result.
	PipelineID float64 `json:"pID"`
	// PipelineLatency is the tracking loop's latency contribution in
	// milliseconds.
	PipelineLatency float64 `json:"tl"`
	// CaptureLatency is the capture latency in milliseconds.
	CaptureLatency float64 `json:"cl"`
	// Timestamp is the camera's publish timestamp in milliseconds since
	// boot.
	Timestamp float64 `json:"ts"`
	// TimestampRIO is the controller-side capture timestamp.
	TimestampRIO float64 `json:"ts_rio"`
	// Valid reports whether the result contains valid targets.
	Valid NumericBool `json:"v"`

	// BotPoseArr is the generic field-space robot pose, 6-slot layout.
	BotPoseArr []float64 `json:"botpose"`
	// BotPoseWPIRedArr is the robot pose in the red-alliance coordinate
	// system.
	BotPoseWPIRedArr []float64 `json:"botpose_wpired"`
	// BotPoseWPIBlueArr is the robot pose in the blue-alliance coordinate
	// system.
	BotPoseWPIBlueArr []float64 `json:"botpose_wpiblue"`

	// BotPoseTagCount is the number of tags used to compute the pose.
	BotPoseTagCount float64 `json:"botpose_tagcount"`
	// BotPoseSpan is the maximum distance between the tags used, in meters.
	BotPoseSpan float64 `json:"botpose_span"`
	// BotPoseAvgDist is the average distance between the tags used, in
	// meters.
	BotPoseAvgDist float64 `json:"botpose_avgdist"`
	// BotPoseAvgArea is the average image area of the tags used.
	BotPoseAvgArea float64 `json:"botpose_avgarea"`

	// CameraPoseRobotSpaceArr is the camera's transform in the robot's
	// coordinate system.
	CameraPoseRobotSpaceArr []float64 `json:"t6c_rs"`

	// Retro holds retroreflective pipeline outputs.
	Retro []targets.Retroreflective `json:"Retro"`
	// Fiducials holds AprilTag pipeline outputs.
	Fiducials []targets.Fiducial `json:"Fiducial"`
	// Classifiers holds neural classifier pipeline outputs.
	Classifiers []neural.Classifier `json:"Classifier"`
	// Detectors holds neural detector pipeline outputs.
	Detectors []neural.Detector `json:"Detector"`
	// Barcodes holds barcode pipeline outputs.
	Barcodes []targets.Barcode `json:"Barcode"`
}

// newPipelineResult returns a result with empty target slices and zeroed
// pose arrays, the defaults a failed decode falls back to.
func newPipelineResult() *PipelineResult {
	return &PipelineResult{
		BotPoseArr:              make([]float64, pose.ArrayLen),
		BotPoseWPIRedArr:        make([]float64, pose.ArrayLen),
		BotPoseWPIBlueArr:       make([]float64, pose.ArrayLen),
		CameraPoseRobotSpaceArr: make([]float64, pose.ArrayLen),
		Retro:                   []targets.Retroreflective{},
		Fiducials:               []targets.Fiducial{},
		Classifiers:             []neural.Classifier{},
		Detectors:               []neural.Detector{},
		Barcodes:                []targets.Barcode{},
	}
}

// decodePipelineResult decodes a JSON dump, degrading to defaults with the
// Error field set on failure and recording the decode wall time either way.
func decodePipelineResult(dump string) *PipelineResult {
	start := time.Now()
	result := newPipelineResult()
	if err := json.Unmarshal([]byte(dump), result); err != nil {
		result = newPipelineResult()
		result.Error = fmt.Sprintf("lljson error: %v", err)
	}
	result.ParseLatency = float64(time.Since(start)) / float64(time.Millisecond)
	return result
}

// BotPose3D returns the generic robot pose.
func (r *PipelineResult) BotPose3D() pose.Pose3D { return pose.FromArray(r.BotPoseArr) }

// BotPose3DWPIRed returns the robot pose in the red-alliance coordinate
// system.
func (r *PipelineResult) BotPose3DWPIRed() pose.Pose3D { return pose.FromArray(r.BotPoseWPIRedArr) }

// BotPose3DWPIBlue returns the robot pose in the blue-alliance coordinate
// system.
func (r *PipelineResult) BotPose3DWPIBlue() pose.Pose3D { return pose.FromArray(r.BotPoseWPIBlueArr) }

// BotPose2D returns the generic robot pose projected onto the floor plane.
func (r *PipelineResult) BotPose2D() pose.Pose2D { return r.BotPose3D().To2D() }

// BotPose2DWPIRed returns the red-alliance robot pose projected onto the
// floor plane.
func (r *PipelineResult) BotPose2DWPIRed() pose.Pose2D { return r.BotPose3DWPIRed().To2D() }

// BotPose2DWPIBlue returns the blue-alliance robot pose projected onto the
// floor plane.
func (r *PipelineResult) BotPose2DWPIBlue() pose.Pose2D { return r.BotPose3DWPIBlue().To2D() }

// CameraPoseRobotSpace returns the camera's transform in the robot's
// coordinate system.
func (r *PipelineResult) CameraPoseRobotSpace() pose.Pose3D {
	return pose.FromArray(r.CameraPoseRobotSpaceArr)
}
