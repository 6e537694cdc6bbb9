package limelight

import (
	"log"

	"github.com/banshee-data/limelight.client/nt"
	"github.com/banshee-data/limelight.client/pose"
	"github.com/banshee-data/limelight.client/targets"
	"github.com/banshee-data/limelight.client/targets/neural"
)

// t2dLen is the length of a well-formed t2d metrics array. The derived
// getters only trust the array at exactly this length.
const t2dLen = 17

// Results reads the camera's published telemetry. Every method performs a
// fresh read against the table; nothing is cached between calls.
type Results struct {
	table nt.Table

	rawDetections  nt.DoubleArrayEntry
	rawFiducials   nt.DoubleArrayEntry
	targetValid    nt.IntEntry
	targetX        nt.DoubleEntry
	targetY        nt.DoubleEntry
	targetXNC      nt.DoubleEntry
	targetYNC      nt.DoubleEntry
	targetArea     nt.DoubleEntry
	t2d            nt.DoubleArrayEntry
	classifierName nt.StringEntry
	detectorName   nt.StringEntry
	pipelineLat    nt.DoubleEntry
	captureLat     nt.DoubleEntry
	pipelineIndex  nt.IntEntry
	pipelineType   nt.StringEntry
	json           nt.StringEntry

	botPoseTargetSpace    nt.DoubleArrayEntry
	cameraPoseTargetSpace nt.DoubleArrayEntry
	targetPoseCameraSpace nt.DoubleArrayEntry
	targetPoseRobotSpace  nt.DoubleArrayEntry
	cameraPoseRobotSpace  nt.DoubleArrayEntry

	stddevs     nt.DoubleArrayEntry
	targetColor nt.DoubleArrayEntry
	tagID       nt.DoubleEntry
	targetClass nt.StringEntry
	rawBarcodes nt.StringArrayEntry
	hw          nt.DoubleArrayEntry
}

func newResults(table nt.Table) *Results {
	emptyArr := []float64{}
	return &Results{
		table:          table,
		rawDetections:  nt.NewDoubleArrayEntry(table, "rawdetections", emptyArr),
		rawFiducials:   nt.NewDoubleArrayEntry(table, "rawfiducials", emptyArr),
		targetValid:    nt.NewIntEntry(table, "tv", 0),
		targetX:        nt.NewDoubleEntry(table, "tx", 0),
		targetY:        nt.NewDoubleEntry(table, "ty", 0),
		targetXNC:      nt.NewDoubleEntry(table, "txnc", 0),
		targetYNC:      nt.NewDoubleEntry(table, "tync", 0),
		targetArea:     nt.NewDoubleEntry(table, "ta", 0),
		t2d:            nt.NewDoubleArrayEntry(table, "t2d", emptyArr),
		classifierName: nt.NewStringEntry(table, "tcclass", ""),
		detectorName:   nt.NewStringEntry(table, "tdclass", ""),
		pipelineLat:    nt.NewDoubleEntry(table, "tl", 0),
		captureLat:     nt.NewDoubleEntry(table, "cl", 0),
		pipelineIndex:  nt.NewIntEntry(table, "getpipe", 0),
		pipelineType:   nt.NewStringEntry(table, "getpipetype", ""),
		json:           nt.NewStringEntry(table, "json", ""),

		botPoseTargetSpace:    nt.NewDoubleArrayEntry(table, "botpose_targetspace", emptyArr),
		cameraPoseTargetSpace: nt.NewDoubleArrayEntry(table, "camerapose_targetspace", emptyArr),
		targetPoseCameraSpace: nt.NewDoubleArrayEntry(table, "targetpose_cameraspace", emptyArr),
		targetPoseRobotSpace:  nt.NewDoubleArrayEntry(table, "targetpose_robotspace", emptyArr),
		cameraPoseRobotSpace:  nt.NewDoubleArrayEntry(table, "camerapose_robotspace", emptyArr),

		stddevs:     nt.NewDoubleArrayEntry(table, "stddevs", emptyArr),
		targetColor: nt.NewDoubleArrayEntry(table, "tc", emptyArr),
		tagID:       nt.NewDoubleEntry(table, "tid", 0),
		targetClass: nt.NewStringEntry(table, "tclass", ""),
		rawBarcodes: nt.NewStringArrayEntry(table, "rawbarcodes", []string{}),
		hw:          nt.NewDoubleArrayEntry(table, "hw", emptyArr),
	}
}

// RawDetections reads and decodes the camera's raw neural detector records.
func (r *Results) RawDetections() []neural.RawDetection {
	return DecodeRawDetections(r.rawDetections.Get())
}

// RawFiducials reads and decodes the camera's raw AprilTag records.
func (r *Results) RawFiducials() []targets.RawFiducial {
	return DecodeRawFiducials(r.rawFiducials.Get())
}

// TV reports whether the camera currently has a valid target.
func (r *Results) TV() bool { return r.targetValid.Get() == 1 }

// TX returns the horizontal offset from the crosshair to the target in
// degrees.
func (r *Results) TX() float64 { return r.targetX.Get() }

// TY returns the vertical offset from the crosshair to the target in
// degrees.
func (r *Results) TY() float64 { return r.targetY.Get() }

// TXNC returns the horizontal offset from the principal pixel to the target
// in degrees.
func (r *Results) TXNC() float64 { return r.targetXNC.Get() }

// TYNC returns the vertical offset from the principal pixel to the target
// in degrees.
func (r *Results) TYNC() float64 { return r.targetYNC.Get() }

// TA returns the target area as a percentage of the image (0-100).
func (r *Results) TA() float64 { return r.targetArea.Get() }

// T2D returns the camera's combined 2D metrics array:
// [targetValid, targetCount, targetLatency, captureLatency, tx, ty, txnc,
// tync, ta, tid, detectorClassIndex, classifierClassIndex,
// longSidePixels, shortSidePixels, horizontalExtentPixels,
// verticalExtentPixels, skewDegrees].
func (r *Results) T2D() []float64 { return r.t2d.Get() }

// TargetCount returns the number of targets currently detected, or 0 when
// the t2d array is malformed.
func (r *Results) TargetCount() int {
	if t2d := r.T2D(); len(t2d) == t2dLen {
		return int(t2d[1])
	}
	return 0
}

// ClassifierClassIndex returns the class index from the running neural
// classifier pipeline, or 0 when the t2d array is malformed.
func (r *Results) ClassifierClassIndex() int {
	if t2d := r.T2D(); len(t2d) == t2dLen {
		return int(t2d[10])
	}
	return 0
}

// DetectorClassIndex returns the class index of the primary neural detector
// result, or 0 when the t2d array is malformed.
func (r *Results) DetectorClassIndex() int {
	if t2d := r.T2D(); len(t2d) == t2dLen {
		return int(t2d[11])
	}
	return 0
}

// ClassifierClass returns the neural classifier's computed class name.
func (r *Results) ClassifierClass() string { return r.classifierName.Get() }

// DetectorClass returns the primary neural detector result's class name.
func (r *Results) DetectorClass() string { return r.detectorName.Get() }

// PipelineLatency returns the processing latency contribution of the
// pipeline in milliseconds.
func (r *Results) PipelineLatency() float64 { return r.pipelineLat.Get() }

// CaptureLatency returns the capture latency in milliseconds.
func (r *Results) CaptureLatency() float64 { return r.captureLat.Get() }

// PipelineIndex returns the active pipeline index.
func (r *Results) PipelineIndex() int64 { return r.pipelineIndex.Get() }

// PipelineType returns the active pipeline's type string, e.g. "apriltag".
func (r *Results) PipelineType() string { return r.pipelineType.Get() }

// JSONDump returns the camera's full JSON results string.
func (r *Results) JSONDump() string { return r.json.Get() }

// BotPoseTargetSpace returns the robot's transform in the coordinate system
// of the primary in-view tag.
func (r *Results) BotPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(r.botPoseTargetSpace.Get())
}

// CameraPoseTargetSpace returns the camera's transform in the coordinate
// system of the primary in-view tag.
func (r *Results) CameraPoseTargetSpace() pose.Pose3D {
	return pose.FromArray(r.cameraPoseTargetSpace.Get())
}

// TargetPoseCameraSpace returns the primary in-view tag's transform in the
// camera's coordinate system.
func (r *Results) TargetPoseCameraSpace() pose.Pose3D {
	return pose.FromArray(r.targetPoseCameraSpace.Get())
}

// TargetPoseRobotSpace returns the primary in-view tag's transform in the
// robot's coordinate system.
func (r *Results) TargetPoseRobotSpace() pose.Pose3D {
	return pose.FromArray(r.targetPoseRobotSpace.Get())
}

// CameraPoseRobotSpace returns the camera's transform in the robot's
// coordinate system.
func (r *Results) CameraPoseRobotSpace() pose.Pose3D {
	return pose.FromArray(r.cameraPoseRobotSpace.Get())
}

// StandardDeviations returns the camera's pose standard deviations array
// [MT1x, MT1y, MT1z, MT1roll, MT1pitch, MT1yaw, MT2x, MT2y, MT2z, MT2roll,
// MT2pitch, MT2yaw]. Computed over the last few seconds of samples, so it
// lags and is only meaningful when stationary.
func (r *Results) StandardDeviations() []float64 { return r.stddevs.Get() }

// TargetColor returns the target color as [H, S, V].
func (r *Results) TargetColor() []float64 { return r.targetColor.Get() }

// FiducialID returns the ID of the primary in-view AprilTag.
func (r *Results) FiducialID() float64 { return r.tagID.Get() }

// NeuralClassID returns the class name of the primary neural detector or
// classifier result.
func (r *Results) NeuralClassID() string { return r.targetClass.Get() }

// RawBarcodes returns the raw data from all detected barcodes.
func (r *Results) RawBarcodes() []string { return r.rawBarcodes.Get() }

// HardwareMetrics returns the camera's hardware metrics array
// [FPS, CPU temp, RAM usage, temp].
func (r *Results) HardwareMetrics() []float64 { return r.hw.Get() }

// FPS returns the camera's current pipeline framerate.
func (r *Results) FPS() float64 { return extract(r.HardwareMetrics(), 0) }

// CPUTemperature returns the camera's CPU temperature.
func (r *Results) CPUTemperature() float64 { return extract(r.HardwareMetrics(), 1) }

// RAMUsage returns the camera's RAM usage.
func (r *Results) RAMUsage() float64 { return extract(r.HardwareMetrics(), 2) }

// Temperature returns the camera's enclosure temperature.
func (r *Results) Temperature() float64 { return extract(r.HardwareMetrics(), 3) }

// LatestResults reads the JSON dump and decodes it into a PipelineResult.
// Decode failures are recorded on the result's Error field rather than
// returned; the time spent decoding is recorded in ParseLatency. When
// logParseTime is set the parse time is also logged.
func (r *Results) LatestResults(logParseTime bool) *PipelineResult {
	result := decodePipelineResult(r.JSONDump())
	if logParseTime {
		log.Printf("limelight json parse: %.2f ms", result.ParseLatency)
	}
	return result
}
