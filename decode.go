// Package limelight is a client for the Limelight vision camera. It reads
// the camera's published telemetry (AprilTag and neural detections,
// retroreflective targets, barcodes, pose estimates, hardware metrics) from
// a shared key-value table, decodes the camera's fixed-stride wire arrays
// into typed records, and writes configuration back to the same table.
package limelight

import (
	"github.com/banshee-data/limelight.client/targets"
	"github.com/banshee-data/limelight.client/targets/neural"
)

// Wire strides for the camera's flat-array outputs. Each record occupies a
// fixed run of consecutive slots:
//
//	rawfiducials  (stride 7):  [id, txnc, tync, ta, distToCamera, distToRobot, ambiguity]
//	rawdetections (stride 12): [classID, txnc, tync, ta, x0, y0, x1, y1, x2, y2, x3, y3]
const (
	rawFiducialStride  = 7
	rawDetectionStride = 12
)

// extract returns arr[i], or 0 when i is out of range. The camera's arrays
// can arrive truncated mid-publish; a zero slot keeps the control loop fed
// instead of failing the poll.
func extract(arr []float64, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return arr[i]
}

// DecodeRawFiducials decodes a flat rawfiducials array into records. An
// array whose length is not a multiple of the stride decodes to an empty
// slice.
func DecodeRawFiducials(arr []float64) []targets.RawFiducial {
	if len(arr)%rawFiducialStride != 0 {
		return []targets.RawFiducial{}
	}

	n := len(arr) / rawFiducialStride
	fiducials := make([]targets.RawFiducial, n)
	for i := 0; i < n; i++ {
		base := i * rawFiducialStride
		fiducials[i] = targets.RawFiducial{
			ID:           int(extract(arr, base)),
			TXNC:         extract(arr, base+1),
			TYNC:         extract(arr, base+2),
			TA:           extract(arr, base+3),
			DistToCamera: extract(arr, base+4),
			DistToRobot:  extract(arr, base+5),
			Ambiguity:    extract(arr, base+6),
		}
	}
	return fiducials
}

// DecodeRawDetections decodes a flat rawdetections array into records. An
// array whose length is not a multiple of the stride decodes to an empty
// slice.
func DecodeRawDetections(arr []float64) []neural.RawDetection {
	if len(arr)%rawDetectionStride != 0 {
		return []neural.RawDetection{}
	}

	n := len(arr) / rawDetectionStride
	detections := make([]neural.RawDetection, n)
	for i := 0; i < n; i++ {
		base := i * rawDetectionStride
		detections[i] = neural.RawDetection{
			ClassID:  int(extract(arr, base)),
			TXNC:     extract(arr, base+1),
			TYNC:     extract(arr, base+2),
			TA:       extract(arr, base+3),
			Corner0X: extract(arr, base+4),
			Corner0Y: extract(arr, base+5),
			Corner1X: extract(arr, base+6),
			Corner1Y: extract(arr, base+7),
			Corner2X: extract(arr, base+8),
			Corner2Y: extract(arr, base+9),
			Corner3X: extract(arr, base+10),
			Corner3Y: extract(arr, base+11),
		}
	}
	return detections
}
