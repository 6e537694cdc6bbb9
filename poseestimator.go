package limelight

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/limelight.client/nt"
	"github.com/banshee-data/limelight.client/pose"
	"github.com/banshee-data/limelight.client/targets"
)

// Estimator selects which of the camera's published pose solutions to read.
type Estimator int

const (
	// EstimatorRed reads the robot's pose in the red-alliance coordinate
	// system.
	EstimatorRed Estimator = iota
	// EstimatorRedMegaTag2 reads the red-alliance pose computed with the
	// MegaTag2 algorithm.
	EstimatorRedMegaTag2
	// EstimatorBlue reads the robot's pose in the blue-alliance coordinate
	// system.
	EstimatorBlue
	// EstimatorBlueMegaTag2 reads the blue-alliance pose computed with the
	// MegaTag2 algorithm.
	EstimatorBlueMegaTag2
)

// Key returns the table key the estimator's pose array is published on.
func (e Estimator) Key() string {
	switch e {
	case EstimatorRed:
		return "botpose_wpired"
	case EstimatorRedMegaTag2:
		return "botpose_orb_wpired"
	case EstimatorBlue:
		return "botpose_wpiblue"
	case EstimatorBlueMegaTag2:
		return "botpose_orb_wpiblue"
	}
	return ""
}

// MegaTag2 reports whether the estimator's poses are computed with the
// MegaTag2 algorithm.
func (e Estimator) MegaTag2() bool {
	return e == EstimatorRedMegaTag2 || e == EstimatorBlueMegaTag2
}

// PoseEstimate is one decoded pose sample from the camera.
//
// The aggregate tag metrics (TagSpan, AvgTagDist, AvgTagArea) are taken
// verbatim from the wire array, not recomputed from the fiducial records.
type PoseEstimate struct {
	// Pose is the estimated robot pose.
	Pose pose.Pose3D
	// TimestampSeconds is the latency-adjusted capture-time estimate in
	// seconds.
	TimestampSeconds float64
	// Latency is the camera's reported total latency in milliseconds.
	Latency float64
	// TagCount is the number of tags used to compute the pose.
	TagCount int
	// TagSpan is the maximum distance between the tags used, in meters.
	TagSpan float64
	// AvgTagDist is the average distance to the tags used, in meters.
	AvgTagDist float64
	// AvgTagArea is the average image area of the tags used.
	AvgTagArea float64
	// RawFiducials holds the per-tag records backing the estimate. Empty
	// when the wire array's length disagreed with its own tag count.
	RawFiducials []targets.RawFiducial
	// MegaTag2 reports which algorithm variant produced the estimate.
	MegaTag2 bool
}

// Pose2D returns the estimate's pose projected onto the floor plane.
func (e *PoseEstimate) Pose2D() pose.Pose2D {
	return e.Pose.To2D()
}

// WriteTo writes a human-readable dump of the estimate to w.
func (e *PoseEstimate) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Pose Estimate Information:\n")
	fmt.Fprintf(&b, "Timestamp (Seconds): %.3f\n", e.TimestampSeconds)
	fmt.Fprintf(&b, "Latency: %.3f ms\n", e.Latency)
	fmt.Fprintf(&b, "Tag Count: %d\n", e.TagCount)
	fmt.Fprintf(&b, "Tag Span: %.2f meters\n", e.TagSpan)
	fmt.Fprintf(&b, "Average Tag Distance: %.2f meters\n", e.AvgTagDist)
	fmt.Fprintf(&b, "Average Tag Area: %.2f%% of image\n", e.AvgTagArea)
	fmt.Fprintf(&b, "Is MegaTag2: %t\n\n", e.MegaTag2)

	if len(e.RawFiducials) == 0 {
		b.WriteString("No raw fiducial data available.\n")
	} else {
		b.WriteString("Raw Fiducials Details:\n")
		for i, f := range e.RawFiducials {
			fmt.Fprintf(&b, " Fiducial #%d:\n", i+1)
			fmt.Fprintf(&b, "  ID: %d\n", f.ID)
			fmt.Fprintf(&b, "  TXNC: %.2f\n", f.TXNC)
			fmt.Fprintf(&b, "  TYNC: %.2f\n", f.TYNC)
			fmt.Fprintf(&b, "  TA: %.2f\n", f.TA)
			fmt.Fprintf(&b, "  Distance to Camera: %.2f meters\n", f.DistToCamera)
			fmt.Fprintf(&b, "  Distance to Robot: %.2f meters\n", f.DistToRobot)
			fmt.Fprintf(&b, "  Ambiguity: %.2f\n\n", f.Ambiguity)
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// String returns the WriteTo dump as a string.
func (e *PoseEstimate) String() string {
	var b strings.Builder
	e.WriteTo(&b)
	return b.String()
}

// ValidPoseEstimate reports whether est is usable for localization: present
// with a non-empty fiducial list. Zero-tag estimates decode successfully but
// carry no localization value.
func ValidPoseEstimate(est *PoseEstimate) bool {
	return est != nil && len(est.RawFiducials) != 0
}

// PoseEstimator reads one estimator variant's pose samples from a camera.
type PoseEstimator struct {
	estimator    Estimator
	poseEntry    nt.DoubleArrayEntry
	rawFiducials nt.DoubleArrayEntry
}

func newPoseEstimator(table nt.Table, estimator Estimator) *PoseEstimator {
	return &PoseEstimator{
		estimator:    estimator,
		poseEntry:    nt.NewDoubleArrayEntry(table, estimator.Key(), []float64{}),
		rawFiducials: nt.NewDoubleArrayEntry(table, "rawfiducials", []float64{}),
	}
}

// Latest decodes the most recently published pose sample. It returns nil
// when the camera has not published a pose.
func (p *PoseEstimator) Latest() *PoseEstimate {
	return decodePoseEstimate(p.poseEntry.GetTimestamped(), p.estimator.MegaTag2())
}

// Estimates drains and decodes every pose sample published since the
// previous call. Samples with empty arrays are dropped.
func (p *PoseEstimator) Estimates() []*PoseEstimate {
	queue := p.poseEntry.ReadQueue()
	estimates := make([]*PoseEstimate, 0, len(queue))
	for _, sample := range queue {
		if est := decodePoseEstimate(sample, p.estimator.MegaTag2()); est != nil {
			estimates = append(estimates, est)
		}
	}
	return estimates
}

// RawFiducials reads the camera's current raw fiducial records directly,
// bypassing the pose arrays.
func (p *PoseEstimator) RawFiducials() []targets.RawFiducial {
	return DecodeRawFiducials(p.rawFiducials.Get())
}

// Wire layout of one pose sample: 6 pose slots, 5 aggregate metric slots,
// then 7 slots per tag.
const (
	poseMetricsLen    = 11
	valsPerFiducial   = rawFiducialStride
	poseLatencySlot   = 6
	poseTagCountSlot  = 7
	poseTagSpanSlot   = 8
	poseAvgDistSlot   = 9
	poseAvgAreaSlot   = 10
	microsPerSecond   = 1e6
	millisPerSecond   = 1e3
)

// decodePoseEstimate decodes one timestamped pose array. A nil return is
// the no-data sentinel for an empty array.
//
// The adjusted timestamp converts the server publish time from microseconds
// to seconds and subtracts the camera's reported latency (ms) to estimate
// the capture instant rather than the publish instant.
func decodePoseEstimate(sample nt.TimestampedDoubleArray, megaTag2 bool) *PoseEstimate {
	arr := sample.Value
	if len(arr) == 0 {
		return nil
	}

	latency := extract(arr, poseLatencySlot)
	tagCount := int(extract(arr, poseTagCountSlot))
	adjusted := float64(sample.Timestamp)/microsPerSecond - latency/millisPerSecond

	est := &PoseEstimate{
		Pose:             pose.FromArray(arr),
		TimestampSeconds: adjusted,
		Latency:          latency,
		TagCount:         tagCount,
		TagSpan:          extract(arr, poseTagSpanSlot),
		AvgTagDist:       extract(arr, poseAvgDistSlot),
		AvgTagArea:       extract(arr, poseAvgAreaSlot),
		RawFiducials:     []targets.RawFiducial{},
		MegaTag2:         megaTag2,
	}

	// Per-tag records are only trusted when the array length agrees exactly
	// with its own tag count; on any mismatch the aggregate fields still
	// stand and the fiducial list stays empty.
	if len(arr) != poseMetricsLen+valsPerFiducial*tagCount {
		return est
	}

	fiducials := make([]targets.RawFiducial, tagCount)
	for i := 0; i < tagCount; i++ {
		base := poseMetricsLen + i*valsPerFiducial
		fiducials[i] = targets.RawFiducial{
			ID:           int(arr[base]),
			TXNC:         arr[base+1],
			TYNC:         arr[base+2],
			TA:           arr[base+3],
			DistToCamera: arr[base+4],
			DistToRobot:  arr[base+5],
			Ambiguity:    arr[base+6],
		}
	}
	est.RawFiducials = fiducials
	return est
}
