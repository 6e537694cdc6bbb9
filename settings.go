package limelight

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/limelight.client/nt"
	"github.com/banshee-data/limelight.client/pose"
)

// LEDMode controls the camera's LED array.
type LEDMode int

const (
	// LEDPipelineControl lets the active pipeline control the LEDs.
	LEDPipelineControl LEDMode = 0
	// LEDForceOff forces the LEDs off.
	LEDForceOff LEDMode = 1
	// LEDForceBlink forces the LEDs to blink.
	LEDForceBlink LEDMode = 2
	// LEDForceOn forces the LEDs on.
	LEDForceOn LEDMode = 3
)

// StreamMode controls the camera's video stream composition.
type StreamMode int

const (
	// StreamStandard shows the streams side by side.
	StreamStandard StreamMode = 0
	// StreamPiPMain shows picture-in-picture with the secondary stream in
	// the corner.
	StreamPiPMain StreamMode = 1
	// StreamPiPSecondary shows picture-in-picture with the main stream in
	// the corner.
	StreamPiPSecondary StreamMode = 2
)

// DownscalingOverride controls the detection downscale factor. Higher
// downscaling improves performance at the cost of detection range.
type DownscalingOverride int

const (
	// DownscalePipeline defers to the pipeline's configured downscaling.
	DownscalePipeline DownscalingOverride = 0
	// DownscaleNone disables downscaling.
	DownscaleNone DownscalingOverride = 1
	// DownscaleHalf halves the detection resolution.
	DownscaleHalf DownscalingOverride = 2
	// DownscaleDouble applies 2x downscaling.
	DownscaleDouble DownscalingOverride = 3
	// DownscaleTriple applies 3x downscaling.
	DownscaleTriple DownscalingOverride = 4
	// DownscaleQuadruple applies 4x downscaling.
	DownscaleQuadruple DownscalingOverride = 5
)

// IMUMode selects how the camera fuses internal and external IMU data for
// MegaTag2 localization.
type IMUMode int

const (
	// IMUExternal uses the external yaw submitted via SetRobotOrientation;
	// the internal IMU is ignored.
	IMUExternal IMUMode = 0
	// IMUSyncInternal uses the external yaw and keeps the internal IMU
	// synced to it.
	IMUSyncInternal IMUMode = 1
	// IMUInternal uses the internal IMU and ignores external updates.
	IMUInternal IMUMode = 2
	// IMUMT1AssistInternal uses the internal IMU corrected by MegaTag1 yaw
	// estimates.
	IMUMT1AssistInternal IMUMode = 3
	// IMUExternalAssistInternal uses the internal IMU corrected by external
	// updates.
	IMUExternalAssistInternal IMUMode = 4
)

// Settings writes camera-side configuration. Each With* call is a single
// immediate table write visible to the camera on its next poll; there is no
// read-back, no local cache and no transactional grouping. Save forces
// immediate network transmission but ordinary writes do not need it for
// correctness, only for latency.
type Settings struct {
	table nt.Table

	ledMode        nt.DoubleEntry
	pipelineIndex  nt.DoubleEntry
	priorityTagID  nt.DoubleEntry
	streamMode     nt.DoubleEntry
	cropWindow     nt.DoubleArrayEntry
	imuMode        nt.DoubleEntry
	imuAssistAlpha nt.DoubleEntry
	throttle       nt.DoubleEntry
	downscale      nt.DoubleEntry
	fiducialOffset nt.DoubleArrayEntry
	cameraToRobot  nt.DoubleArrayEntry
	idFilters      nt.DoubleArrayEntry
}

func newSettings(table nt.Table) *Settings {
	emptyArr := []float64{}
	return &Settings{
		table:          table,
		ledMode:        nt.NewDoubleEntry(table, "ledMode", 0),
		pipelineIndex:  nt.NewDoubleEntry(table, "pipeline", 0),
		priorityTagID:  nt.NewDoubleEntry(table, "priorityid", 0),
		streamMode:     nt.NewDoubleEntry(table, "stream", 0),
		cropWindow:     nt.NewDoubleArrayEntry(table, "crop", emptyArr),
		imuMode:        nt.NewDoubleEntry(table, "imumode_set", 0),
		imuAssistAlpha: nt.NewDoubleEntry(table, "imuassistalpha_set", 0),
		throttle:       nt.NewDoubleEntry(table, "throttle_set", 0),
		downscale:      nt.NewDoubleEntry(table, "fiducial_downscale_set", 0),
		fiducialOffset: nt.NewDoubleArrayEntry(table, "fiducial_offset_set", emptyArr),
		cameraToRobot:  nt.NewDoubleArrayEntry(table, "camerapose_robotspace_set", emptyArr),
		idFilters:      nt.NewDoubleArrayEntry(table, "fiducial_id_filters_set", emptyArr),
	}
}

// WithLEDMode sets the LED mode.
func (s *Settings) WithLEDMode(mode LEDMode) *Settings {
	s.ledMode.Set(float64(mode))
	return s
}

// WithPipelineIndex sets the active pipeline index.
func (s *Settings) WithPipelineIndex(index int) *Settings {
	s.pipelineIndex.Set(float64(index))
	return s
}

// WithPriorityTagID sets the AprilTag ID to prioritize.
func (s *Settings) WithPriorityTagID(id int) *Settings {
	s.priorityTagID.Set(float64(id))
	return s
}

// WithStreamMode sets the video stream composition.
func (s *Settings) WithStreamMode(mode StreamMode) *Settings {
	s.streamMode.Set(float64(mode))
	return s
}

// WithCropWindow sets the crop window, values in [-1, 1]. The crop window
// in the camera UI must be completely open for this to take effect.
func (s *Settings) WithCropWindow(minX, maxX, minY, maxY float64) *Settings {
	s.cropWindow.Set([]float64{minX, maxX, minY, maxY})
	return s
}

// WithIMUMode sets the IMU fusion mode.
func (s *Settings) WithIMUMode(mode IMUMode) *Settings {
	s.imuMode.Set(float64(mode))
	return s
}

// WithIMUAssistAlpha sets the complementary-filter strength used by the IMU
// assist modes. The camera default is 0.001.
func (s *Settings) WithIMUAssistAlpha(alpha float64) *Settings {
	s.imuAssistAlpha.Set(alpha)
	return s
}

// WithProcessedFrameFrequency sets the number of frames to skip between
// processed frames.
func (s *Settings) WithProcessedFrameFrequency(skippedFrames int) *Settings {
	s.throttle.Set(float64(skippedFrames))
	return s
}

// WithFiducialDownscalingOverride sets the detection downscale factor.
func (s *Settings) WithFiducialDownscalingOverride(d DownscalingOverride) *Settings {
	s.downscale.Set(float64(d))
	return s
}

// WithAprilTagOffset sets the 3D point-of-interest offset for the current
// fiducial pipeline, in meters.
func (s *Settings) WithAprilTagOffset(offset r3.Vec) *Settings {
	s.fiducialOffset.Set(pose.TranslationArray(offset))
	return s
}

// WithAprilTagIDFilter restricts tracking to the given tag IDs.
func (s *Settings) WithAprilTagIDFilter(ids []int) *Settings {
	filter := make([]float64, len(ids))
	for i, id := range ids {
		filter[i] = float64(id)
	}
	s.idFilters.Set(filter)
	return s
}

// WithCameraOffset sets the camera's transform relative to the robot.
func (s *Settings) WithCameraOffset(offset pose.Pose3D) *Settings {
	s.cameraToRobot.Set(offset.Array())
	return s
}

// Save pushes any pending writes to the camera immediately. Writes are
// normally transmitted promptly without it.
func (s *Settings) Save() {
	s.table.Flush()
}
