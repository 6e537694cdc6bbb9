package limelight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/limelight.client/nt"
	"github.com/banshee-data/limelight.client/pose"
)

func TestSettingsWritesExactlyOneKey(t *testing.T) {
	table := nt.NewMockTable()
	s := newSettings(table)

	s.WithPipelineIndex(3)

	assert.Equal(t, 3.0, table.Double("pipeline", -1))
	assert.Equal(t, []string{"pipeline"}, table.WrittenKeys())
}

func TestSettingsScalarWrites(t *testing.T) {
	tests := []struct {
		name  string
		write func(*Settings)
		key   string
		want  float64
	}{
		{"led mode", func(s *Settings) { s.WithLEDMode(LEDForceBlink) }, "ledMode", 2},
		{"pipeline index", func(s *Settings) { s.WithPipelineIndex(7) }, "pipeline", 7},
		{"priority tag", func(s *Settings) { s.WithPriorityTagID(14) }, "priorityid", 14},
		{"stream mode", func(s *Settings) { s.WithStreamMode(StreamPiPSecondary) }, "stream", 2},
		{"imu mode", func(s *Settings) { s.WithIMUMode(IMUMT1AssistInternal) }, "imumode_set", 3},
		{"imu assist alpha", func(s *Settings) { s.WithIMUAssistAlpha(0.005) }, "imuassistalpha_set", 0.005},
		{"throttle", func(s *Settings) { s.WithProcessedFrameFrequency(4) }, "throttle_set", 4},
		{"downscale", func(s *Settings) { s.WithFiducialDownscalingOverride(DownscaleHalf) }, "fiducial_downscale_set", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := nt.NewMockTable()
			s := newSettings(table)
			tt.write(s)

			assert.Equal(t, tt.want, table.Double(tt.key, -999))
			assert.Equal(t, []string{tt.key}, table.WrittenKeys())
		})
	}
}

func TestSettingsArrayWrites(t *testing.T) {
	table := nt.NewMockTable()
	s := newSettings(table)

	s.WithCropWindow(-0.5, 0.5, -0.25, 0.25)
	assert.Equal(t, []float64{-0.5, 0.5, -0.25, 0.25}, table.DoubleArray("crop", nil))

	s.WithAprilTagOffset(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3})
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, table.DoubleArray("fiducial_offset_set", nil))

	s.WithAprilTagIDFilter([]int{3, 7, 11})
	assert.Equal(t, []float64{3, 7, 11}, table.DoubleArray("fiducial_id_filters_set", nil))

	s.WithCameraOffset(pose.Pose3D{
		Translation: r3.Vec{X: 0.3, Y: 0, Z: 0.5},
		Rotation:    pose.Rotation{PitchDegrees: 15},
	})
	assert.Equal(t, []float64{0.3, 0, 0.5, 0, 15, 0},
		table.DoubleArray("camerapose_robotspace_set", nil))
}

func TestSettingsChaining(t *testing.T) {
	table := nt.NewMockTable()
	s := newSettings(table)

	got := s.WithLEDMode(LEDForceOn).WithPipelineIndex(1).WithStreamMode(StreamStandard)
	assert.Same(t, s, got)
	assert.Equal(t, []string{"ledMode", "pipeline", "stream"}, table.WrittenKeys())
}

func TestSettingsSaveFlushes(t *testing.T) {
	table := nt.NewMockTable()
	s := newSettings(table)

	assert.Zero(t, table.FlushCount())
	s.Save()
	assert.Equal(t, 1, table.FlushCount())
}
