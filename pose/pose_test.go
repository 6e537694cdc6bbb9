package pose

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFromArray(t *testing.T) {
	tests := []struct {
		name string
		arr  []float64
		want Pose3D
	}{
		{
			name: "full array",
			arr:  []float64{1, 2, 3, 10, 20, 30},
			want: Pose3D{
				Translation: r3.Vec{X: 1, Y: 2, Z: 3},
				Rotation:    Rotation{RollDegrees: 10, PitchDegrees: 20, YawDegrees: 30},
			},
		},
		{
			name: "short array reads missing slots as zero",
			arr:  []float64{1, 2},
			want: Pose3D{Translation: r3.Vec{X: 1, Y: 2}},
		},
		{
			name: "nil array decodes to the zero pose",
			arr:  nil,
			want: Pose3D{},
		},
		{
			name: "extra slots are ignored",
			arr:  []float64{1, 2, 3, 10, 20, 30, 99, 99},
			want: Pose3D{
				Translation: r3.Vec{X: 1, Y: 2, Z: 3},
				Rotation:    Rotation{RollDegrees: 10, PitchDegrees: 20, YawDegrees: 30},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromArray(tt.arr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromArray mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayRoundTrip(t *testing.T) {
	p := Pose3D{
		Translation: r3.Vec{X: 0.5, Y: -1.5, Z: 2.25},
		Rotation:    Rotation{RollDegrees: -5, PitchDegrees: 12, YawDegrees: 178},
	}
	got := FromArray(p.Array())
	if diff := cmp.Diff(p, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTo2D(t *testing.T) {
	p := Pose3D{
		Translation: r3.Vec{X: 1.5, Y: 2.5, Z: 0.75},
		Rotation:    Rotation{RollDegrees: 3, PitchDegrees: 4, YawDegrees: 45},
	}
	got := p.To2D()
	want := Pose2D{X: 1.5, Y: 2.5, YawDegrees: 45}
	if got != want {
		t.Errorf("To2D() = %+v, want %+v", got, want)
	}
}

func TestTranslationArray(t *testing.T) {
	got := TranslationArray(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3})
	want := []float64{0.1, 0.2, 0.3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TranslationArray mismatch (-want +got):\n%s", diff)
	}
}
