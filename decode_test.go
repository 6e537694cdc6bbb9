package limelight

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/limelight.client/targets"
	"github.com/banshee-data/limelight.client/targets/neural"
)

func TestDecodeRawFiducials(t *testing.T) {
	tests := []struct {
		name string
		arr  []float64
		want []targets.RawFiducial
	}{
		{
			name: "empty array",
			arr:  []float64{},
			want: []targets.RawFiducial{},
		},
		{
			name: "single record",
			arr:  []float64{3, 1.5, -2.5, 0.8, 2.1, 2.6, 0.12},
			want: []targets.RawFiducial{
				{ID: 3, TXNC: 1.5, TYNC: -2.5, TA: 0.8, DistToCamera: 2.1, DistToRobot: 2.6, Ambiguity: 0.12},
			},
		},
		{
			name: "two records",
			arr: []float64{
				3, 1.5, -2.5, 0.8, 2.1, 2.6, 0.12,
				8, -0.5, 0.25, 1.1, 3.0, 3.4, 0.03,
			},
			want: []targets.RawFiducial{
				{ID: 3, TXNC: 1.5, TYNC: -2.5, TA: 0.8, DistToCamera: 2.1, DistToRobot: 2.6, Ambiguity: 0.12},
				{ID: 8, TXNC: -0.5, TYNC: 0.25, TA: 1.1, DistToCamera: 3.0, DistToRobot: 3.4, Ambiguity: 0.03},
			},
		},
		{
			name: "length not a multiple of the stride",
			arr:  []float64{3, 1.5, -2.5, 0.8, 2.1},
			want: []targets.RawFiducial{},
		},
		{
			name: "one full record plus a partial tail",
			arr: []float64{
				3, 1.5, -2.5, 0.8, 2.1, 2.6, 0.12,
				8, -0.5,
			},
			want: []targets.RawFiducial{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRawFiducials(tt.arr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeRawFiducials mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRawFiducialsRecordCount(t *testing.T) {
	// k records in, k records out, for a range of k.
	for k := 0; k <= 8; k++ {
		arr := make([]float64, k*7)
		for i := range arr {
			arr[i] = float64(i)
		}
		got := DecodeRawFiducials(arr)
		if len(got) != k {
			t.Errorf("k=%d: got %d records, want %d", k, len(got), k)
		}
		// Each record's ID comes from slot i*7.
		for i, f := range got {
			if f.ID != int(arr[i*7]) {
				t.Errorf("k=%d record %d: ID = %d, want %d", k, i, f.ID, int(arr[i*7]))
			}
		}
	}
}

func TestDecodeRawDetections(t *testing.T) {
	tests := []struct {
		name string
		arr  []float64
		want []neural.RawDetection
	}{
		{
			name: "empty array",
			arr:  []float64{},
			want: []neural.RawDetection{},
		},
		{
			name: "single record",
			arr: []float64{
				2, 4.5, -3.0, 2.2,
				10, 20, 30, 20, 30, 40, 10, 40,
			},
			want: []neural.RawDetection{
				{
					ClassID: 2, TXNC: 4.5, TYNC: -3.0, TA: 2.2,
					Corner0X: 10, Corner0Y: 20,
					Corner1X: 30, Corner1Y: 20,
					Corner2X: 30, Corner2Y: 40,
					Corner3X: 10, Corner3Y: 40,
				},
			},
		},
		{
			name: "length not a multiple of the stride",
			arr:  []float64{2, 4.5, -3.0, 2.2, 10},
			want: []neural.RawDetection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRawDetections(tt.arr)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeRawDetections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	arr := []float64{1.5, 2.5, 3.5}

	if got := extract(arr, 1); got != 2.5 {
		t.Errorf("extract(arr, 1) = %v, want 2.5", got)
	}
	if got := extract(arr, 3); got != 0 {
		t.Errorf("extract(arr, 3) = %v, want 0", got)
	}
	if got := extract(arr, -1); got != 0 {
		t.Errorf("extract(arr, -1) = %v, want 0", got)
	}
	if got := extract(nil, 0); got != 0 {
		t.Errorf("extract(nil, 0) = %v, want 0", got)
	}
}
