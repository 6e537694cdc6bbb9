package targets

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFiducialJSONDecode(t *testing.T) {
	data := `{
		"fID": 4,
		"fam": "36h11",
		"t6c_ts": [0.1, 0.2, 0.3, 1, 2, 3],
		"t6r_fs": [5, 6, 0, 0, 0, 90],
		"ta": 1.5,
		"tx": 2.5,
		"ty": -0.5,
		"tx_nocross": 2.6,
		"unknown_field": "ignored"
	}`

	var fid Fiducial
	if err := json.Unmarshal([]byte(data), &fid); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if fid.FiducialID != 4 || fid.Family != "36h11" {
		t.Errorf("identity = (%v, %q), want (4, 36h11)", fid.FiducialID, fid.Family)
	}
	if fid.TA != 1.5 || fid.TX != 2.5 || fid.TY != -0.5 || fid.TXNoCrosshair != 2.6 {
		t.Errorf("metrics mismatch: %+v", fid)
	}

	camera := fid.CameraPoseTargetSpace()
	if camera.Translation.Z != 0.3 || camera.Rotation.YawDegrees != 3 {
		t.Errorf("CameraPoseTargetSpace = %+v", camera)
	}

	field := fid.RobotPoseFieldSpace()
	if field.Translation.X != 5 || field.Rotation.YawDegrees != 90 {
		t.Errorf("RobotPoseFieldSpace = %+v", field)
	}

	// Absent pose arrays decode to the zero pose.
	if got := fid.TargetPoseRobotSpace(); got.Translation.X != 0 {
		t.Errorf("TargetPoseRobotSpace on absent array = %+v", got)
	}
}

func TestRetroreflectiveJSONDecode(t *testing.T) {
	data := `{"t6t_cs": [1, 0, 2, 0, 0, 180], "ta": 0.75, "txp": 320, "typ": 240}`

	var retro Retroreflective
	if err := json.Unmarshal([]byte(data), &retro); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if retro.TA != 0.75 || retro.TXPixels != 320 || retro.TYPixels != 240 {
		t.Errorf("metrics mismatch: %+v", retro)
	}
	if got := retro.TargetPoseCameraSpace(); got.Rotation.YawDegrees != 180 {
		t.Errorf("TargetPoseCameraSpace = %+v", got)
	}
}

func TestBarcodeJSONDecode(t *testing.T) {
	data := `{
		"fam": "DataMatrix",
		"data": "SN-0042",
		"tx": 1.5,
		"ty": -2.5,
		"pts": [[0, 0], [10, 0], [10, 10], [0, 10]]
	}`

	var barcode Barcode
	if err := json.Unmarshal([]byte(data), &barcode); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Barcode{
		Family:  "DataMatrix",
		Data:    "SN-0042",
		TX:      1.5,
		TY:      -2.5,
		Corners: [][]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
	}
	if diff := cmp.Diff(want, barcode); diff != "" {
		t.Errorf("Barcode mismatch (-want +got):\n%s", diff)
	}
}
