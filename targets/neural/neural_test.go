package neural

import (
	"encoding/json"
	"testing"
)

func TestDetectorJSONDecode(t *testing.T) {
	data := `{
		"class": "cone",
		"classID": 3,
		"conf": 0.87,
		"ta": 2.1,
		"tx": -4.5,
		"ty": 1.25,
		"tx_nocross": -4.6,
		"future_field": 1
	}`

	var det Detector
	if err := json.Unmarshal([]byte(data), &det); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if det.ClassName != "cone" || det.ClassID != 3 || det.Confidence != 0.87 {
		t.Errorf("identity mismatch: %+v", det)
	}
	if det.TA != 2.1 || det.TX != -4.5 || det.TXNoCrosshair != -4.6 {
		t.Errorf("metrics mismatch: %+v", det)
	}
}

func TestClassifierJSONDecode(t *testing.T) {
	data := `{"class": "cube", "classID": 1, "conf": 0.95, "zone": 2}`

	var cls Classifier
	if err := json.Unmarshal([]byte(data), &cls); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cls.ClassName != "cube" || cls.ClassID != 1 || cls.Confidence != 0.95 || cls.Zone != 2 {
		t.Errorf("classifier mismatch: %+v", cls)
	}
}
