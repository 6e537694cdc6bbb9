package limelight

import (
	"fmt"
	"log"
	"net/http"

	"github.com/banshee-data/limelight.client/internal/httputil"
	"github.com/banshee-data/limelight.client/nt"
	"github.com/banshee-data/limelight.client/pose"
)

// snapshotPort is the camera's HTTP port for snapshot capture.
const snapshotPort = 5807

// Camera is a handle to one physical Limelight. It owns the camera's table
// and composes the telemetry reader and settings writer. Camera values
// share no mutable state with each other; the table itself is assumed
// thread-safe.
type Camera struct {
	// Name is the sanitized hostname of the camera.
	Name string
	// Results reads the camera's published telemetry.
	Results *Results
	// Settings writes camera-side configuration.
	Settings *Settings

	table       nt.Table
	orientation nt.DoubleArrayEntry
	httpClient  httputil.Client
}

// SanitizeName normalizes a camera hostname, substituting the default
// "limelight" for an empty name.
func SanitizeName(name string) string {
	if name == "" {
		return "limelight"
	}
	return name
}

// New creates a handle for the camera publishing on table. An empty name
// selects the default "limelight" hostname.
func New(name string, table nt.Table) *Camera {
	name = SanitizeName(name)
	return &Camera{
		Name:        name,
		Results:     newResults(table),
		Settings:    newSettings(table),
		table:       table,
		orientation: nt.NewDoubleArrayEntry(table, "robot_orientation_set", []float64{}),
		httpClient:  httputil.NewStandardClient(nil),
	}
}

// Table returns the table this camera publishes on.
func (c *Camera) Table() nt.Table { return c.table }

// SetHTTPClient replaces the HTTP client used for snapshot requests.
func (c *Camera) SetHTTPClient(client httputil.Client) {
	c.httpClient = client
}

// SetRobotOrientation feeds the robot's orientation to the camera's
// MegaTag2 pipeline and flushes immediately. The wire layout is
// [yaw, 0, pitch, 0, roll, 0] in degrees; the zero slots are rate fields
// the camera reserves but this client does not set.
func (c *Camera) SetRobotOrientation(rot pose.Rotation) {
	c.orientation.Set([]float64{rot.YawDegrees, 0, rot.PitchDegrees, 0, rot.RollDegrees, 0})
	c.table.Flush()
}

// PoseEstimator creates a reader for one of the camera's pose solutions.
func (c *Camera) PoseEstimator(estimator Estimator) *PoseEstimator {
	return newPoseEstimator(c.table, estimator)
}

// requestURL builds the URL for a camera HTTP request.
func (c *Camera) requestURL(request string) string {
	return fmt.Sprintf("http://%s.local:%d/%s", c.Name, snapshotPort, request)
}

// Snapshot captures a snapshot on the camera, blocking until the camera
// responds. A non-empty name is passed in the snapname header. Failures are
// logged, never returned; the result reports only success.
func (c *Camera) Snapshot(snapshotName string) bool {
	req, err := http.NewRequest(http.MethodGet, c.requestURL("capturesnapshot"), nil)
	if err != nil {
		log.Printf("limelight %s: bad snapshot URL: %v", c.Name, err)
		return false
	}
	if snapshotName != "" {
		req.Header.Set("snapname", snapshotName)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("limelight %s: snapshot request failed: %v", c.Name, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("limelight %s: snapshot request returned status %d", c.Name, resp.StatusCode)
		return false
	}
	return true
}

// SnapshotAsync captures a snapshot without waiting for the camera. The
// outcome is discarded; callers needing it must use Snapshot.
func (c *Camera) SnapshotAsync(snapshotName string) {
	go c.Snapshot(snapshotName)
}
