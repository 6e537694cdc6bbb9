// llwatch polls a simulated Limelight and prints its decoded telemetry.
//
// The tool drives the client library against an in-memory table seeded with
// synthetic detections, in the same spirit as a replay server: it exercises
// the full decode path (scalar reads, raw fiducial decoding, pose estimates,
// JSON results) without camera hardware. Production deployments swap the
// in-memory table for an adapter over the real bus client.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	limelight "github.com/banshee-data/limelight.client"
	"github.com/banshee-data/limelight.client/internal/httputil"
	"github.com/banshee-data/limelight.client/internal/testutil"
	"github.com/banshee-data/limelight.client/nt"
)

func main() {
	name := flag.String("name", "limelight", "camera hostname")
	interval := flag.Duration("interval", 500*time.Millisecond, "polling interval")
	count := flag.Int("count", 10, "number of polls before exiting (0 = forever)")
	snapshot := flag.Bool("snapshot", false, "trigger a named snapshot on each poll")
	flag.Parse()

	table := nt.NewMockTable()
	camera := limelight.New(*name, table)
	camera.SetHTTPClient(httputil.NewMockClient())
	estimator := camera.PoseEstimator(limelight.EstimatorBlueMegaTag2)

	log.Printf("watching %s every %v", camera.Name, *interval)

	for i := 0; *count == 0 || i < *count; i++ {
		publishFrame(table, i)

		r := camera.Results
		fmt.Printf("poll %d: tv=%t tx=%.2f ty=%.2f ta=%.2f pipe=%d (%s) fps=%.0f\n",
			i, r.TV(), r.TX(), r.TY(), r.TA(), r.PipelineIndex(), r.PipelineType(), r.FPS())

		for _, f := range r.RawFiducials() {
			fmt.Printf("  tag %d: txnc=%.2f tync=%.2f dist=%.2fm ambiguity=%.2f\n",
				f.ID, f.TXNC, f.TYNC, f.DistToCamera, f.Ambiguity)
		}

		for _, est := range estimator.Estimates() {
			p := est.Pose2D()
			fmt.Printf("  pose: x=%.2f y=%.2f yaw=%.1f tags=%d t=%.3fs valid=%t\n",
				p.X, p.Y, p.YawDegrees, est.TagCount, est.TimestampSeconds,
				limelight.ValidPoseEstimate(est))
		}

		if *snapshot {
			snapName := "llwatch-" + uuid.NewString()
			if camera.Snapshot(snapName) {
				fmt.Printf("  snapshot %s captured\n", snapName)
			}
		}

		time.Sleep(*interval)
	}
}

// publishFrame seeds the table with one synthetic processing cycle.
func publishFrame(table *nt.MockTable, frame int) {
	now := time.Now().UnixMicro()
	drift := float64(frame % 5)

	table.SeedDouble("tv", 1)
	table.SeedDouble("tx", 3.2+drift)
	table.SeedDouble("ty", -1.1)
	table.SeedDouble("ta", 1.8)
	table.SeedDouble("tl", 12.5)
	table.SeedDouble("cl", 8.0)
	table.SeedDouble("getpipe", 2)
	table.SeedString("getpipetype", "pipe_fiducial")
	table.SeedDoubleArray("hw", []float64{30, 55.0, 41.2, 38.9})
	table.SeedDoubleArray("rawfiducials", []float64{
		7, 3.2 + drift, -1.1, 1.8, 2.4, 2.9, 0.05,
	})

	table.Publish("botpose_orb_wpiblue", now, testutil.PoseArray(
		[6]float64{1.5 + drift/10, 4.0, 0, 0, 0, 45},
		20.5, 1, 0, 2.4, 1.8,
		testutil.FiducialTuple(7, 3.2+drift, -1.1, 1.8, 2.4, 2.9, 0.05),
	))
}
