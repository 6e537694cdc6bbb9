// Package testutil provides shared fixtures for decoder tests.
package testutil

// PoseArray builds a wire pose array: 6 pose slots, then latency, tag
// count, span, average distance and average area, then one 7-slot tuple
// per fiducial.
func PoseArray(p [6]float64, latency float64, tagCount int, span, avgDist, avgArea float64, fiducials ...[7]float64) []float64 {
	arr := make([]float64, 0, 11+7*len(fiducials))
	arr = append(arr, p[:]...)
	arr = append(arr, latency, float64(tagCount), span, avgDist, avgArea)
	for _, f := range fiducials {
		arr = append(arr, f[:]...)
	}
	return arr
}

// FiducialTuple builds one stride-7 raw fiducial record.
func FiducialTuple(id int, txnc, tync, ta, distToCamera, distToRobot, ambiguity float64) [7]float64 {
	return [7]float64{float64(id), txnc, tync, ta, distToCamera, distToRobot, ambiguity}
}
