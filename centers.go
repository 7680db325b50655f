package searchlight

// PatchCenters returns the time samples at which a window of the given
// radius, covering [center-radius, center+radius), fits inside
// [0, nSamples). The result is empty when 2*radius >= nSamples.
func PatchCenters(nSamples, temporalRadius int) []int {
	if temporalRadius < 0 || 2*temporalRadius >= nSamples {
		return []int{}
	}
	centers := make([]int, 0, nSamples-2*temporalRadius+1)
	for c := temporalRadius; c <= nSamples-temporalRadius; c++ {
		centers = append(centers, c)
	}
	return centers
}
