package analysis

// MSD computes the mean-squared displacement over recorded frames,
// averaged over all time origins and all atoms. Result index k holds the
// MSD at lag k+1 frames. Returns nil for fewer than two frames.
func MSD(frames []Frame) []float64 {
	tot := len(frames)
	if tot < 2 {
		return nil
	}
	atoms := len(frames[0].Pos)
	if atoms == 0 {
		return nil
	}

	res := make([]float64, tot-1)
	counts := make([]int, tot-1)

	for i := 0; i < tot-1; i++ {
		icfg := frames[i].Pos
		for j := i + 1; j < tot; j++ {
			tcfg := frames[j].Pos
			lag := j - i - 1
			for a := 0; a < atoms; a++ {
				d := tcfg[a].Sub(icfg[a])
				res[lag] += d.Norm2()
			}
			counts[lag]++
		}
	}

	for k := range res {
		res[k] /= float64(counts[k] * atoms)
	}
	return res
}
