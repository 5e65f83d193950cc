package algorithms

// sink receives results the harness discards, so scans are not optimized away.
var sink int

// Len reads the length of data. Constant time; useful as a harness baseline.
func Len(data []int) error {
	sink = len(data)
	return nil
}

// LinearMax scans data once for its maximum.
func LinearMax(data []int) error {
	m := -1
	for _, v := range data {
		if v > m {
			m = v
		}
	}
	sink = m
	return nil
}
