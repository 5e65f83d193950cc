package algorithms

import "slices"

// InsertionSort sorts data in place. O(n^2) comparisons.
func InsertionSort(data []int) error {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
	return nil
}

// SelectionSort sorts data in place. O(n^2) comparisons, O(n) swaps.
func SelectionSort(data []int) error {
	for i := 0; i < len(data)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(data); j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
	}
	return nil
}

// BubbleSort sorts data in place, stopping early once a pass makes no swap.
func BubbleSort(data []int) error {
	for n := len(data); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if data[i-1] > data[i] {
				data[i-1], data[i] = data[i], data[i-1]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return nil
}

// MergeSort sorts data with a top-down merge sort using one scratch buffer.
func MergeSort(data []int) error {
	if len(data) < 2 {
		return nil
	}
	buf := make([]int, len(data))
	mergeSort(data, buf)
	return nil
}

func mergeSort(data, buf []int) {
	if len(data) < 2 {
		return
	}
	mid := len(data) / 2
	mergeSort(data[:mid], buf[:mid])
	mergeSort(data[mid:], buf[mid:])

	copy(buf, data)
	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		if buf[i] <= buf[j] {
			data[k] = buf[i]
			i++
		} else {
			data[k] = buf[j]
			j++
		}
		k++
	}
	k += copy(data[k:], buf[i:mid])
	copy(data[k:], buf[j:len(data)])
}

// StdSort sorts data in place with slices.Sort.
func StdSort(data []int) error {
	slices.Sort(data)
	return nil
}

// SortedCopy sorts a copy of data and leaves the input untouched.
func SortedCopy(data []int) error {
	out := slices.Clone(data)
	slices.Sort(out)
	return nil
}
