package predict

import "strconv"

func formatFloat(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
