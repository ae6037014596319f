package service

import "strconv"

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
