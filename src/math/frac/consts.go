package frac

const (
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)
