package service

import (
	"strconv"
	"strings"
)

const (
	DefaultListLimit = 200
	MaxListLimit     = 1000
	ExportMaxRows    = 1000
)

// NormalizePage turns the raw limit/offset query values into a safe page.
// Callers substitute "200" and "0" for absent parameters; a value that is
// present but empty or not an integer makes both fall back to the defaults.
// A limit outside [1, MaxListLimit] becomes DefaultListLimit and a negative
// offset becomes 0.
func NormalizePage(limitRaw, offsetRaw string) (limit, offset int32) {
	l, err := strconv.ParseInt(strings.TrimSpace(limitRaw), 10, 64)
	if err != nil {
		return DefaultListLimit, 0
	}
	o, err := strconv.ParseInt(strings.TrimSpace(offsetRaw), 10, 64)
	if err != nil {
		return DefaultListLimit, 0
	}

	if l < 1 || l > MaxListLimit {
		l = DefaultListLimit
	}
	if o < 0 {
		o = 0
	}
	if o > maxInt32 {
		o = maxInt32
	}
	return int32(l), int32(o)
}

const maxInt32 = 1<<31 - 1
