package util

import (
	"os"
	"strconv"
)

func DebugEnabled() bool {
	return etb("MONEYBIRD_DEBUG")
}

func HTTPTraceEnabled() bool {
	return etb("MONEYBIRD_HTTP_TRACE")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}
