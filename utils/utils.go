package utils

import (
	"log"
)

// Debug turns on DPrintf output. The demo binary sets it from --debug.
var Debug = false

func DPrintf(format string, a ...interface{}) {
	if Debug {
		log.Printf(format, a...)
	}
}
