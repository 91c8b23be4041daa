/*
flag package sets up cli flags shared across service boundaries.

Flags listed in this package are service-agnostic; for service dependent
flags please define them in their respective package.
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "service name reported to logging and tracing")
}

// Parse parses the shared flags. Call once from main before anything reads
// them; until then every flag holds its default.
func Parse() {
	flag.Parse()
}
