package utils

import (
	. "github.com/katusha-2010/socialgraph/utils/flag"
	Logger "github.com/katusha-2010/socialgraph/utils/log"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// InitTracer starts the Datadog tracer. Call once from main.
func InitTracer() {
	env := "development"
	if !IsDevelopment {
		env = "production"
	}

	tracer.Start(
		tracer.WithService(ServiceName),
		tracer.WithEnv(env),
	)

	Logger.Log.Info("tracer initialized")
}

// Stop tracer, OK to be closed multiple times
func CloseTracer() {
	tracer.Stop()
}
