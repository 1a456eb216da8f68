// Package telemetry provides OpenTelemetry tracing for game sessions.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "simplerpg"
	serviceVersion = "0.1.0"

	honeycombTeamHeader    = "x-honeycomb-team"
	honeycombDatasetHeader = "x-honeycomb-dataset"
)

// Options configures the OTLP exporter.
type Options struct {
	// EndpointURL is the OTLP HTTP endpoint, e.g. https://api.honeycomb.io.
	EndpointURL string
	// APIKey is sent as the Honeycomb team header when set.
	APIKey string
	// Dataset is sent as the Honeycomb dataset header when set.
	Dataset string
}

// Headers returns the exporter headers derived from the options.
func (o Options) Headers() map[string]string {
	headers := map[string]string{}
	if o.APIKey != "" {
		headers[honeycombTeamHeader] = o.APIKey
	}
	if o.Dataset != "" {
		headers[honeycombDatasetHeader] = o.Dataset
	}
	return headers
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers it
// as the global tracer provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporterOpts := []otlptracehttp.Option{}
	if opts.EndpointURL != "" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(opts.EndpointURL))
	}
	if headers := opts.Headers(); len(headers) > 0 {
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(headers))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Not merged with resource.Default(): its schema URL may differ from ours
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
			semconv.HostName(hostname()),
			semconv.ProcessRuntimeName("go"),
			semconv.ProcessRuntimeVersion(runtime.Version()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("telemetry.sdk.language", "go"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider.
// Until Setup runs, the global provider is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// hostname returns the system hostname, or "unknown" if it cannot be determined.
func hostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
