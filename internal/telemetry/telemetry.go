// Package telemetry wires OpenTelemetry tracing. Export is enabled only when
// OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise a noop tracer is returned so
// callers never branch on configuration.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables OTLP export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "panelkit"
	instrumentation    = "github.com/alexisbeaulieu97/panelkit"
)

// Provider owns the tracer provider for one process.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup builds a Provider from the environment.
func Setup(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentation)}, nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Provider{provider: provider, tracer: provider.Tracer(instrumentation)}, nil
}

// exporterOptions leaves URL endpoints to the exporter, which reads the same
// variable and appends the traces path. A bare host:port is dialed over
// plain HTTP.
func exporterOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return nil
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// Tracer returns the process tracer. A nil Provider yields a noop tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.tracer == nil {
		return Noop()
	}
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Noop returns a tracer that records nothing.
func Noop() oteltrace.Tracer {
	return noop.NewTracerProvider().Tracer(instrumentation)
}
