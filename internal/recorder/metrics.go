// internal/recorder/metrics.go
package recorder

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// InstrumentationName is the meter name used for gameplay counters.
const InstrumentationName = "go-garden-defense/internal/recorder"

func meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// NewMeterProvider returns an SDK provider with a manual reader, so a
// session can read its own counters back with CollectTotals.
func NewMeterProvider() (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), reader
}

// CollectTotals sums the data points of every int64 counter by instrument name.
func CollectTotals(ctx context.Context, reader sdkmetric.Reader) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// Metrics counts gameplay events. Without a configured MeterProvider the
// global no-op provider is used.
type Metrics struct {
	towersBuilt  metric.Int64Counter
	padsConsumed metric.Int64Counter
	shots        metric.Int64Counter
	dryFires     metric.Int64Counter
	menus        metric.Int64Counter
}

func NewMetrics(m metric.Meter) (*Metrics, error) {
	if m == nil {
		m = meter()
	}
	var (
		mt  Metrics
		err error
	)
	mt.towersBuilt, err = m.Int64Counter("garden.towers.built", metric.WithDescription("Towers built on pads"))
	if err != nil {
		return nil, fmt.Errorf("creating towers counter: %w", err)
	}
	mt.padsConsumed, err = m.Int64Counter("garden.pads.consumed", metric.WithDescription("Pads removed by building"))
	if err != nil {
		return nil, fmt.Errorf("creating pads counter: %w", err)
	}
	mt.shots, err = m.Int64Counter("garden.shots.fired", metric.WithDescription("Projectiles fired"))
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	mt.dryFires, err = m.Int64Counter("garden.shots.dry", metric.WithDescription("Cooldowns that expired with no target"))
	if err != nil {
		return nil, fmt.Errorf("creating dry fire counter: %w", err)
	}
	mt.menus, err = m.Int64Counter("garden.menu.transitions", metric.WithDescription("Build menu open/close transitions"))
	if err != nil {
		return nil, fmt.Errorf("creating menu counter: %w", err)
	}
	return &mt, nil
}

func (m *Metrics) towerBuilt(kind string) {
	m.towersBuilt.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) padConsumed() {
	m.padsConsumed.Add(context.Background(), 1)
}

func (m *Metrics) shot(kind string) {
	m.shots.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) dryFire(kind string) {
	m.dryFires.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) menu(opened bool) {
	m.menus.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("opened", opened)))
}
