package bootstrap

import (
	"hotel-booking/internal/pkg/metrics"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.BookingMetrics { return m },
	),
)
