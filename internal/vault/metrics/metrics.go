package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	VaultsCreated     prometheus.Counter
	Mints             prometheus.Counter
	Burns             prometheus.Counter
	Liquidations      prometheus.Counter
	Swaps             prometheus.Counter
	ValuationDuration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		VaultsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "strongroom_vaults_created_total",
			Help: "Total number of vaults created",
		}),
		Mints: promauto.NewCounter(prometheus.CounterOpts{
			Name: "strongroom_mints_total",
			Help: "Total number of successful mint operations",
		}),
		Burns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "strongroom_burns_total",
			Help: "Total number of successful burn operations",
		}),
		Liquidations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "strongroom_liquidations_total",
			Help: "Total number of vault liquidations",
		}),
		Swaps: promauto.NewCounter(prometheus.CounterOpts{
			Name: "strongroom_swaps_total",
			Help: "Total number of collateral swaps",
		}),
		ValuationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "strongroom_valuation_duration_seconds",
			Help:    "Duration of collateral valuation scans (invariant critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementVaultsCreated() { m.VaultsCreated.Inc() }
func (m *Metrics) IncrementMints()         { m.Mints.Inc() }
func (m *Metrics) IncrementBurns()         { m.Burns.Inc() }
func (m *Metrics) IncrementLiquidations()  { m.Liquidations.Inc() }
func (m *Metrics) IncrementSwaps()         { m.Swaps.Inc() }

func (m *Metrics) ObserveValuation(start time.Time) {
	m.ValuationDuration.Observe(time.Since(start).Seconds())
}
