package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_requests_total",
			Help: "Total number of requests",
		},
		[]string{"route", "code", "method"},
	)

	TicketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_tickets_issued_total",
			Help: "Total tickets successfully issued",
		},
	)

	TicketValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketing_validations_total",
			Help: "QR validation attempts by outcome",
		},
		[]string{"result"},
	)

	CapacityRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_capacity_rejections_total",
			Help: "Issuance attempts rejected by the admission check",
		},
	)

	TicketIDRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_ticket_id_retries_total",
			Help: "Ticket ID regenerations after a uniqueness collision",
		},
	)

	DBTxDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticketing_db_tx_seconds",
			Help:    "Duration of DB transactions",
			Buckets: prometheus.DefBuckets,
		},
	)

	OutboxLag = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticketing_outbox_lag_seconds",
			Help: "Age of the oldest unpublished outbox record",
		},
	)

	RateLimitExceeded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_rate_limit_exceeded_total",
			Help: "Total rate limit exceeded",
		},
	)

	SalaryPredictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ticketing_salary_predictions_total",
			Help: "Salary estimates served",
		},
	)

	SalaryTrainingLoss = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticketing_salary_training_loss",
			Help: "Final mean squared error after startup training",
		},
	)
)
