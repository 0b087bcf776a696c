package salary

import (
	"github.com/careerhub/ticketing-core/internal/observability"
)

// Salary band the [0,1] network score rescales into, annual INR.
const (
	BandMin = 200000.0
	BandMax = 5000000.0
)

const currency = "INR"

type Estimate struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Average    float64 `json:"average"`
	Currency   string  `json:"currency"`
	Confidence float64 `json:"confidence"`
}

// Estimator wraps the trained network behind the encode-then-score contract.
// Construct with NewEstimator during startup and inject it; it holds no
// global state.
type Estimator struct {
	net     *Network
	trained bool
}

func NewEstimator(seed int64) *Estimator {
	return &Estimator{net: NewNetwork(seed)}
}

// Train fits the network to the built-in dataset and returns the final mean
// squared error. Blocking; run during the initialization phase before
// serving requests.
func (e *Estimator) Train() float64 {
	samples := make([]trainingSample, len(trainingData))
	for i, rec := range trainingData {
		samples[i] = trainingSample{
			features: Encode(rec),
			target:   (rec.Salary - BandMin) / (BandMax - BandMin),
		}
	}
	loss := e.net.Train(samples)
	e.trained = true
	observability.SalaryTrainingLoss.Set(loss)
	return loss
}

func (e *Estimator) Ready() bool { return e.trained }

// Predict scores a profile record. The point estimate carries a fixed ±15%
// band, not a statistical interval, and confidence is a completeness
// heuristic over the feature vector, capped at 95.
func (e *Estimator) Predict(rec Record) Estimate {
	vec := Encode(rec)
	score := e.net.Predict(vec)

	average := BandMin + score*(BandMax-BandMin)

	confidence := 50 + 50*nonZeroFraction(vec)
	if confidence > 95 {
		confidence = 95
	}

	observability.SalaryPredictions.Inc()
	return Estimate{
		Min:        average * 0.85,
		Max:        average * 1.15,
		Average:    average,
		Currency:   currency,
		Confidence: confidence,
	}
}
