package salary

import (
	"math"
	"math/rand"
)

// Fixed topology: input 50, two hidden ReLU layers, one linear output unit
// squashed by a sigmoid into [0,1].
const (
	hidden1Size = 32
	hidden2Size = 16
)

const (
	learningRate  = 0.01
	momentumDecay = 0.9
	trainEpochs   = 300
)

// Network is a small feed-forward regressor trained with per-sample
// gradient descent and momentum. It is constructed during an explicit
// initialization phase and injected where needed; weights are not persisted,
// a restart retrains from scratch.
type Network struct {
	w1 [][]float64
	b1 []float64
	w2 [][]float64
	b2 []float64
	w3 []float64
	b3 float64

	// momentum buffers, same shapes as the weights
	vw1 [][]float64
	vb1 []float64
	vw2 [][]float64
	vb2 []float64
	vw3 []float64
	vb3 float64

	rng *rand.Rand
}

func NewNetwork(seed int64) *Network {
	rng := rand.New(rand.NewSource(seed))
	n := &Network{
		w1:  heMatrix(rng, hidden1Size, VectorWidth),
		b1:  make([]float64, hidden1Size),
		w2:  heMatrix(rng, hidden2Size, hidden1Size),
		b2:  make([]float64, hidden2Size),
		w3:  heVector(rng, hidden2Size),
		vw1: zeroMatrix(hidden1Size, VectorWidth),
		vb1: make([]float64, hidden1Size),
		vw2: zeroMatrix(hidden2Size, hidden1Size),
		vb2: make([]float64, hidden2Size),
		vw3: make([]float64, hidden2Size),
		rng: rng,
	}
	return n
}

// heMatrix draws rows x cols weights from N(0, 2/fanIn), the variance-scaled
// init that keeps ReLU activations from collapsing.
func heMatrix(rng *rand.Rand, rows, cols int) [][]float64 {
	scale := math.Sqrt(2.0 / float64(cols))
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = rng.NormFloat64() * scale
		}
	}
	return m
}

func heVector(rng *rand.Rand, cols int) []float64 {
	scale := math.Sqrt(2.0 / float64(cols))
	v := make([]float64, cols)
	for i := range v {
		v[i] = rng.NormFloat64() * scale
	}
	return v
}

func zeroMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func relu(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// forward runs the network, returning the squashed output and the hidden
// pre-activations needed by backprop.
func (n *Network) forward(x []float64) (out float64, z1, a1, z2, a2 []float64, z3 float64) {
	z1 = make([]float64, hidden1Size)
	a1 = make([]float64, hidden1Size)
	for i := 0; i < hidden1Size; i++ {
		sum := n.b1[i]
		for j, v := range x {
			sum += n.w1[i][j] * v
		}
		z1[i] = sum
		a1[i] = relu(sum)
	}

	z2 = make([]float64, hidden2Size)
	a2 = make([]float64, hidden2Size)
	for i := 0; i < hidden2Size; i++ {
		sum := n.b2[i]
		for j := 0; j < hidden1Size; j++ {
			sum += n.w2[i][j] * a1[j]
		}
		z2[i] = sum
		a2[i] = relu(sum)
	}

	z3 = n.b3
	for i := 0; i < hidden2Size; i++ {
		z3 += n.w3[i] * a2[i]
	}
	return sigmoid(z3), z1, a1, z2, a2, z3
}

// Predict returns the network's [0,1] score for an encoded feature vector.
func (n *Network) Predict(x []float64) float64 {
	out, _, _, _, _, _ := n.forward(x)
	return out
}

type trainingSample struct {
	features []float64
	target   float64 // min-max normalized into [0,1]
}

// Train runs fixed-epoch per-sample gradient descent with momentum over the
// given samples, reshuffling each epoch, and returns the final mean squared
// error. Blocking and CPU-bound: call it once during startup, never inside a
// request handler.
func (n *Network) Train(samples []trainingSample) float64 {
	idx := make([]int, len(samples))
	for i := range idx {
		idx[i] = i
	}

	var lastLoss float64
	for epoch := 0; epoch < trainEpochs; epoch++ {
		n.rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		var sumLoss float64
		for _, k := range idx {
			sumLoss += n.step(samples[k].features, samples[k].target)
		}
		lastLoss = sumLoss / float64(len(samples))
	}
	return lastLoss
}

// step does one forward/backward pass and applies the momentum update.
// Output gradient is 2*(prediction-target), the unscaled MSE derivative.
func (n *Network) step(x []float64, target float64) float64 {
	out, z1, a1, z2, a2, _ := n.forward(x)

	diff := out - target
	loss := diff * diff

	// d loss / d z3 through the sigmoid
	dz3 := 2 * diff * out * (1 - out)

	dw3 := make([]float64, hidden2Size)
	da2 := make([]float64, hidden2Size)
	for i := 0; i < hidden2Size; i++ {
		dw3[i] = dz3 * a2[i]
		da2[i] = dz3 * n.w3[i]
	}

	dz2 := make([]float64, hidden2Size)
	for i := 0; i < hidden2Size; i++ {
		if z2[i] > 0 {
			dz2[i] = da2[i]
		}
	}

	da1 := make([]float64, hidden1Size)
	for j := 0; j < hidden1Size; j++ {
		for i := 0; i < hidden2Size; i++ {
			da1[j] += dz2[i] * n.w2[i][j]
		}
	}
	dz1 := make([]float64, hidden1Size)
	for j := 0; j < hidden1Size; j++ {
		if z1[j] > 0 {
			dz1[j] = da1[j]
		}
	}

	// momentum updates, outermost layer first
	for i := 0; i < hidden2Size; i++ {
		n.vw3[i] = momentumDecay*n.vw3[i] - learningRate*dw3[i]
		n.w3[i] += n.vw3[i]
	}
	n.vb3 = momentumDecay*n.vb3 - learningRate*dz3
	n.b3 += n.vb3

	for i := 0; i < hidden2Size; i++ {
		for j := 0; j < hidden1Size; j++ {
			n.vw2[i][j] = momentumDecay*n.vw2[i][j] - learningRate*dz2[i]*a1[j]
			n.w2[i][j] += n.vw2[i][j]
		}
		n.vb2[i] = momentumDecay*n.vb2[i] - learningRate*dz2[i]
		n.b2[i] += n.vb2[i]
	}

	for i := 0; i < hidden1Size; i++ {
		for j := range x {
			n.vw1[i][j] = momentumDecay*n.vw1[i][j] - learningRate*dz1[i]*x[j]
			n.w1[i][j] += n.vw1[i][j]
		}
		n.vb1[i] = momentumDecay*n.vb1[i] - learningRate*dz1[i]
		n.b1[i] += n.vb1[i]
	}

	return loss
}
