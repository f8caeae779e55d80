package prediction

import (
	"fmt"
	"math/rand/v2"
)

const (
	MinPercentage = 1
	MaxPercentage = 99

	// Usage is returned when no city is given
	Usage = `try to access an actual city like "localhost/london"`
)

// Source returns a uniform integer in [0, n)
type Source func(n int) int

// Prediction is the result for a single city
type Prediction struct {
	City       string
	Percentage int
}

// Message renders the prediction as the response body
func (p Prediction) Message() string {
	return fmt.Sprintf("the predicted awesomeness in %s is %d%%", p.City, p.Percentage)
}

// Predictor draws awesomeness percentages
type Predictor struct {
	source Source
}

// Option configures a Predictor
type Option func(*Predictor)

// WithSource replaces the random source, mainly for tests
func WithSource(source Source) Option {
	return func(p *Predictor) {
		p.source = source
	}
}

// NewPredictor creates a predictor backed by the global math/rand/v2 generator
func NewPredictor(opts ...Option) *Predictor {
	p := &Predictor{
		source: rand.IntN,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict draws a percentage for city. The city is used verbatim.
func (p *Predictor) Predict(city string) Prediction {
	span := MaxPercentage - MinPercentage + 1
	return Prediction{
		City:       city,
		Percentage: p.source(span) + MinPercentage,
	}
}
