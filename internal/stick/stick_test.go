package stick

import (
	"github.com/vovakirdan/stick-bridge/internal/config"
)

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// seqSource replays vals in order, wrapping around.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// newTestGame returns a game with default config whose generated platforms
// all sit 40px apart and are 20px wide: {50,50} {140,20} {200,20} ...
func newTestGame() *Game {
	return New(config.DefaultStickConfig(), constSource(0))
}

// expectPanic runs fn and returns the recovered ContractError, if any.
func expectPanic(fn func()) (err *ContractError) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(*ContractError)
		}
	}()
	fn()
	return nil
}
