package main

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/tdlearn/emphatic"
	"github.com/katalvlaran/tdlearn/estimator"
	"github.com/katalvlaran/tdlearn/gradient"
	"github.com/katalvlaran/tdlearn/idbd"
	"github.com/katalvlaran/tdlearn/lstd"
	"github.com/katalvlaran/tdlearn/td"
	"github.com/katalvlaran/tdlearn/trueonline"
	"github.com/katalvlaran/tdlearn/variance"
)

const (
	betaRatio    = 0.1  // GTD/HTD correction stepsize relative to α
	lstdEpsilon  = 1e-3 // ELSTD ridge seed
	idbdMetaStep = 0.01
)

// walkConfig holds the randomwalk flags.
type walkConfig struct {
	States   int
	Episodes int
	Runs     int
	Alpha    float64
	Lambda   float64
	Seed     uint64
}

func defaultWalkConfig() walkConfig {
	return walkConfig{States: 5, Episodes: 100, Runs: 10, Alpha: 0.1, Lambda: 0.8, Seed: 1}
}

// curve is one estimator's RMSE after each episode, averaged over runs.
type curve struct {
	Name     string
	RMSE     []float64
	Diverged bool
}

// learner adapts one estimator to the shared episode loop. gamma is the
// discount of the current state (0 on the first step of an episode, which
// cuts traces) and gammaNext that of the next state (0 on termination).
type learner struct {
	name string
	est  estimator.Estimator
	step func(tr estimator.Transition, gamma, gammaNext float64) error
}

// idbdTD is TD(λ) whose per-feature stepsizes come from an IDBD adapter fed
// with the TD error.
type idbdTD struct {
	*td.TD
	adapter *idbd.IDBD
}

func (l idbdTD) Reset() {
	l.TD.Reset()
	l.adapter.Reset()
}

func (l idbdTD) Diagnose() error {
	if err := l.TD.Diagnose(); err != nil {
		return err
	}

	return l.adapter.Diagnose()
}

func newLearners(cfg walkConfig) ([]learner, error) {
	n, alpha, lambda := cfg.States, cfg.Alpha, cfg.Lambda

	tdL, err := td.New(n)
	if err != nil {
		return nil, err
	}
	etd, err := emphatic.NewETD(n)
	if err != nil {
		return nil, err
	}
	toetd, err := emphatic.NewTrueOnlineETD(n)
	if err != nil {
		return nil, err
	}
	gtd, err := gradient.NewGTD(n)
	if err != nil {
		return nil, err
	}
	htd, err := gradient.NewHTD(n)
	if err != nil {
		return nil, err
	}
	totd, err := trueonline.New(n)
	if err != nil {
		return nil, err
	}
	dvtd, err := variance.New(n)
	if err != nil {
		return nil, err
	}
	elstd, err := lstd.New(n, lstd.WithEpsilon(lstdEpsilon))
	if err != nil {
		return nil, err
	}
	inner, err := td.New(n)
	if err != nil {
		return nil, err
	}
	adapter, err := idbd.New(n, idbd.WithMetaStep(idbdMetaStep), idbd.WithInitialLogStep(math.Log(alpha)))
	if err != nil {
		return nil, err
	}
	tdIDBD := idbdTD{TD: inner, adapter: adapter}

	return []learner{
		{name: "TD", est: tdL, step: func(tr estimator.Transition, g, gn float64) error {
			_, err := tdL.Update(tr, td.Params{Alpha: alpha, Gamma: g, GammaNext: gn, Lambda: lambda})
			return err
		}},
		{name: "ETD", est: etd, step: func(tr estimator.Transition, g, gn float64) error {
			_, err := etd.Update(tr, emphatic.Params{Alpha: alpha, Gamma: g, GammaNext: gn, Lambda: lambda, Rho: 1, Interest: 1})
			return err
		}},
		{name: "TOETD", est: toetd, step: func(tr estimator.Transition, _, gn float64) error {
			_, err := toetd.Update(tr, emphatic.TrueOnlineParams{Alpha: alpha, GammaNext: gn, Lambda: lambda, Rho: 1, Interest: 1})
			return err
		}},
		{name: "GTD", est: gtd, step: func(tr estimator.Transition, g, gn float64) error {
			_, err := gtd.Update(tr, gradient.Params{Alpha: alpha, Beta: alpha * betaRatio, Gamma: g, GammaNext: gn, Lambda: lambda, Rho: 1})
			return err
		}},
		{name: "HTD", est: htd, step: func(tr estimator.Transition, g, gn float64) error {
			_, err := htd.Update(tr, gradient.Params{Alpha: alpha, Beta: alpha * betaRatio, Gamma: g, GammaNext: gn, Lambda: lambda, Rho: 1})
			return err
		}},
		{name: "TOTD", est: totd, step: func(tr estimator.Transition, g, gn float64) error {
			_, err := totd.Update(tr, trueonline.Params{Alpha: alpha, Gamma: g, GammaNext: gn, Lambda: lambda})
			return err
		}},
		{name: "DVTD", est: dvtd, step: func(tr estimator.Transition, g, gn float64) error {
			_, _, err := dvtd.Update(tr, variance.Params{Alpha: alpha, Gamma: g, GammaNext: gn, Lambda: lambda, LambdaNext: lambda})
			return err
		}},
		{name: "ELSTD", est: elstd, step: func(tr estimator.Transition, g, gn float64) error {
			return elstd.Update(tr, lstd.Params{Gamma: g, GammaNext: gn, Lambda: lambda, Interest: 1})
		}},
		{name: "TD+IDBD", est: tdIDBD, step: func(tr estimator.Transition, g, gn float64) error {
			d, err := inner.UpdateStepsizes(tr, adapter.Stepsizes(), td.Params{Gamma: g, GammaNext: gn, Lambda: lambda})
			if err != nil {
				return err
			}
			return adapter.Update(tr.X, d)
		}},
	}, nil
}

// walker generates bounded random-walk episodes over one-hot features.
type walker struct {
	rng      *rand.Rand
	onehot   [][]float64
	terminal []float64
}

func newWalker(n int, seed uint64) *walker {
	w := &walker{
		rng:      rand.New(rand.NewSource(seed)),
		onehot:   make([][]float64, n),
		terminal: make([]float64, n),
	}
	for i := range w.onehot {
		w.onehot[i] = make([]float64, n)
		w.onehot[i][i] = 1
	}

	return w
}

// episode starts in the middle state and walks until it falls off either end.
// Only the right exit pays 1.
func (w *walker) episode() []estimator.Transition {
	n := len(w.onehot)
	var out []estimator.Transition
	for s := n / 2; ; {
		next := s + 2*w.rng.Intn(2) - 1
		switch {
		case next < 0:
			return append(out, estimator.Transition{X: w.onehot[s], Reward: 0, XNext: w.terminal})
		case next >= n:
			return append(out, estimator.Transition{X: w.onehot[s], Reward: 1, XNext: w.terminal})
		}
		out = append(out, estimator.Transition{X: w.onehot[s], Reward: 0, XNext: w.onehot[next]})
		s = next
	}
}

// rmse compares est against the true values i/(N+1) over all states.
func (w *walker) rmse(est estimator.Estimator) (float64, error) {
	n := len(w.onehot)
	var sum float64
	for i, x := range w.onehot {
		v, err := est.Value(x)
		if err != nil {
			return 0, err
		}
		diff := v - float64(i+1)/float64(n+1)
		sum += diff * diff
	}

	return math.Sqrt(sum / float64(n)), nil
}

// simulate runs cfg.Runs independent runs of cfg.Episodes episodes. Every
// estimator sees the same episodes; estimators are Reset between runs.
func simulate(cfg walkConfig) ([]curve, error) {
	learners, err := newLearners(cfg)
	if err != nil {
		return nil, err
	}
	w := newWalker(cfg.States, cfg.Seed)
	curves := make([]curve, len(learners))
	for i, l := range learners {
		curves[i] = curve{Name: l.name, RMSE: make([]float64, cfg.Episodes)}
	}

	var g, gn, e float64
	for run := 0; run < cfg.Runs; run++ {
		for _, l := range learners {
			l.est.Reset()
		}
		for ep := 0; ep < cfg.Episodes; ep++ {
			traj := w.episode()
			for t, tr := range traj {
				g, gn = 1, 1
				if t == 0 {
					g = 0
				}
				if t == len(traj)-1 {
					gn = 0
				}
				for _, l := range learners {
					if err = l.step(tr, g, gn); err != nil {
						return nil, err
					}
				}
			}
			for i, l := range learners {
				if e, err = w.rmse(l.est); err != nil {
					return nil, err
				}
				curves[i].RMSE[ep] += e / float64(cfg.Runs)
			}
		}
		for i, l := range learners {
			if l.est.Diagnose() != nil {
				curves[i].Diverged = true
			}
		}
	}

	return curves, nil
}
