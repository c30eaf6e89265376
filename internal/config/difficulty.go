package config

// StepScaler is the comet growth rule: every time the score lands exactly
// on a multiple of Interval the factor jumps to Base * (1 + score/Interval).
// Between multiples the last factor holds.
type StepScaler struct {
	Base     float64
	Interval int
}

// NewCometScaler builds the comet step function from the scaling config.
func NewCometScaler(cfg ScalingConfig) StepScaler {
	return StepScaler{
		Base:     cfg.CometBaseFactor,
		Interval: cfg.CometInterval,
	}
}

// IsEnabled returns whether the step function ever fires.
func (s StepScaler) IsEnabled() bool {
	return s.Interval > 0
}

// Factor returns the new factor and true when the score is a rescale point.
func (s StepScaler) Factor(score int) (float64, bool) {
	if !s.IsEnabled() || score < s.Interval || score%s.Interval != 0 {
		return 0, false
	}
	return s.Base * float64(1+score/s.Interval), true
}
