package engine

import "errors"

// Configuration errors: bad authored content reaching the resolver. They
// surface as Succeeded=false on the EffectResult, never as a silent
// default.
var (
	ErrUnknownCondition   = errors.New("unknown condition type")
	ErrUnknownScaling     = errors.New("unknown scaling type")
	ErrUnknownEffectKind  = errors.New("unknown effect kind")
	ErrMissingAlternative = errors.New("conditional effect missing alternative")
	ErrMissingDuration    = errors.New("status effect missing duration")
	ErrUnknownSource      = errors.New("source entity not in combat")
)
