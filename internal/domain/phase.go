package domain

import "fmt"

type Phase uint8

const (
	PhasePending Phase = iota
	PhaseScraping
	PhaseDownloading
	PhaseParsing
	PhaseChunking
	PhaseVectorizing
	PhaseComplete
	PhaseError
)

var phaseNames = [...]string{
	PhasePending:     "pending",
	PhaseScraping:    "scraping",
	PhaseDownloading: "downloading",
	PhaseParsing:     "parsing",
	PhaseChunking:    "chunking",
	PhaseVectorizing: "vectorizing",
	PhaseComplete:    "complete",
	PhaseError:       "error",
}

// Phases lists every phase in pipeline order.
func Phases() []Phase {
	return []Phase{
		PhasePending,
		PhaseScraping,
		PhaseDownloading,
		PhaseParsing,
		PhaseChunking,
		PhaseVectorizing,
		PhaseComplete,
		PhaseError,
	}
}

// transitions holds every allowed edge; ERROR is reachable from any non-terminal phase.
// PARSING, CHUNKING and VECTORIZING are driven by downstream processing.
var transitions = map[Phase][]Phase{
	PhasePending:     {PhaseScraping, PhaseError},
	PhaseScraping:    {PhaseDownloading, PhaseComplete, PhaseError},
	PhaseDownloading: {PhaseParsing, PhaseComplete, PhaseError},
	PhaseParsing:     {PhaseChunking, PhaseError},
	PhaseChunking:    {PhaseVectorizing, PhaseError},
	PhaseVectorizing: {PhaseComplete, PhaseError},
	PhaseComplete:    nil,
	PhaseError:       nil,
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", p)
}

func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseError
}

func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (p Phase) MarshalText() ([]byte, error) {
	if int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", p)
	}
	return []byte(phaseNames[p]), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	phase, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = phase
	return nil
}

func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q: %w", s, ErrInvalidArgument)
}
