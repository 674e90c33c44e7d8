package parallel

import "fmt"

// Threshold is the element count above which Auto mode fans out.
// Below it, goroutine dispatch costs more than the reduction itself.
const Threshold = 4095

// Mode selects between single- and multi-threaded kernel variants.
type Mode int

// Supported modes.
const (
	Auto Mode = iota
	Single
	Multi
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// ParseMode parses "auto", "single" ("serial") or "multi" ("parallel").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "serial", "single":
		return Single, nil
	case "parallel", "multi":
		return Multi, nil
	default:
		return Auto, fmt.Errorf("unknown threading mode %q", s)
	}
}

// Select returns the config a reduction over elements items runs with.
//
// Single and Multi are honored as given (Multi still needs
// more than one worker to actually fan out). Auto enables parallelism only
// when elements exceeds Threshold. The decision is made once per call.
func (cfg Config) Select(mode Mode, elements int) Config {
	switch mode {
	case Single:
		cfg.Enabled = false
	case Multi:
		cfg.Enabled = cfg.NumWorkers > 1
	default:
		cfg.Enabled = cfg.NumWorkers > 1 && elements > Threshold
	}
	return cfg
}
