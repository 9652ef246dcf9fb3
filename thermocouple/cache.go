package thermocouple

import (
	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

type strategy struct {
	kind      its90.Kind
	precision its90.Precision
	mode      its90.DomainMode
}

// evaluators caches compiled evaluators per strategy. Evaluators are immutable, so one instance
// is shared by every thermocouple using the same strategy.
var evaluators = xsync.NewMapOf[strategy, *its90.Evaluator]()

func evaluator(s strategy, l logger.Logger) (*its90.Evaluator, error) {
	if ev, ok := evaluators.Load(s); ok {
		return ev, nil
	}

	ev, err := its90.Compile(s.kind, s.precision, s.mode)
	if err != nil {
		return nil, err
	}

	actual, loaded := evaluators.LoadOrStore(s, ev)
	if !loaded {
		l.Debug("compiled evaluator",
			"kind", s.kind.String(),
			"precision", s.precision.String(),
			"domain", s.mode.String(),
		)
	}

	return actual, nil
}
