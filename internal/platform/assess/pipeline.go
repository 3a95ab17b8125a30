package assess

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Section is one isolated mapping step. A failing section must not abort
// the sections that follow it; the form fields it would have populated stay
// at their defaults.
type Section struct {
	Name string
	Run  func() error
}

// Pipeline runs mapping sections in order, recovering panics and logging
// failures per section.
type Pipeline struct {
	logger zerolog.Logger
}

func NewPipeline(logger zerolog.Logger) Pipeline {
	return Pipeline{logger: logger}
}

// Run executes every section regardless of earlier failures and returns the
// names of the sections that failed.
func (p Pipeline) Run(sections ...Section) []string {
	var failed []string
	for _, sec := range sections {
		if err := p.runSection(sec); err != nil {
			p.logger.Error().Err(err).Str("section", sec.Name).Msg("section mapping failed")
			failed = append(failed, sec.Name)
		}
	}
	return failed
}

func (p Pipeline) runSection(sec Section) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in section %s: %v", sec.Name, r)
		}
	}()
	return sec.Run()
}
