package puzzle

import (
	"github.com/arloliu/puz/extension"
)

// Rebus returns the decoded rebus view, creating it on first use.
func (p *Puzzle) Rebus() (*extension.Rebus, error) {
	if p.rebus == nil {
		r, err := extension.DecodeRebus(p.extensions(), p.Cells(), p.Encoding())
		if err != nil {
			return nil, err
		}
		p.rebus = r
	}

	return p.rebus, nil
}

// Markup returns the decoded markup view, creating it on first use.
func (p *Puzzle) Markup() (*extension.Markup, error) {
	if p.markup == nil {
		m, err := extension.DecodeMarkup(p.extensions(), p.Cells())
		if err != nil {
			return nil, err
		}
		p.markup = m
	}

	return p.markup, nil
}

// Timer returns the decoded timer view, creating it on first use.
func (p *Puzzle) Timer() (*extension.Timer, error) {
	if p.timer == nil {
		t, err := extension.DecodeTimer(p.extensions())
		if err != nil {
			return nil, err
		}
		p.timer = t
	}

	return p.timer, nil
}

// HasRebus reports whether any cell holds a rebus.
func (p *Puzzle) HasRebus() bool {
	r, err := p.Rebus()
	return err == nil && r.HasRebus()
}

// HasMarkup reports whether any cell carries a markup flag.
func (p *Puzzle) HasMarkup() bool {
	m, err := p.Markup()
	return err == nil && m.Has()
}

// Commit writes every view created so far back into Extensions and drops
// them, so the next access decodes the committed bytes.
func (p *Puzzle) Commit() error {
	if p.rebus != nil {
		if err := p.rebus.Commit(); err != nil {
			return err
		}
	}
	if p.markup != nil {
		if err := p.markup.Commit(); err != nil {
			return err
		}
	}
	if p.timer != nil {
		if err := p.timer.Commit(); err != nil {
			return err
		}
	}
	p.rebus, p.markup, p.timer = nil, nil, nil

	return nil
}
