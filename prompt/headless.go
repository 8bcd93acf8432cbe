package prompt

// Headless is a scripted Prompter for tests and --no-input runs. Answers are
// consumed in order; an exhausted queue behaves as a dismissed prompt and
// returns ErrCancelled, which makes cancellation paths easy to exercise.
type Headless struct {
	Inputs     []string
	Selections []string
	Multis     [][]string
	Confirms   []bool
}

var _ Prompter = (*Headless)(nil)

// Input implements Prompter.
func (p *Headless) Input(title, placeholder string) (string, error) {
	if len(p.Inputs) == 0 {
		return "", ErrCancelled
	}
	value := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return value, nil
}

// Select implements Prompter.
func (p *Headless) Select(title string, options []string) (string, error) {
	if len(p.Selections) == 0 {
		return "", ErrCancelled
	}
	value := p.Selections[0]
	p.Selections = p.Selections[1:]
	return value, nil
}

// MultiSelect implements Prompter.
func (p *Headless) MultiSelect(title string, options []string) ([]string, error) {
	if len(p.Multis) == 0 {
		return nil, ErrCancelled
	}
	values := p.Multis[0]
	p.Multis = p.Multis[1:]
	return values, nil
}

// Confirm implements Prompter.
func (p *Headless) Confirm(title string) (bool, error) {
	if len(p.Confirms) == 0 {
		return false, ErrCancelled
	}
	value := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return value, nil
}
