package tracking

// Progress receives one Update per emitted frame. It is a side channel:
// implementations must not influence the tracking output.
type Progress interface {
	Update(n int)
}

// NopProgress discards all updates.
type NopProgress struct{}

func (NopProgress) Update(int) {}

// CountingProgress accumulates updates, for callers that render their own
// indicator.
type CountingProgress struct {
	Done int
}

func (p *CountingProgress) Update(n int) {
	p.Done += n
}
