package reactive

// Cycle runs units of work one at a time. Work submitted while another unit
// is running (typically from inside a listener being notified) is queued and
// run, in submission order, after the running unit returns and before the
// outermost Run returns.
//
// A Cycle is not safe for concurrent use; it belongs to the single logical
// thread that drives its owner.
type Cycle struct {
	running bool
	queue   []func()
}

// Run executes fn now, or queues it if a unit is already running.
// If a unit panics, the remaining queue is dropped and the panic propagates.
func (c *Cycle) Run(fn func()) {
	c.queue = append(c.queue, fn)
	if c.running {
		return
	}

	c.running = true
	defer func() {
		c.running = false
		c.queue = nil
	}()

	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue[0] = nil
		c.queue = c.queue[1:]
		next()
	}
}

// Active reports whether a unit of work is currently running.
func (c *Cycle) Active() bool {
	return c.running
}

// Pending returns the number of queued units.
func (c *Cycle) Pending() int {
	return len(c.queue)
}
