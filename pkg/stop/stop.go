// Package stop implements a pattern for shutting down a group of
// long-running components and collecting their errors.
package stop

// Channel is used to return zero or more errors asynchronously. Call
// Done exactly once to pass errors to the Channel.
type Channel chan []error

// Result is a receive-only view of a Channel. Call Wait exactly once to
// receive any returned errors.
type Result <-chan []error

// Done adds zero or more errors to the Channel and closes it,
// indicating the caller has finished stopping.
func (ch Channel) Done(errs ...error) {
	if len(errs) > 0 && errs[0] != nil {
		ch <- errs
	}
	close(ch)
}

// Result converts a Channel to a Result.
func (ch Channel) Result() Result {
	return (<-chan []error)(ch)
}

// Wait blocks until Done is called on the underlying Channel and
// returns any errors.
func (r Result) Wait() []error {
	return <-r
}

// AlreadyStopped is a closed Result for components that were stopped
// before Stop was called.
var AlreadyStopped Result

func init() {
	closed := make(Channel)
	close(closed)
	AlreadyStopped = closed.Result()
}

// A Stopper shuts down asynchronously: Stop returns immediately and the
// returned Result reports the outcome. Closing the channel without an
// error signals a clean shutdown.
type Stopper interface {
	Stop() Result
}

// A Group is a collection of Stoppers that can be stopped at once.
type Group struct {
	stoppables []Stopper
}

// NewGroup allocates a new Group.
func NewGroup() *Group {
	return &Group{stoppables: make([]Stopper, 0)}
}

// Add appends a Stopper to the group.
func (cg *Group) Add(toAdd Stopper) {
	cg.stoppables = append(cg.stoppables, toAdd)
}

// Stop stops all members of the group concurrently and collects their
// Results.
func (cg *Group) Stop() Result {
	whenDone := make(Channel)

	waitChannels := make([]Result, 0, len(cg.stoppables))
	for _, toStop := range cg.stoppables {
		waitChannels = append(waitChannels, toStop.Stop())
	}

	go func() {
		var errors []error
		for _, waitFor := range waitChannels {
			errors = append(errors, waitFor.Wait()...)
		}
		whenDone.Done(errors...)
	}()

	return whenDone.Result()
}
