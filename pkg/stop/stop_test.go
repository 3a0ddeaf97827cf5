package stop

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockStopper struct {
	err   error
	delay time.Duration
}

func (m mockStopper) Stop() Result {
	c := make(Channel)
	go func() {
		time.Sleep(m.delay)
		c.Done(m.err)
	}()
	return c.Result()
}

func TestDoneWithoutError(t *testing.T) {
	c := make(Channel)
	go c.Done()
	require.Empty(t, c.Result().Wait())
}

func TestDoneWithError(t *testing.T) {
	wantErr := errors.New("failed to shut down")

	c := make(Channel)
	go c.Done(wantErr)

	errs := c.Result().Wait()
	require.Len(t, errs, 1)
	require.Equal(t, wantErr, errs[0])
}

func TestAlreadyStopped(t *testing.T) {
	require.Empty(t, AlreadyStopped.Wait())
}

func TestGroupCollectsErrors(t *testing.T) {
	wantErr := errors.New("one component failed")

	g := NewGroup()
	g.Add(mockStopper{})
	g.Add(mockStopper{err: wantErr, delay: 10 * time.Millisecond})
	g.Add(mockStopper{delay: 5 * time.Millisecond})

	errs := g.Stop().Wait()
	require.Len(t, errs, 1)
	require.Equal(t, wantErr, errs[0])
}
