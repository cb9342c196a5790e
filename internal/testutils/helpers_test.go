package testutils

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestScriptedConsole_FailOutputWhileWriting(t *testing.T) {
	console := NewScriptedConsole()
	boom := errors.New("closed")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = console.Output(context.Background(), domain.Text("x"))
		}
	}()
	go func() {
		defer wg.Done()
		console.FailOutput(boom)
	}()
	wg.Wait()

	assert.ErrorIs(t, console.Output(context.Background(), domain.Text("y")), boom)
	assert.NotContains(t, console.Lines(), "y")
}
