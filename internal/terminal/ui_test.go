package terminal

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fxrates/fxprov/internal/utils/test/assert"
)

func TestUIPrint(t *testing.T) {
	staticTime := time.Date(1989, 6, 22, 1, 23, 45, 0, time.UTC)

	t.Run("Should write info logs to the out writer", func(t *testing.T) {
		out, errOut := new(bytes.Buffer), new(bytes.Buffer)
		ui := NewUI(UIConfig{}, nil, out, errOut)

		log := NewTextLog("hello world")
		log.Time = staticTime
		ui.Print(log)

		assert.Equal(t, "01:23:45 UTC INFO  hello world\n", out.String())
		assert.Equal(t, "", errOut.String())
	})

	t.Run("Should write error logs to the err writer", func(t *testing.T) {
		out, errOut := new(bytes.Buffer), new(bytes.Buffer)
		ui := NewUI(UIConfig{}, nil, out, errOut)

		log := NewErrorLog(errors.New("something went wrong"))
		log.Time = staticTime
		ui.Print(log)

		assert.Equal(t, "", out.String())
		assert.Equal(t, "01:23:45 UTC ERROR something went wrong\n", errOut.String())
	})

	t.Run("Should write JSON documents when configured to", func(t *testing.T) {
		out, errOut := new(bytes.Buffer), new(bytes.Buffer)
		ui := NewUI(UIConfig{OutputFormat: OutputFormatJSON}, nil, out, errOut)

		log := NewTextLog("hello world")
		log.Time = staticTime
		ui.Print(log)

		assert.Equal(t, `{"time":"1989-06-22T01:23:45Z","level":"info","message":"hello world"}`+"\n", out.String())
	})
}

func TestUIConfirm(t *testing.T) {
	t.Run("Should proceed without prompting when auto confirm is set", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := NewUI(UIConfig{AutoConfirm: true}, nil, out, out)

		proceed, err := ui.Confirm("are you sure?")
		assert.Nil(t, err)
		assert.True(t, proceed, "expected the confirmation to proceed")
	})
}

func TestUISpinner(t *testing.T) {
	t.Run("Should produce a no-op spinner when writing JSON", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := NewUI(UIConfig{OutputFormat: OutputFormatJSON}, nil, out, out)

		s := ui.Spinner("working", SpinnerOptions{})
		assert.Equal(t, noopSpinner{}, s)
	})

	t.Run("Should produce a no-op spinner when writing to an output target", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := NewUI(UIConfig{OutputTarget: "out.log"}, nil, out, out)

		s := ui.Spinner("working", SpinnerOptions{})
		assert.Equal(t, noopSpinner{}, s)
	})
}
