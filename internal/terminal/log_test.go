package terminal

import (
	"testing"
	"time"

	"github.com/fxrates/fxprov/internal/utils/test/assert"
)

var logStaticTime = time.Date(1989, 6, 22, 1, 23, 45, 0, time.UTC)

func TestLogPrint(t *testing.T) {
	t.Run("Should print a text log with its level and timestamp", func(t *testing.T) {
		log := NewTextLog("hello %s", "world")
		log.Time = logStaticTime

		output, err := log.Print(OutputFormatText)
		assert.Nil(t, err)
		assert.Equal(t, "01:23:45 UTC INFO  hello world", output)
	})

	t.Run("Should print a warning log at the warn level", func(t *testing.T) {
		log := NewWarningLog("look out")
		log.Time = logStaticTime

		output, err := log.Print(OutputFormatText)
		assert.Nil(t, err)
		assert.Equal(t, "01:23:45 UTC WARN  look out", output)
	})

	t.Run("Should print a text log as a JSON document with ordered fields", func(t *testing.T) {
		log := NewTextLog("hello world")
		log.Time = logStaticTime

		output, err := log.Print(OutputFormatJSON)
		assert.Nil(t, err)
		assert.Equal(t, `{"time":"1989-06-22T01:23:45Z","level":"info","message":"hello world"}`, output)
	})

	t.Run("Should print a table log as a JSON document with its rows", func(t *testing.T) {
		log := NewTableLog(
			"results",
			[]string{"Name", "Outcome"},
			map[string]interface{}{"Name": "fx_user", "Outcome": "created"},
		)
		log.Time = logStaticTime

		output, err := log.Print(OutputFormatJSON)
		assert.Nil(t, err)
		assert.Equal(t,
			`{"time":"1989-06-22T01:23:45Z","level":"info","message":"results","data":[{"Name":"fx_user","Outcome":"created"}],"headers":["Name","Outcome"]}`,
			output,
		)
	})

	t.Run("Should fail to print with an unsupported output format", func(t *testing.T) {
		log := NewTextLog("hello world")

		_, err := log.Print(OutputFormat("yaml"))
		assert.Equal(t, "unsupported output format type: yaml", err.Error())
	})
}
