package terminal

import (
	"strings"
	"testing"

	"github.com/fxrates/fxprov/internal/utils/test/assert"
)

func TestTableMessage(t *testing.T) {
	t.Run("Should size columns to the widest cell", func(t *testing.T) {
		tbl := newTable(
			"results",
			[]string{"Name", "Outcome"},
			[]map[string]interface{}{
				{"Name": "fx_user", "Outcome": "created"},
				{"Name": "exchange_rates", "Outcome": "exists"},
			},
		)

		message, err := tbl.Message()
		assert.Nil(t, err)
		assert.Equal(t, strings.Join([]string{
			"results",
			"  Name            Outcome",
			"  --------------  -------",
			"  fx_user         created",
			"  exchange_rates  exists ",
		}, "\n"), message)
	})

	t.Run("Should leave cells blank for missing and nil values", func(t *testing.T) {
		tbl := newTable(
			"results",
			[]string{"Name", "Outcome"},
			[]map[string]interface{}{
				{"Name": "fx_user", "Outcome": nil},
			},
		)

		message, err := tbl.Message()
		assert.Nil(t, err)
		assert.Equal(t, strings.Join([]string{
			"results",
			"  Name     Outcome",
			"  -------  -------",
			"  fx_user         ",
		}, "\n"), message)
	})

	t.Run("Should refuse to render without headers", func(t *testing.T) {
		tbl := newTable("results", nil, nil)

		_, err := tbl.Message()
		assert.Equal(t, "cannot create a table without headers", err.Error())
	})
}
