package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReplacesUnderscores(t *testing.T) {
	assert.Equal(t, "needle driver", Normalize("needle_driver"))
	assert.Equal(t, "monopolar curved scissors", Normalize("monopolar_curved_scissors"))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "no underscores here", Normalize("no underscores here"))
}

func TestSummarizeToolsJoins(t *testing.T) {
	assert.Equal(t, "", SummarizeTools(nil))
	assert.Equal(t, "needle driver", SummarizeTools([]string{"needle_driver"}))
	assert.Equal(t, "needle driver and cadiere forceps",
		SummarizeTools([]string{"needle_driver", "cadiere_forceps"}))
	assert.Equal(t, "needle driver, cadiere forceps, and monopolar curved scissors",
		SummarizeTools([]string{"needle_driver", "cadiere_forceps", "monopolar_curved_scissors"}))
}

func TestSummarizeToolsCapsAtThree(t *testing.T) {
	got := SummarizeTools([]string{"a", "b", "c", "d", "e"})
	assert.Equal(t, "a, b, and c", got)
}

func TestSummarizeToolsDedupsAfterNormalization(t *testing.T) {
	// "needle_driver" and "needle driver" normalize to the same phrase.
	got := SummarizeTools([]string{"needle_driver", "needle driver", "cadiere_forceps"})
	assert.Equal(t, "needle driver and cadiere forceps", got)
}

func TestSummarizeToolsDedupIsCaseSensitive(t *testing.T) {
	got := SummarizeTools([]string{"Needle_Driver", "needle_driver"})
	assert.Equal(t, "Needle Driver and needle driver", got)
}

func TestSummarizeToolsSkipsBlankEntries(t *testing.T) {
	got := SummarizeTools([]string{"", "  ", "needle_driver", "_ _"})
	// "_ _" normalizes to spaces only and is dropped too.
	assert.Equal(t, "needle driver", got)
}
