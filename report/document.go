package report

import (
	"time"

	"github.com/itchyny/timefmt-go"
	"gopkg.in/yaml.v3"

	"github.com/clone2727/xoreos-tools"
	"github.com/clone2727/xoreos-tools/game"
)

// VariableSummary is a global or a discovered parameter/return, flattened
// to its type and use for display.
type VariableSummary struct {
	Type string `yaml:"type"`
	Use  string `yaml:"use"`
}

func summarize(v *nwscript.Variable) VariableSummary {
	return VariableSummary{Type: v.Type.String(), Use: v.Use.String()}
}

func summarizeAll(vs []*nwscript.Variable) []VariableSummary {
	out := make([]VariableSummary, len(vs))
	for i, v := range vs {
		out[i] = summarize(v)
	}
	return out
}

// SubRoutineSummary is one analyzed subroutine's discovered signature.
type SubRoutineSummary struct {
	Address    uint32            `yaml:"address"`
	Parameters []VariableSummary `yaml:"parameters,omitempty"`
	Returns    []VariableSummary `yaml:"returns,omitempty"`
}

// Document is a whole analysis run's report: the game it was analyzed
// against, the discovered global layout, and every subroutine's signature.
type Document struct {
	GeneratedAt string              `yaml:"generatedAt"`
	Game        string              `yaml:"game"`
	Globals     []VariableSummary   `yaml:"globals,omitempty"`
	SubRoutines []SubRoutineSummary `yaml:"subRoutines"`
}

// NewDocument builds a Document from a completed analysis run's results,
// stamped with the current time.
func NewDocument(gameID game.ID, globals *nwscript.Stack, subs []*nwscript.SubRoutine) Document {
	doc := Document{
		GeneratedAt: timefmt.Format(time.Now().UTC(), "%Y-%m-%dT%H:%M:%S%z"),
		Game:        gameID.String(),
		SubRoutines: make([]SubRoutineSummary, len(subs)),
	}

	if globals != nil {
		vars := make([]*nwscript.Variable, globals.Len())
		for i := range vars {
			vars[i] = globals.At(i)
		}
		doc.Globals = summarizeAll(vars)
	}

	for i, sub := range subs {
		doc.SubRoutines[i] = SubRoutineSummary{
			Address:    sub.Address,
			Parameters: summarizeAll(sub.Params),
			Returns:    summarizeAll(sub.Returns),
		}
	}

	return doc
}

// Marshal renders the document as YAML.
func (d Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
