// Package catalog loads the interpretation, task and forecast tables the
// numerology engine reads from. Tables are parsed once at load time; gendered
// entries become structured male/female pairs so nothing is split per lookup.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
)

// LegacyGenderMarker separates the male and female halves of a scalar entry
// in tables exported from the old text format.
const LegacyGenderMarker = "||female||"

const (
	matrixFile    = "matrix.yaml"
	tasksFile     = "tasks.yaml"
	forecastsFile = "forecasts.yaml"
)

//go:embed tables/*.yaml
var embedded embed.FS

// Default loads the tables compiled into the binary.
func Default() (numerology.Tables, error) {
	sub, err := fs.Sub(embedded, "tables")
	if err != nil {
		return numerology.Tables{}, fmt.Errorf("open embedded tables: %w", err)
	}
	return Load(sub)
}

// LoadDir loads tables from a directory on disk.
func LoadDir(dir string) (numerology.Tables, error) {
	return Load(os.DirFS(dir))
}

// Load reads matrix.yaml, tasks.yaml and forecasts.yaml from fsys.
func Load(fsys fs.FS) (numerology.Tables, error) {
	interpretations, err := loadInterpretations(fsys)
	if err != nil {
		return numerology.Tables{}, err
	}
	tasks, err := loadNumbered(fsys, tasksFile)
	if err != nil {
		return numerology.Tables{}, err
	}
	forecasts, err := loadNumbered(fsys, forecastsFile)
	if err != nil {
		return numerology.Tables{}, err
	}
	return numerology.Tables{
		Interpretations: interpretations,
		Tasks:           numerology.TaskTable(tasks),
		Forecasts:       numerology.ForecastTable(forecasts),
	}, nil
}

type genderedNode struct {
	Male   string `yaml:"male"`
	Female string `yaml:"female"`
}

func loadInterpretations(fsys fs.FS) (numerology.InterpretationTable, error) {
	raw, err := fs.ReadFile(fsys, matrixFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", matrixFile, err)
	}

	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &nodes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", matrixFile, err)
	}

	table := make(numerology.InterpretationTable, len(nodes))
	for rawKey, node := range nodes {
		key := numerology.Key(rawKey)
		if !key.Valid() {
			return nil, fmt.Errorf("%s line %d: invalid key %q", matrixFile, node.Line, rawKey)
		}
		entry, err := parseEntry(&node)
		if err != nil {
			return nil, fmt.Errorf("%s key %q: %w", matrixFile, rawKey, err)
		}
		table[key] = entry
	}
	return table, nil
}

func parseEntry(node *yaml.Node) (numerology.Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseLegacyText(node.Value), nil
	case yaml.MappingNode:
		var g genderedNode
		if err := node.Decode(&g); err != nil {
			return numerology.Entry{}, err
		}
		if g.Male == "" || g.Female == "" {
			return numerology.Entry{}, fmt.Errorf("gendered entry needs both male and female text")
		}
		return numerology.GenderedEntry(strings.TrimSpace(g.Male), strings.TrimSpace(g.Female)), nil
	default:
		return numerology.Entry{}, fmt.Errorf("entry must be text or a male/female mapping")
	}
}

// ParseLegacyText turns "male text ||female|| female text" into a gendered
// entry and anything else into a neutral one.
func ParseLegacyText(text string) numerology.Entry {
	male, female, found := strings.Cut(text, LegacyGenderMarker)
	if !found {
		return numerology.NeutralEntry(strings.TrimSpace(text))
	}
	return numerology.GenderedEntry(strings.TrimSpace(male), strings.TrimSpace(female))
}

func loadNumbered(fsys fs.FS, name string) (map[int]string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var out map[int]string
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	for n := range out {
		if n < 1 {
			return nil, fmt.Errorf("%s: number %d must be positive", name, n)
		}
	}
	if out == nil {
		out = map[int]string{}
	}
	return out, nil
}
