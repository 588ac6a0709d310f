// Package assets builds the Xcode asset catalog that holds the palette.
package assets

import (
	"bytes"
	"encoding/json"
	"path"

	"github.com/NielsdaWheelz/scaffoldkit/internal/artifact"
	"github.com/NielsdaWheelz/scaffoldkit/internal/color"
	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
)

// CatalogDir is the catalog directory name inside a Resources directory.
const CatalogDir = "Colors.xcassets"

const (
	contentsFile = "Contents.json"
	author       = "xcode"
	alpha        = "1.000"
)

// Info is the metadata object every catalog descriptor carries.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Components are the formatted channel values of one color.
type Components struct {
	Alpha string `json:"alpha"`
	Red   string `json:"red"`
	Green string `json:"green"`
	Blue  string `json:"blue"`
}

// ColorValue is the "color" object of a color-set entry.
type ColorValue struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// ColorItem is one idiom entry of a color set.
type ColorItem struct {
	Color ColorValue `json:"color"`
	Idiom string     `json:"idiom"`
}

// ColorSet is the Contents.json of a .colorset directory.
type ColorSet struct {
	Colors []ColorItem `json:"colors"`
	Info   Info        `json:"info"`
}

// catalogDescriptor is the top-level Contents.json.
type catalogDescriptor struct {
	Info Info `json:"info"`
}

// NamedSet pairs a color name with its set.
type NamedSet struct {
	Name string
	Set  ColorSet
}

// Catalog is a built catalog, one set per color in palette order.
type Catalog struct {
	Sets []NamedSet
}

// Build converts entries into a catalog. No entries yields a nil catalog;
// callers treat nil as "emit nothing".
func Build(entries []color.Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	cat := &Catalog{Sets: make([]NamedSet, 0, len(entries))}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			return nil, errors.NewWithDetails(errors.EValidation, "duplicate color set "+e.Name,
				map[string]string{"name": e.Name})
		}
		seen[e.Name] = true

		rgb, err := color.Convert(e.Hex)
		if err != nil {
			return nil, err
		}
		red, green, blue := rgb.Components()
		cat.Sets = append(cat.Sets, NamedSet{
			Name: e.Name,
			Set: ColorSet{
				Colors: []ColorItem{{
					Color: ColorValue{
						ColorSpace: "srgb",
						Components: Components{Alpha: alpha, Red: red, Green: green, Blue: blue},
					},
					Idiom: "universal",
				}},
				Info: Info{Author: author, Version: 1},
			},
		})
	}
	return cat, nil
}

// Artifacts renders the catalog under resourcesDir (slash-separated, relative
// to the output root). A nil catalog renders nothing.
func (c *Catalog) Artifacts(resourcesDir string) ([]artifact.Artifact, error) {
	if c == nil || len(c.Sets) == 0 {
		return nil, nil
	}

	root := path.Join(resourcesDir, CatalogDir)
	desc, err := encode(catalogDescriptor{Info: Info{Author: author, Version: 1}})
	if err != nil {
		return nil, err
	}
	out := []artifact.Artifact{artifact.New(path.Join(root, contentsFile), desc)}

	for _, ns := range c.Sets {
		data, err := encode(ns.Set)
		if err != nil {
			return nil, err
		}
		out = append(out, artifact.New(path.Join(root, ns.Name+".colorset", contentsFile), data))
	}
	return out, nil
}

// Generate is Build followed by Artifacts.
func Generate(resourcesDir string, entries []color.Entry) ([]artifact.Artifact, error) {
	cat, err := Build(entries)
	if err != nil {
		return nil, err
	}
	return cat.Artifacts(resourcesDir)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to encode asset catalog", err)
	}
	return buf.Bytes(), nil
}
