package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/vk/hclimport/internal/ctyconv"
	"github.com/vk/hclimport/internal/importgraph"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
	"gopkg.in/yaml.v3"
)

const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
)

func (a *App) render(h *unit.Handle) error {
	switch a.config.Output {
	case OutputYAML:
		return a.renderYAML(a.outW, h)
	default:
		return a.renderText(a.outW, h)
	}
}

// owns reports whether sub is h's own sub-unit bound under key, as opposed to
// a unit imported into h's namespace.
func owns(h *unit.Handle, key string, sub *unit.Handle) bool {
	parent, ok := sub.Name().Parent()
	return ok && parent.Equal(h.Name()) && sub.Name().Last() == key
}

type textStyles struct {
	name  lipgloss.Style
	muted lipgloss.Style
}

func (a *App) renderText(w io.Writer, h *unit.Handle) error {
	r := lipgloss.NewRenderer(w)
	styles := textStyles{
		name:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted: r.NewStyle().Foreground(colorMuted),
	}

	t := unitTree(h, styles).Enumerator(tree.RoundedEnumerator)
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	if a.config.ShowRegistry {
		var b strings.Builder
		b.WriteString(styles.name.Render("registry") + "\n")
		for _, name := range a.registry.Names() {
			kind := ""
			if rh, ok := a.registry.Lookup(unitname.MustParse(name)); ok {
				kind = rh.Kind().String()
			}
			fmt.Fprintf(&b, "  %s %s\n", name, styles.muted.Render("("+kind+")"))
		}
		if edges := a.imports.Edges(); len(edges) > 0 {
			b.WriteString(styles.name.Render("imports") + "\n")
			for _, edge := range edges {
				fmt.Fprintf(&b, "  %s -> %s\n", edge.From, edge.To)
			}
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func unitTree(h *unit.Handle, styles textStyles) *tree.Tree {
	t := tree.Root(styles.name.Render(h.Name().String()) + " " + styles.muted.Render("("+h.Kind().String()+")"))
	for _, key := range h.Keys() {
		v, ok := h.Get(key)
		if !ok {
			continue
		}
		switch v.Kind() {
		case unit.KindData:
			d, _ := v.Data()
			t.Child(fmt.Sprintf("%s = %s", key, ctyconv.HCLString(d)))
		case unit.KindUnit:
			sub, _ := v.Unit()
			if owns(h, key, sub) {
				t.Child(unitTree(sub, styles))
			} else {
				t.Child(fmt.Sprintf("%s -> %s", key, sub.Name()))
			}
		}
	}
	return t
}

// unitDoc is the YAML shape of a rendered unit.
type unitDoc struct {
	Name       string              `yaml:"name"`
	Kind       string              `yaml:"kind"`
	Origin     string              `yaml:"origin,omitempty"`
	Package    string              `yaml:"package,omitempty"`
	Attributes map[string]any      `yaml:"attributes,omitempty"`
	Units      map[string]*unitDoc `yaml:"units,omitempty"`
	Refs       map[string]string   `yaml:"refs,omitempty"`
}

type report struct {
	Result   *unitDoc           `yaml:"result"`
	Registry []string           `yaml:"registry,omitempty"`
	Imports  []importgraph.Edge `yaml:"imports,omitempty"`
}

func describe(h *unit.Handle) *unitDoc {
	doc := &unitDoc{Name: h.Name().String(), Kind: h.Kind().String()}
	doc.Origin, _ = h.Origin()
	doc.Package, _ = h.Package()

	for _, key := range h.Keys() {
		v, ok := h.Get(key)
		if !ok {
			continue
		}
		switch v.Kind() {
		case unit.KindData:
			d, _ := v.Data()
			if doc.Attributes == nil {
				doc.Attributes = make(map[string]any)
			}
			doc.Attributes[key] = ctyconv.ToGo(d)
		case unit.KindUnit:
			sub, _ := v.Unit()
			if owns(h, key, sub) {
				if doc.Units == nil {
					doc.Units = make(map[string]*unitDoc)
				}
				doc.Units[key] = describe(sub)
				continue
			}
			if doc.Refs == nil {
				doc.Refs = make(map[string]string)
			}
			doc.Refs[key] = sub.Name().String()
		}
	}
	return doc
}

func (a *App) renderYAML(w io.Writer, h *unit.Handle) error {
	rep := report{Result: describe(h)}
	if a.config.ShowRegistry {
		rep.Registry = a.registry.Names()
		rep.Imports = a.imports.Edges()
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
