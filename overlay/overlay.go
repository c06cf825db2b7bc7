// Package overlay interprets a jot build manifest, layering source
// documents into one.
package overlay

import (
	"encoding/json"
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/gomap"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/resource"
)

// ManifestName is the resource name Open looks for.
const ManifestName = "jot.build"

// Source names one layer of a build. A bare string in the manifest is
// shorthand for { "file": ... }.
type Source struct {
	File string `json:"file"`
	If   string `json:"if,omitempty"`
}

func (s *Source) UnmarshalJSON(d []byte) error {
	if len(d) > 0 && d[0] == '"' {
		return json.Unmarshal(d, &s.File)
	}
	type plain Source
	return json.Unmarshal(d, (*plain)(s))
}

// Patch names a patch document applied to the merged result. A bare
// string in the manifest is shorthand for { "file": ... }.
type Patch struct {
	File string `json:"file"`
	If   string `json:"if,omitempty"`
}

func (p *Patch) UnmarshalJSON(d []byte) error {
	if len(d) > 0 && d[0] == '"' {
		return json.Unmarshal(d, &p.File)
	}
	type plain Patch
	return json.Unmarshal(d, (*plain)(p))
}

// Build is a bound build manifest. Sources merge in order, patches
// apply to the merged result, and env drives "if" conditions and
// $[expr] expansion.
type Build struct {
	Loader   resource.Loader           `json:"-"`
	Sources  []Source                  `json:"sources"`
	Patches  []Patch                   `json:"patches,omitempty"`
	Env      map[string]any            `json:"env,omitempty"`
	Profiles map[string]map[string]any `json:"profiles,omitempty"`
}

// Open reads and binds the jot.build manifest of dir. Sources and
// patches load relative to dir.
func Open(dir string) (*Build, error) {
	return OpenLoader(resource.Dir(dir), ManifestName)
}

// OpenLoader reads the manifest called name through l and binds it.
// Sources and patches resolve through the same loader.
func OpenLoader(l resource.Loader, name string) (*Build, error) {
	doc, err := jot.Load(l, name)
	if err != nil {
		return nil, fmt.Errorf("could not load manifest %q: %w", name, err)
	}
	b := &Build{Loader: l}
	if err := gomap.FromIR(doc, b); err != nil {
		return nil, fmt.Errorf("could not bind manifest %q: %w", name, err)
	}
	if len(b.Sources) == 0 {
		return nil, fmt.Errorf("manifest %q names no sources", name)
	}
	return b, nil
}

// UseProfile overlays the named profile onto the build env. Call it
// before Run, so conditions and expansions see the combined env.
func (b *Build) UseProfile(name string) error {
	p, ok := b.Profiles[name]
	if !ok {
		return fmt.Errorf("no profile %q in manifest", name)
	}
	return b.mergeEnv(p)
}

// SetEnv overlays env onto the build env, taking precedence over the
// manifest and any applied profile.
func (b *Build) SetEnv(env map[string]any) error {
	return b.mergeEnv(env)
}

func (b *Build) mergeEnv(over map[string]any) error {
	base, err := ir.FromAny(b.Env)
	if err != nil {
		return err
	}
	on, err := ir.FromAny(over)
	if err != nil {
		return err
	}
	jot.Merge(base, on)
	b.Env = ir.ToAny(base).(map[string]any)
	return nil
}
