package binding

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/vizset/pkg/errors"
)

// LoadFile reads role-to-column bindings from a TOML or YAML file:
//
//	source = "src"
//	destination = "dst"
//	point_color = "community"
//
// The format is chosen by extension (.toml, .yaml, .yml). Unknown keys are
// rejected so that a misspelled role does not silently stay unbound.
func LoadFile(path string) (Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Fields{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "binding config %s", path)
		}
		return Fields{}, errors.Wrap(errors.ErrCodeConfiguration, err, "binding config %s", path)
	}

	var f Fields
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return Fields{}, errors.Wrap(errors.ErrCodeConfiguration, err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Fields{}, errors.New(errors.ErrCodeConfiguration, "%s: unknown role %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(strings.NewReader(string(data)))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return Fields{}, errors.Wrap(errors.ErrCodeConfiguration, err, "parse %s", path)
		}
	default:
		return Fields{}, errors.New(errors.ErrCodeConfiguration, "unsupported binding config %q (want .toml, .yaml or .yml)", path)
	}

	if err := f.Validate(); err != nil {
		return Fields{}, err
	}
	return f, nil
}
