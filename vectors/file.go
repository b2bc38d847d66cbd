package vectors

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const vectorsKey = "vectors"

// Load reads vectors from a YAML, JSON or TOML file, chosen by extension.
func Load(path string) ([]Vector, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read vectors %s", path)
	}

	var vectors []Vector
	if err := v.UnmarshalKey(vectorsKey, &vectors); err != nil {
		return nil, errors.Wrapf(err, "decode vectors %s", path)
	}
	log.WithField("file", path).WithField("count", len(vectors)).Debugln("loaded vectors")
	return vectors, nil
}

// Save writes vectors to path in the format implied by its extension.
func Save(path string, vectors []Vector) error {
	v := viper.New()
	v.Set(vectorsKey, tables(vectors))
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "write vectors %s", path)
	}
	return nil
}

// tables flattens vectors into plain maps. The TOML encoder only accepts
// maps and scalars.
func tables(vectors []Vector) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(vectors))
	for _, vec := range vectors {
		ops := make([]map[string]interface{}, 0, len(vec.Ops))
		for _, op := range vec.Ops {
			m := map[string]interface{}{
				"kind":  op.Kind,
				"label": op.Label,
			}
			if op.Data != "" {
				m["data"] = op.Data
			}
			if op.Fill != 0 {
				m["fill"] = op.Fill
			}
			if op.Length != 0 {
				m["length"] = op.Length
			}
			if op.Expect != "" {
				m["expect"] = op.Expect
			}
			ops = append(ops, m)
		}
		out = append(out, map[string]interface{}{
			"name":  vec.Name,
			"label": vec.Label,
			"ops":   ops,
		})
	}
	return out
}
