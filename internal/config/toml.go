package config

import (
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// tomlParser adapts go-toml to koanf's Parser interface.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	normalize(out)
	return out, nil
}

func (tomlParser) Marshal(m map[string]any) ([]byte, error) {
	return toml.Marshal(m)
}

// normalize rewrites TOML-native values the flat config keys expect as
// strings. A bare duration such as `timeout = 10` is read as seconds.
func normalize(m map[string]any) {
	for key, v := range m {
		switch val := v.(type) {
		case map[string]any:
			normalize(val)
		case int64:
			if key == "timeout" || key == "poll_interval" {
				m[key] = (time.Duration(val) * time.Second).String()
			}
		}
	}
}
