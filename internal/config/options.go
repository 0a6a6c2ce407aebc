package config

import (
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. VEGASCON_CONVERTER
const EnvPrefix = "VEGASCON"

// Viper keys
const (
	OptConverter = "converter"
	OptTimeout   = "timeout"
	OptResources = "resources"
	OptLanguage  = "language"
)

// Options are the runtime options shared by the GUI and the CLI. They come
// from flags, VEGASCON_* environment variables and the config file.
type Options struct {
	Converter   string
	Timeout     time.Duration
	ResourceDir string
	Language    string
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(OptConverter, "")
	v.SetDefault(OptTimeout, time.Duration(0))
	v.SetDefault(OptResources, "Res")
	v.SetDefault(OptLanguage, "")
}

// LoadOptions reads Options from v
func LoadOptions(v *viper.Viper) Options {
	timeout := v.GetDuration(OptTimeout)
	if timeout < 0 {
		timeout = 0
	}
	return Options{
		Converter:   v.GetString(OptConverter),
		Timeout:     timeout,
		ResourceDir: v.GetString(OptResources),
		Language:    v.GetString(OptLanguage),
	}
}

// ConverterPath picks the converter: an explicit option beats the saved
// preference
func (o Options) ConverterPath(s *Settings) string {
	if o.Converter != "" || s == nil {
		return o.Converter
	}
	return s.GetConverterPath()
}
