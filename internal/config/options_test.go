package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/viper"
)

func TestLoadOptions_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	opts := LoadOptions(v)
	if opts.Converter != "" {
		t.Errorf("Expected empty converter, got %s", opts.Converter)
	}
	if opts.Timeout != 0 {
		t.Errorf("Expected no timeout, got %s", opts.Timeout)
	}
	if opts.ResourceDir != "Res" {
		t.Errorf("Expected Res, got %s", opts.ResourceDir)
	}
}

func TestLoadOptions_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(OptConverter, "/usr/local/bin/msvpvf")
	v.Set(OptTimeout, "90s")
	v.Set(OptLanguage, "ru")

	opts := LoadOptions(v)
	if opts.Converter != "/usr/local/bin/msvpvf" {
		t.Errorf("Unexpected converter %s", opts.Converter)
	}
	if opts.Timeout != 90*time.Second {
		t.Errorf("Expected 90s, got %s", opts.Timeout)
	}
	if opts.Language != "ru" {
		t.Errorf("Expected ru, got %s", opts.Language)
	}
}

func TestLoadOptions_Env(t *testing.T) {
	t.Setenv("VEGASCON_CONVERTER", "/env/msvpvf")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts := LoadOptions(v); opts.Converter != "/env/msvpvf" {
		t.Errorf("Expected converter from env, got %s", opts.Converter)
	}
}

func TestLoadOptions_NegativeTimeout(t *testing.T) {
	v := viper.New()
	v.Set(OptTimeout, "-5s")

	if opts := LoadOptions(v); opts.Timeout != 0 {
		t.Errorf("Negative timeout should be clamped to 0, got %s", opts.Timeout)
	}
}

func TestOptions_ConverterPath(t *testing.T) {
	settings := NewSettings(test.NewApp())
	settings.SetConverterPath("/saved/msvpvf")

	if got := (Options{}).ConverterPath(settings); got != "/saved/msvpvf" {
		t.Errorf("Expected saved preference, got %s", got)
	}
	if got := (Options{Converter: "/flag/msvpvf"}).ConverterPath(settings); got != "/flag/msvpvf" {
		t.Errorf("Expected explicit option, got %s", got)
	}
	if got := (Options{}).ConverterPath(nil); got != "" {
		t.Errorf("Expected empty path without settings, got %s", got)
	}
}
