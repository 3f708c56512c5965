package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DATA_DIR", "REGISTRIES_INPUT", "REGISTRIES_OUTPUT", "REGISTRARS_INPUT",
		"REGISTRARS_OUTPUT", "MAX_FILE_SIZE", "STRICT_KEYS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.RegistriesInput != "registries.csv" {
		t.Errorf("Data.RegistriesInput = %q, want %q", cfg.Data.RegistriesInput, "registries.csv")
	}
	if cfg.Data.RegistrarsOutput != "registrars.json" {
		t.Errorf("Data.RegistrarsOutput = %q, want %q", cfg.Data.RegistrarsOutput, "registrars.json")
	}
	if cfg.Convert.MaxFileSize != 104857600 {
		t.Errorf("Convert.MaxFileSize = %d, want %d", cfg.Convert.MaxFileSize, 104857600)
	}
	if cfg.Convert.StrictKeys {
		t.Error("Convert.StrictKeys = true, want false")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
	if cfg.Data.Dir == "" || !filepath.IsAbs(cfg.Data.Dir) {
		t.Errorf("Data.Dir = %q, want the absolute executable directory", cfg.Data.Dir)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_DIR", "/srv/domains")
	t.Setenv("REGISTRARS_INPUT", "accredited.csv")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("STRICT_KEYS", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Data.Dir != "/srv/domains" {
		t.Errorf("Data.Dir = %q, want %q", cfg.Data.Dir, "/srv/domains")
	}
	if cfg.Data.RegistrarsInput != "accredited.csv" {
		t.Errorf("Data.RegistrarsInput = %q, want %q", cfg.Data.RegistrarsInput, "accredited.csv")
	}
	if cfg.Convert.MaxFileSize != 2048 {
		t.Errorf("Convert.MaxFileSize = %d, want %d", cfg.Convert.MaxFileSize, 2048)
	}
	if !cfg.Convert.StrictKeys {
		t.Error("Convert.StrictKeys = false, want true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantSub string
	}{
		{"non-numeric size", "MAX_FILE_SIZE", "big", "MAX_FILE_SIZE"},
		{"non-boolean strict", "STRICT_KEYS", "maybe", "STRICT_KEYS"},
		{"zero size", "MAX_FILE_SIZE", "0", "MAX_FILE_SIZE"},
		{"bad level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"bad format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() expected error for %s=%q", tt.env, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error should mention %s: %v", tt.wantSub, err)
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:              "/data",
			RegistriesInput:  "registries.csv",
			RegistriesOutput: "registries.json",
			RegistrarsInput:  "registrars.csv",
			RegistrarsOutput: "registrars.json",
		},
		Convert: ConvertConfig{MaxFileSize: 1024},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_OutputCollidesWithInput(t *testing.T) {
	cfg := validConfig()
	cfg.Data.RegistrarsOutput = "registrars.csv"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error when an output overwrites an input")
	}
	if !strings.Contains(err.Error(), "REGISTRARS_OUTPUT") {
		t.Errorf("error should mention REGISTRARS_OUTPUT: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Data.Dir = ""
	cfg.Data.RegistriesInput = ""
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"DATA_DIR", "REGISTRIES_INPUT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestFiles(t *testing.T) {
	cfg := validConfig()

	tests := []struct {
		dataset string
		wantIn  string
		wantOut string
		wantOK  bool
	}{
		{"registries", "registries.csv", "registries.json", true},
		{"registrars", "registrars.csv", "registrars.json", true},
		{"zones", "", "", false},
	}

	for _, tt := range tests {
		in, out, ok := cfg.Data.Files(tt.dataset)
		if in != tt.wantIn || out != tt.wantOut || ok != tt.wantOK {
			t.Errorf("Files(%q) = %q, %q, %v; want %q, %q, %v",
				tt.dataset, in, out, ok, tt.wantIn, tt.wantOut, tt.wantOK)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{`Dir: "/data"`, "MaxFileSize: 1024", `Level: "info"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %q", str, want)
		}
	}
}

func TestLoadStruct_Required(t *testing.T) {
	type settings struct {
		Token string `env:"DOMAINREG_TEST_TOKEN" required:"true"`
		Retry int    `env:"DOMAINREG_TEST_RETRY" default:"3"`
	}

	t.Setenv("DOMAINREG_TEST_TOKEN", "")
	var s settings
	err := loadStruct(reflect.ValueOf(&s).Elem())
	if err == nil || !strings.Contains(err.Error(), "DOMAINREG_TEST_TOKEN") {
		t.Fatalf("loadStruct() = %v, want missing DOMAINREG_TEST_TOKEN", err)
	}

	t.Setenv("DOMAINREG_TEST_TOKEN", " secret ")
	s = settings{}
	if err := loadStruct(reflect.ValueOf(&s).Elem()); err != nil {
		t.Fatalf("loadStruct() error = %v", err)
	}
	if s.Token != "secret" || s.Retry != 3 {
		t.Errorf("settings = %+v, want {secret 3}", s)
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "WARNING"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with LOG_LEVEL=%q = %v, want nil", level, err)
		}
	}
}
