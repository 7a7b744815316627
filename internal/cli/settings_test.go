package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/core/log"
	"github.com/msto63/hlog/foundation/template"
)

// isolate keeps discovery away from the developer's own config files and
// environment.
func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HLOG_LOGGER_NAME", "")
	t.Setenv("HLOG_LOGGER_UTC", "")
	t.Setenv("HLOG_TEMPLATE_MARKER", "")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir() restore error = %v", err)
		}
	})
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	isolate(t)

	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}

	if s.Name != log.DefaultName {
		t.Errorf("Name = %q, want %q", s.Name, log.DefaultName)
	}
	if s.UTC {
		t.Error("UTC = true, want false")
	}
	if s.Marker != template.DefaultMarker {
		t.Errorf("Marker = %q, want %q", s.Marker, template.DefaultMarker)
	}
	if s.Source != "" {
		t.Errorf("Source = %q, want empty", s.Source)
	}
}

func TestLoadSettings_Files(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "hlog.toml",
			content: `[logger]
name = "APP"
utc = true

[template]
marker = "%"
`,
		},
		{
			name: "yaml",
			file: "hlog.yaml",
			content: `logger:
  name: APP
  utc: true
template:
  marker: "%"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, tt.file, tt.content)

			s, err := LoadSettings(path)
			if err != nil {
				t.Fatalf("LoadSettings() error = %v", err)
			}
			if s.Name != "APP" || !s.UTC || s.Marker != '%' {
				t.Errorf("LoadSettings() = %+v, want name APP, utc true, marker %%", s)
			}
			if s.Source != path {
				t.Errorf("Source = %q, want %q", s.Source, path)
			}
		})
	}
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "hlog.toml", "[logger]\nutc = true\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Name != log.DefaultName {
		t.Errorf("Name = %q, want %q", s.Name, log.DefaultName)
	}
	if s.Marker != template.DefaultMarker {
		t.Errorf("Marker = %q, want %q", s.Marker, template.DefaultMarker)
	}
}

func TestLoadSettings_Discovered(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("hlog.toml", []byte("[logger]\nname = \"FOUND\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Name != "FOUND" {
		t.Errorf("Name = %q, want %q", s.Name, "FOUND")
	}
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "hlog.toml", "[logger]\nname = \"FILE\"\n")
	t.Setenv("HLOG_LOGGER_NAME", "ENV")
	t.Setenv("HLOG_TEMPLATE_MARKER", "#")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Name != "ENV" {
		t.Errorf("Name = %q, want %q", s.Name, "ENV")
	}
	if s.Marker != '#' {
		t.Errorf("Marker = %q, want %q", s.Marker, '#')
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode hlogerror.Code
	}{
		{"marker too long", "hlog.toml", "[template]\nmarker = \"--\"\n", hlogerror.CodeInvalidConfig},
		{"empty marker", "hlog.toml", "[template]\nmarker = \"\"\n", hlogerror.CodeInvalidConfig},
		{"broken toml", "hlog.toml", "[logger\nname = 1\n", hlogerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := writeConfig(t, tt.file, tt.content)

			_, err := LoadSettings(path)
			if err == nil {
				t.Fatal("LoadSettings() expected error")
			}
			if !hlogerror.HasCode(err, tt.wantCode) {
				t.Errorf("LoadSettings() code = %v, want %v", hlogerror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	isolate(t)

	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	if !hlogerror.HasCode(err, hlogerror.CodeNotFound) {
		t.Errorf("LoadSettings() code = %v, want %v", hlogerror.GetCode(err), hlogerror.CodeNotFound)
	}
}

func TestSettingsNewLogger(t *testing.T) {
	var buf bytes.Buffer
	s := Settings{Name: "APP", UTC: true, Marker: '%'}

	logger, err := s.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if err := logger.Info("%i items", 3); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	line := buf.String()
	if !strings.Contains(line, "  APP INFO]  ---  3 items\n") {
		t.Errorf("Info() wrote %q", line)
	}
}

func TestSettingsNewLogger_TypeCodeMarker(t *testing.T) {
	_, err := Settings{Name: "APP", Marker: 'i'}.NewLogger(&bytes.Buffer{})
	if !hlogerror.HasCode(err, hlogerror.CodeInvalidConfig) {
		t.Errorf("NewLogger() code = %v, want %v", hlogerror.GetCode(err), hlogerror.CodeInvalidConfig)
	}
}
