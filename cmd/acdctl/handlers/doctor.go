package handlers

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/acdlab/acdctl/internal/config"
	"github.com/acdlab/acdctl/internal/util/prerequisites"
)

// DoctorOptions configures the doctor handler.
type DoctorOptions struct {
	ConfigPath string
}

// Doctor checks that everything the bootstrap needs is in place:
// required client tools, the compose file, and the database descriptor.
func Doctor(opts DoctorOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	results := prerequisites.Check(prerequisites.DefaultTools())
	printToolResults(results)

	fileChecks := doctorFileChecks(cfg)
	printFileChecks(fileChecks)

	if err := results.Error(); err != nil {
		return err
	}
	for _, check := range fileChecks {
		if !check.OK && check.Required {
			return fmt.Errorf("missing required file: %s", check.Path)
		}
	}
	return nil
}

// fileCheck is the result of checking one configured file.
type fileCheck struct {
	Label    string
	Path     string
	OK       bool
	Required bool
	Note     string
}

// doctorFileChecks inspects the files the bootstrap will use. The
// certificate bundle is optional: a missing bundle is generated by the
// certificate phase.
func doctorFileChecks(cfg *config.Config) []fileCheck {
	checks := []fileCheck{
		{Label: "compose file", Path: cfg.ComposeFile, Required: true},
		{Label: "database descriptor", Path: cfg.DatabaseFile, Required: true},
		{Label: "certificate bundle", Path: cfg.Certificate.BundlePath, Note: "will be generated"},
	}
	for i := range checks {
		_, err := os.Stat(checks[i].Path)
		checks[i].OK = err == nil
	}
	return checks
}

func printToolResults(results *prerequisites.CheckResults) {
	fmt.Println("Client tools:")
	for _, r := range results.Results {
		if r.Found {
			fmt.Printf("  %s %s (%s)\n", color.GreenString("✓"), r.Tool.Name, r.Path)
		} else if r.Tool.Required {
			fmt.Printf("  %s %s — %s\n", color.RedString("✗"), r.Tool.Name, r.Tool.Description)
		} else {
			fmt.Printf("  %s %s (optional)\n", color.YellowString("-"), r.Tool.Name)
		}
	}
}

func printFileChecks(checks []fileCheck) {
	fmt.Println("Files:")
	for _, check := range checks {
		switch {
		case check.OK:
			fmt.Printf("  %s %s: %s\n", color.GreenString("✓"), check.Label, check.Path)
		case check.Required:
			fmt.Printf("  %s %s: %s (missing)\n", color.RedString("✗"), check.Label, check.Path)
		default:
			fmt.Printf("  %s %s: %s (%s)\n", color.YellowString("-"), check.Label, check.Path, check.Note)
		}
	}
}
