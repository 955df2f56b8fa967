package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jschuetter/rpidisplay/internal/config"
	"github.com/jschuetter/rpidisplay/internal/logging"
	"github.com/jschuetter/rpidisplay/internal/matrixcfg"
	"github.com/jschuetter/rpidisplay/internal/ui"
)

// Command flags
var (
	outputFormat string
	forceInit    bool
	profileNick  string
	profileNotes string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	// Add subcommands directly to root
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
}

// resolveEnvFile picks the settings file to operate on: an explicit argument
// wins, otherwise the registry's default profile is used. The returned
// profile name is "" when the file came from the command line.
func resolveEnvFile(args []string) (string, string, error) {
	if len(args) > 0 {
		return args[0], "", nil
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return "", "", fmt.Errorf("failed to load profile registry: %w", err)
	}

	name := ""
	if registry.Preferences != nil {
		name = registry.Preferences.DefaultProfile
	}
	if name == "" {
		return "", "", fmt.Errorf("no settings file given and no default profile set. Pass a file path or run 'matrix-cfg profile use <name>'")
	}

	profile := registry.DefaultProfile()
	if profile == nil {
		return "", "", fmt.Errorf("default profile %q not found in registry", name)
	}
	if profile.EnvFile == "" {
		return "", "", fmt.Errorf("profile %q has no settings file recorded", name)
	}

	return profile.EnvFile, name, nil
}

// printUnknownKeyWarnings surfaces unrecognized keys without failing the load
func printUnknownKeyWarnings(file *matrixcfg.File) {
	if len(file.Unknown) == 0 {
		return
	}
	details := make(map[string]string, len(file.Unknown))
	for _, unknown := range file.Unknown {
		details[fmt.Sprintf("Line %d", unknown.Line)] = fmt.Sprintf("unknown key %q ignored", unknown.Key)
	}
	ui.PrintWarning("Unknown settings ignored", details)
	fmt.Println()
}

// validateCmd checks a settings file against the driver's accepted ranges
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a panel settings file",
	Long: `Validate every value in a panel settings file.

Each setting is checked against the ranges the rgbmatrix driver accepts:
panel geometry, multiplexing scheme, PWM tuning, color sequence, and GPIO
options. All problems are reported at once, not just the first.

When no file is given, the default profile's settings file is validated
and the result is recorded in the profile registry.`,
	Example: `  # Validate the default profile
  matrix-cfg validate

  # Validate a specific file
  matrix-cfg validate panel.env`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	_ = logging.InitializeFromEnv()

	path, profileName, err := resolveEnvFile(args)
	if err != nil {
		return err
	}

	file, err := matrixcfg.Load(path)
	if err != nil {
		logging.LogConfigLoad(path, 0, err)
		markProfileValidated(profileName, false)
		ui.PrintFailure("Settings file invalid", err, []string{
			"Settings files are flat KEY=VALUE lines",
			"Lines starting with # are comments",
			"Run 'matrix-cfg init' to generate a fresh template",
		})
		return fmt.Errorf("validation failed")
	}
	logging.LogConfigLoad(path, len(file.Unknown), nil)

	printUnknownKeyWarnings(file)

	errs := file.Config.Validate()
	if len(errs) > 0 {
		markProfileValidated(profileName, false)

		fmt.Printf("%d problem(s) found in %s:\n\n", len(errs), path)
		for _, e := range errs {
			fmt.Printf("  ✗ %v\n", e)
		}
		fmt.Println()
		return fmt.Errorf("validation failed with %d problem(s)", len(errs))
	}

	markProfileValidated(profileName, true)

	details := map[string]string{
		"File":    path,
		"Panel":   file.Config.Summary(),
		"Display": fmt.Sprintf("%dx%d pixels", file.Config.DisplayWidth(), file.Config.DisplayHeight()),
	}
	if profileName != "" {
		details["Profile"] = profileName
	}
	ui.PrintSuccess("Settings file valid", details)

	return nil
}

// markProfileValidated records the validation outcome in the registry.
// A best-effort update: registry problems don't fail the validate command.
func markProfileValidated(profileName string, valid bool) {
	if profileName == "" {
		return
	}
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("could not load registry to record validation")
		return
	}
	registry.MarkValidated(profileName, valid)
	if err := registry.Save(); err != nil {
		logging.Warn("could not save registry after validation")
	}
}

// showCmd displays a settings file in a readable form
var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show panel settings",
	Long: `Display the settings from a panel settings file.

Shows the panel geometry, wiring, and tuning values with defaults filled
in for keys the file omits. Use --format for compact or JSON output.`,
	Example: `  # Show the default profile's settings
  matrix-cfg show

  # Show a specific file
  matrix-cfg show panel.env

  # Compact one-line summary
  matrix-cfg show panel.env --format compact

  # JSON output for scripting
  matrix-cfg show panel.env --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	_ = logging.InitializeFromEnv()

	path, _, err := resolveEnvFile(args)
	if err != nil {
		return err
	}

	file, err := matrixcfg.Load(path)
	if err != nil {
		logging.LogConfigLoad(path, 0, err)
		return fmt.Errorf("failed to load settings: %w", err)
	}
	logging.LogConfigLoad(path, len(file.Unknown), nil)

	printUnknownKeyWarnings(file)

	switch outputFormat {
	case "compact":
		fmt.Println(file.Config.FormatCompact())
	case "json":
		out, err := file.Config.FormatJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(out)
	case "detailed":
		fallthrough
	default:
		return ui.RenderOnce(file.Config.FormatDetailed() + "\n")
	}

	return nil
}

// flagsCmd renders the settings as rgbmatrix driver command-line flags
var flagsCmd = &cobra.Command{
	Use:   "flags [file]",
	Short: "Render settings as driver command-line flags",
	Long: `Render a settings file as the --led-* command-line flags the
rgbmatrix driver utilities accept.

The output is a single shell-ready line, so it can be spliced into a
demo or utility invocation directly.`,
	Example: `  # Print the flags for the default profile
  matrix-cfg flags

  # Use in a shell command
  ./demo $(matrix-cfg flags panel.env) -D0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFlags,
}

func runFlags(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	_ = logging.InitializeFromEnv()

	path, _, err := resolveEnvFile(args)
	if err != nil {
		return err
	}

	file, err := matrixcfg.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Flags output is meant for command substitution, so warnings would
	// corrupt it. Refuse instead when the file has problems.
	if errs := file.Config.Validate(); len(errs) > 0 {
		return fmt.Errorf("settings file has %d problem(s); run 'matrix-cfg validate %s' first", len(errs), path)
	}

	fmt.Println(file.Config.DriverFlagsString())
	return nil
}

// initCmd writes a fresh settings file with default values
var initCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write a settings file with default values",
	Long: `Write a new panel settings file populated with default values
(64x64 panel on the Adafruit HAT with the PWM modification).

Every key is present and commented, so the file doubles as documentation
of what can be tuned. Existing files are not overwritten unless --force
is given.`,
	Example: `  # Create a new settings file
  matrix-cfg init panel.env

  # Overwrite an existing file
  matrix-cfg init panel.env --force`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite the file if it exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	_ = logging.InitializeFromEnv()

	path := args[0]
	if err := matrixcfg.Write(path, matrixcfg.Default(), forceInit); err != nil {
		return err
	}

	fmt.Printf("Wrote default settings to %s\n", path)
	fmt.Println("Edit the file to match your panel, then run 'matrix-cfg validate' to check it.")
	return nil
}

// profileCmd groups the profile management subcommands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named panel profiles",
	Long: `Manage named panel profiles in the user registry.

A profile names a settings file on disk, so commands can be run without
repeating the path. One profile can be marked as the default; it is used
whenever a command is run without a file argument.`,
	Example: `  # Register a profile and make it the default
  matrix-cfg profile add bedroom panel.env --nickname "Bedroom clock"
  matrix-cfg profile use bedroom

  # List registered profiles
  matrix-cfg profile list`,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileUseCmd)
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered profiles",
	RunE:  runProfileList,
}

func runProfileList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profile registry: %w", err)
	}

	if len(registry.Profiles) == 0 {
		fmt.Println("No profiles registered.")
		fmt.Println("Use 'matrix-cfg profile add <name> <file>' to register one.")
		return nil
	}

	defaultName := ""
	if registry.Preferences != nil {
		defaultName = registry.Preferences.DefaultProfile
	}

	for name, profile := range registry.Profiles {
		marker := " "
		if name == defaultName {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
		fmt.Printf("    File:     %s\n", profile.EnvFile)
		if profile.Nickname != "" {
			fmt.Printf("    Nickname: %s\n", profile.Nickname)
		}
		if profile.Notes != "" {
			fmt.Printf("    Notes:    %s\n", profile.Notes)
		}
		if !profile.LastValidated.IsZero() {
			status := "invalid"
			if profile.Valid {
				status = "valid"
			}
			fmt.Printf("    Checked:  %s (%s)\n", profile.LastValidated.Format("2006-01-02 15:04"), status)
		}
		fmt.Println()
	}

	if defaultName != "" {
		fmt.Printf("* = default profile\n")
	}
	return nil
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a settings file as a named profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileAdd,
}

func init() {
	profileAddCmd.Flags().StringVar(&profileNick, "nickname", "", "User-friendly profile name")
	profileAddCmd.Flags().StringVar(&profileNotes, "notes", "", "Free-form notes about the panel")
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name, path := args[0], args[1]
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	// Parse the file up front so broken paths are caught at registration
	if _, err := matrixcfg.Load(path); err != nil {
		return fmt.Errorf("cannot register %s: %w", path, err)
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profile registry: %w", err)
	}

	profile := registry.AddProfile(name, path, profileNick)
	if profileNotes != "" {
		profile.Notes = profileNotes
	}

	// First profile becomes the default automatically
	if len(registry.Profiles) == 1 {
		registry.SetDefaultProfile(name)
	}

	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save profile registry: %w", err)
	}

	fmt.Printf("Registered profile %q for %s\n", name, path)
	if registry.Preferences != nil && registry.Preferences.DefaultProfile == name {
		fmt.Println("This profile is now the default.")
	}
	return nil
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a profile from the registry",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name := args[0]
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profile registry: %w", err)
	}

	if registry.GetProfile(name) == nil {
		return fmt.Errorf("profile %q not found", name)
	}

	registry.RemoveProfile(name)
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save profile registry: %w", err)
	}

	fmt.Printf("Removed profile %q (the settings file itself was not touched)\n", name)
	return nil
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	name := args[0]
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profile registry: %w", err)
	}

	if registry.GetProfile(name) == nil {
		return fmt.Errorf("profile %q not found. Use 'matrix-cfg profile add' first", name)
	}

	registry.SetDefaultProfile(name)
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save profile registry: %w", err)
	}

	fmt.Printf("Default profile is now %q\n", name)
	return nil
}
