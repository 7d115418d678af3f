package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quantmind-br/pxm-manifest/internal/config"
	"github.com/quantmind-br/pxm-manifest/internal/manifest"
	"github.com/quantmind-br/pxm-manifest/internal/output"
	"github.com/quantmind-br/pxm-manifest/internal/sources"
	"github.com/quantmind-br/pxm-manifest/internal/utils"
	"github.com/quantmind-br/pxm-manifest/internal/validate"
	"github.com/quantmind-br/pxm-manifest/pkg/version"
)

func main() {
	if err := executeRoot(newRootCmd(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// executeRoot runs root with args after routing a SOURCES path that
// shadows a subcommand name back to the root command
func executeRoot(root *cobra.Command, args []string) error {
	root.SetArgs(routeSourcesPath(args))
	return root.Execute()
}

// routeSourcesPath rewrites a subcommand token to ./<name> when a regular
// file of that name exists and the arguments do not parse as that
// subcommand, e.g. "version -t user.map ..." with a ./version sources file.
func routeSourcesPath(args []string) []string {
	scratch := newRootCmd()
	sub, rest, err := scratch.Find(args)
	if err != nil || sub == scratch {
		return args
	}

	top := sub
	for top.Parent() != scratch {
		top = top.Parent()
	}
	name := top.Name()

	if info, err := os.Stat(name); err != nil || !info.Mode().IsRegular() {
		return args
	}
	if err := sub.ParseFlags(rest); err == nil {
		if err := sub.ValidateArgs(sub.Flags().Args()); err == nil {
			return args
		}
	}

	for i, arg := range args {
		if arg != name {
			continue
		}
		routed := append([]string{}, args...)
		routed[i] = "." + string(filepath.Separator) + name
		if found, _, err := newRootCmd().Find(routed); err == nil && found.Parent() == nil {
			return routed
		}
	}
	return args
}

// options holds the raw command-line values of one invocation
type options struct {
	cfgFile string
	verbose bool

	tilesets []string
	license  string
	account  string
	product  string
	date     string
	notes    string
	bidx     string
	crs      string
	color    string
	ndv      string
	output   string
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "pxm-manifest [OPTIONS] [SOURCES]",
		Short: "Create a PXM manifest file",
		Long: `Create a PXM manifest file to be used by pxmcli to create a render.

SOURCES is a file listing one s3:// image URI per line, or "-" (the default)
to read the list from standard input. Gzip and zstd compressed lists are
accepted. The manifest is written to --output, or to standard output.

A SOURCES file named like a subcommand (version, config) is read as the
sources list when the other arguments do not fit that subcommand; pass it
as ./version or ./config to be explicit.

Defaults for --license, --account, --product, --notes and --crs can be set
in ~/.pxm/config.yaml or with PXM_DEFAULTS_* environment variables.`,
		Version:       version.Short(),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          o.run,
	}
	cmd.SetVersionTemplate("{{.Name}}, version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is ~/.pxm/config.yaml)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Verbose output")

	flags.StringArrayVarP(&o.tilesets, "tileset", "t", nil, "Mapbox tileset id ({username}.{map}), repeatable  [required]")
	flags.StringVar(&o.license, "license", "", "License and usage restrictions  [required]")
	flags.StringVar(&o.account, "account", "", "Valid mapbox account name  [required]")
	flags.StringVar(&o.product, "product", "", "Product name  [required]")
	flags.StringVar(&o.date, "date", "", "Images date, YYYY or YYYY-MM-DD  [required]")
	flags.StringVar(&o.notes, "notes", "", "Additional notes")
	flags.StringVar(&o.bidx, "bidx", "", "Band index array, R,G,B[,A]")
	flags.StringVar(&o.crs, "crs", "", "Coordinate Reference System, EPSG:NNNN")
	flags.StringVar(&o.color, "color", "", "rio color formula applied to all sources")
	flags.StringVar(&o.ndv, "ndv", "", "nodata value array, three positive ints")
	flags.StringVarP(&o.output, "output", "o", "", "Output file name (default is standard output)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	cfg, v, err := config.LoadWithViper(o.cfgFile)
	if err != nil {
		return err
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: o.verbose,
	})
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("config", used).Msg("Loaded config file")
	}

	o.applyDefaults(cmd.Flags(), cfg.Defaults, log)
	if err := o.checkRequired(cmd.Flags()); err != nil {
		return err
	}

	fields, err := o.validate(cmd.Flags())
	if err != nil {
		return err
	}

	path := sources.Stdin
	if len(args) == 1 {
		path = args[0]
	}
	fields.Sources, err = sources.NewReader(cmd.InOrStdin()).Load(path)
	if err != nil {
		return err
	}
	log.WithPath(path).Debug().Int("count", len(fields.Sources)).Msg("Read sources")

	data, err := manifest.Marshal(manifest.Build(fields))
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	w := output.NewWriter(output.WriterOptions{
		Stdout: cmd.OutOrStdout(),
		Logger: log,
	})
	return w.Write(data, o.output)
}

// applyDefaults fills options left off the command line from config
func (o *options) applyDefaults(flags *pflag.FlagSet, d config.DefaultsConfig, log *utils.Logger) {
	fill := func(name string, dst *string, value string) {
		if !flags.Changed(name) && value != "" {
			*dst = value
			log.Info().Str("option", name).Str("value", value).Msg("Using config default")
		}
	}
	fill("license", &o.license, d.License)
	fill("account", &o.account, d.Account)
	fill("product", &o.product, d.Product)
	fill("notes", &o.notes, d.Notes)
	fill("crs", &o.crs, d.CRS)
}

// checkRequired reports every required option that has no value
func (o *options) checkRequired(flags *pflag.FlagSet) error {
	var missing []string
	if len(o.tilesets) == 0 {
		missing = append(missing, `"tileset"`)
	}
	for _, req := range []struct {
		name  string
		value string
	}{
		{"license", o.license},
		{"account", o.account},
		{"product", o.product},
		{"date", o.date},
	} {
		if !flags.Changed(req.name) && req.value == "" {
			missing = append(missing, fmt.Sprintf("%q", req.name))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	return nil
}

// validate runs every supplied option through its registered check
func (o *options) validate(flags *pflag.FlagSet) (manifest.Fields, error) {
	var f manifest.Fields

	for _, text := range []struct {
		field validate.Field
		raw   string
		dst   *string
	}{
		{validate.FieldLicense, o.license, &f.License},
		{validate.FieldProduct, o.product, &f.Product},
		{validate.FieldNotes, o.notes, &f.Notes},
		{validate.FieldColor, o.color, &f.Color},
	} {
		v, err := check[string](text.field, text.raw)
		if err != nil {
			return f, err
		}
		*text.dst = v
	}

	for _, raw := range o.tilesets {
		ts, err := check[string](validate.FieldTileset, raw)
		if err != nil {
			return f, err
		}
		f.Tilesets = append(f.Tilesets, ts)
	}

	var err error
	if f.Account, err = check[string](validate.FieldAccount, o.account); err != nil {
		return f, err
	}
	if f.Date, err = check[string](validate.FieldDate, o.date); err != nil {
		return f, err
	}
	if flags.Changed("bidx") {
		if f.Bidx, err = check[[]int](validate.FieldBidx, o.bidx); err != nil {
			return f, err
		}
	}
	if flags.Changed("crs") || o.crs != "" {
		if f.CRS, err = check[string](validate.FieldCRS, o.crs); err != nil {
			return f, err
		}
	}
	if flags.Changed("ndv") {
		if f.Nodata, err = check[[]int](validate.FieldNodata, o.ndv); err != nil {
			return f, err
		}
	}
	return f, nil
}

func check[T any](field validate.Field, raw string) (T, error) {
	var zero T
	v, err := validate.Check(field, raw)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("validator for %s returned %T", field, v)
	}
	return typed, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func newConfigCmd() *cobra.Command {
	var force bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pxm-manifest config file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long:  "Writes the default configuration as YAML, to ~/.pxm/config.yaml unless a path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFilePath()
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
