package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prestactl/prestactl/config"
	"github.com/prestactl/prestactl/filter"
	"github.com/prestactl/prestactl/prestashop"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *prestashop.Client

	// Command flags
	filterExpr string
	preset     string
	sortAttr   string
	sortDesc   bool
	queryPairs []string
	language   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "prestactl",
	Short: "A tool to browse a PrestaShop catalog over the webservice API",
	Long: `prestactl is a CLI tool that lists and inspects products, combinations,
images, stock and related resources of a PrestaShop shop through its
webservice API, with expression filters to narrow the results.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "ISO code of the language to browse in")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the webservice client
func initializeApp(cmd *cobra.Command, args []string) error {
	// version and update work without a shop configured
	switch cmd.Name() {
	case "version", "update":
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create webservice client
	client, err = prestashop.New(cfg.Webservice.URL, cfg.Webservice.Key, logger,
		prestashop.WithRoot(cfg.Webservice.Root),
		prestashop.WithTimeout(cfg.Fetch.Timeout),
		prestashop.WithUserAgent(cfg.Fetch.UserAgent),
		prestashop.WithLanguages(cfg.Language.Map),
		prestashop.WithLanguage(cfg.Language.Default),
	)
	if err != nil {
		return fmt.Errorf("failed to create webservice client: %w", err)
	}

	// Override the active language from the command line if specified
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return fmt.Errorf("failed to switch language: %w", err)
		}
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List items of a resource",
	Long: `List the items of a webservice resource, e.g. products or categories.
An expression filter narrows the result client-side; query parameters are
passed through to the webservice.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().StringVarP(&sortAttr, "sort", "s", "", "sort by attribute")
	listCmd.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	listCmd.Flags().StringArrayVarP(&queryPairs, "query", "q", nil, "query parameter key=value (repeatable)")
}

func runList(cmd *cobra.Command, args []string) error {
	resource, err := resolveResource(args[0])
	if err != nil {
		return err
	}

	models, err := resource.List(context.Background(), parseQueryPairs(queryPairs))
	if err != nil {
		return err
	}

	if len(models) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	fmt.Printf("\nFound %d %s:\n", len(models), resource.Descriptor().APIName)
	fmt.Println(strings.Repeat("-", 80))

	for _, m := range models {
		fmt.Printf("• #%d", m.ID())
		if name := m.Name(); name != "" {
			fmt.Printf("  %s", truncate(name, 60))
		}
		fmt.Println()
	}

	return nil
}

// firstCmd represents the first command
var firstCmd = &cobra.Command{
	Use:   "first <resource>",
	Short: "Show the first item of a resource",
	Long:  `Fetch a resource listing and print the attributes of its first item.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFirst,
}

func init() {
	firstCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	firstCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	firstCmd.Flags().StringVarP(&sortAttr, "sort", "s", "", "sort by attribute")
	firstCmd.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	firstCmd.Flags().StringArrayVarP(&queryPairs, "query", "q", nil, "query parameter key=value (repeatable)")
}

func runFirst(cmd *cobra.Command, args []string) error {
	resource, err := resolveResource(args[0])
	if err != nil {
		return err
	}

	m, err := resource.First(context.Background(), parseQueryPairs(queryPairs))
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Println("No items found.")
		return nil
	}

	printModel(m)
	return nil
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Show one item of a resource",
	Long:  `Fetch a single item by identifier and print its attributes.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	resource, err := resolveResource(args[0])
	if err != nil {
		return err
	}

	m, err := resource.Get(context.Background(), args[1])
	if err != nil {
		return err
	}
	if m.Empty() {
		fmt.Println("No attributes returned.")
		return nil
	}

	printModel(m)
	return nil
}

// resourcesCmd represents the resources command
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the registered resource kinds",
	RunE:  runResources,
}

func runResources(cmd *cobra.Command, args []string) error {
	fmt.Println("Registered resources:")
	for _, d := range prestashop.Kinds() {
		fmt.Printf("  • %s (node: %s, root: %s)\n", d.APIName, d.NodeType, d.Root)
	}
	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the shop",
	Long:  `Test the connection to the shop webservice and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to shop at %s...\n", cfg.Webservice.URL)

	if err := client.TestConnection(context.Background()); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	fmt.Printf("\nShop configuration:\n")
	fmt.Printf("- Webservice root: %s\n", cfg.Webservice.Root)
	fmt.Printf("- Active language: %s (id %d)\n", client.Language(), client.LanguageID())

	languages := client.Languages()
	fmt.Printf("- Configured languages:\n")
	for _, iso := range sortedKeys(languages) {
		fmt.Printf("  • %s (id %d)\n", iso, languages[iso])
	}

	fmt.Printf("- Registered resources: %d\n", len(prestashop.Kinds()))

	return nil
}

// resolveResource builds the Resource for a CLI argument, applying the
// filter and sort flags.
func resolveResource(name string) (*prestashop.Resource, error) {
	var opts []prestashop.ResourceOption

	expression, err := getFilterExpression()
	if err != nil {
		return nil, err
	}
	if expression != "" {
		compiled, err := filter.Compile(expression)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		opts = append(opts, prestashop.WithFilter(compiled.Predicate()))
	}

	if sortAttr != "" {
		less := prestashop.AscendingBy(sortAttr)
		if sortDesc {
			less = prestashop.DescendingBy(sortAttr)
		}
		opts = append(opts, prestashop.WithSort(less))
	}

	// Accept both naming styles: "StockAvailables" and "stock_availables"
	return client.Resource(prestashop.Snake(name), opts...)
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	// An unfiltered listing is fine; "default" is just a reserved preset
	return cfg.Filter["default"], nil
}

// parseQueryPairs converts repeated key=value flags into a query map
func parseQueryPairs(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	query := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			continue
		}
		query[key] = value
	}
	return query
}

// printModel prints one model's attributes, one per line
func printModel(m *prestashop.Model) {
	keys := m.Keys()

	width := 0
	for _, key := range keys {
		if len(key) > width {
			width = len(key)
		}
	}

	for _, key := range keys {
		value := strings.ReplaceAll(m.Attr(key), "\n", " ")
		fmt.Printf("%-*s  %s\n", width, key, truncate(value, 100))
	}
}

// truncate shortens a value for single-line display
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
