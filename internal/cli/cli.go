package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"item-parser/internal/config"
	"item-parser/internal/filewalker"
	"item-parser/internal/item"
	"item-parser/internal/localization"
	"item-parser/internal/parser"
	"item-parser/internal/worker"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "item-parser",
		Short: "Parse game item clipboard dumps in any client language",
		Long: `Reads the text a game client copies for an item tooltip and resolves it
into a structured item using per-language dictionaries.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(parseDirCmd())
	rootCmd.AddCommand(checkTablesCmd())
	rootCmd.AddCommand(seedTablesCmd())

	return rootCmd
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().String("language", "", "Active language (name or BCP 47 tag); defaults to PARSER_LANGUAGE")
	cmd.Flags().String("game-language", "", "Language of the dump text; defaults to PARSER_GAME_LANGUAGE or --language")
	cmd.Flags().StringSlice("sections", nil, "Restrict parsing to these section kinds (comma separated)")
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse one dump from a file or stdin and print it as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("language")
			gameLang, _ := cmd.Flags().GetString("game-language")
			sections, _ := cmd.Flags().GetStringSlice("sections")

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open dump: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runParse(in, cmd.OutOrStdout(), lang, gameLang, sections)
		},
	}
	addParseFlags(cmd)
	return cmd
}

func parseDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-dir <directory>",
		Short: "Parse every .txt dump under a directory on the worker pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("language")
			gameLang, _ := cmd.Flags().GetString("game-language")
			sections, _ := cmd.Flags().GetStringSlice("sections")
			return runParseDir(args[0], lang, gameLang, sections)
		},
	}
	addParseFlags(cmd)
	return cmd
}

func checkTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-tables",
		Short: "Verify every dictionary entry resolves back to its own id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckTables()
		},
	}
}

func seedTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-tables <postgres|neo4j>",
		Short: "Copy the JSON dictionaries into PostgreSQL or Neo4j",
		Long: `Loads the dictionaries from ASSETS_DIR and replaces the contents of the
chosen store, which can then serve them with TABLE_SOURCE=postgres or neo4j.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{config.SourcePostgres, config.SourceNeo4j},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedTables(args[0])
		},
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// loadConfig loads and validates the configuration and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	configureLogging(cfg.LogLevel)
	return cfg, nil
}

func configureLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		log.Warn().Str("level", level).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// runParse handles the `parse` command.
func runParse(in io.Reader, out io.Writer, lang, gameLang string, sections []string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg, lang, gameLang, sections)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read dump: %w", err)
	}

	resolver, closeSource, err := loadResolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	res := parser.NewService(resolver).Read(string(raw), opts)
	if res.Code != parser.ResultSuccess {
		log.Error().Err(res.Err).Str("result", res.Code.String()).Msg("Could not read item")
		return fmt.Errorf("could not read item: %s", res.Code)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res.Item); err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	return nil
}

// runParseDir handles the `parse-dir` command.
func runParseDir(dir, lang, gameLang string, sections []string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg, lang, gameLang, sections)
	if err != nil {
		return err
	}

	w := filewalker.NewWalker()
	entries, err := w.Walk(dir)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}

	dumps := make([]worker.Dump, 0, len(entries))
	for _, e := range entries {
		raw, err := w.ReadFile(e)
		if err != nil {
			log.Error().Err(err).Str("file", e.Rel).Msg("Skipping unreadable dump")
			continue
		}
		dumps = append(dumps, worker.Dump{Name: e.Rel, Raw: raw})
	}

	resolver, closeSource, err := loadResolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	log.Info().Int("dumps", len(dumps)).Int("workers", cfg.WorkerCount).Msg("Starting batch parse")

	tasks := worker.ParseDumps(ctx, parser.NewService(resolver), dumps, opts, cfg.WorkerCount)
	for _, t := range tasks {
		if t.Result.Code == parser.ResultSuccess {
			it := t.Result.Item
			log.Info().
				Str("file", t.Input.Name).
				Str("rarity", string(it.Rarity)).
				Str("type_id", it.TypeID).
				Str("category", string(it.Category)).
				Msg("Parsed")
			continue
		}
		log.Warn().Err(t.Err).Str("file", t.Input.Name).Str("result", t.Result.Code.String()).Msg("Could not read item")
	}

	s := worker.Summarize(tasks)
	log.Info().
		Int("success", s.Success).
		Int("empty", s.Empty).
		Int("failed", s.Failed).
		Int("cancelled", s.Cancelled).
		Msg("Batch parse complete")

	return ctx.Err()
}

// runCheckTables handles the `check-tables` command.
func runCheckTables() error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolver, closeSource, err := loadResolver(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	collisions := localization.Check(resolver)
	for _, c := range collisions {
		log.Warn().
			Str("language", c.Language.String()).
			Str("domain", c.Domain.String()).
			Str("id", c.ID).
			Str("text", c.Text).
			Str("resolves_to", c.Winner).
			Msg("Display text does not resolve back to its id")
	}

	log.Info().Int("collisions", len(collisions)).Msg("Table check complete")
	return nil
}

// runSeedTables handles the `seed-tables` command.
func runSeedTables(target string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := localization.NewJSONSource(cfg.AssetsDir)
	if err != nil {
		return err
	}
	tables, err := localization.Load(ctx, src)
	if err != nil {
		return err
	}

	var seeder localization.Seeder
	switch target {
	case config.SourcePostgres:
		pool, err := connectPostgres(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()
		seeder = localization.NewPostgresSource(pool)
	case config.SourceNeo4j:
		driver, err := connectNeo4j(ctx, cfg)
		if err != nil {
			return err
		}
		defer driver.Close(ctx)
		seeder = localization.NewGraphSource(driver)
	default:
		return fmt.Errorf("unknown seed target %q (want %s or %s)", target, config.SourcePostgres, config.SourceNeo4j)
	}

	if err := seeder.Seed(ctx, tables); err != nil {
		return fmt.Errorf("seed %s: %w", target, err)
	}

	log.Info().Str("target", target).Int("languages", len(tables.Languages())).Msg("Tables seeded")
	return nil
}

// buildOptions resolves the language flags against the configuration.
func buildOptions(cfg *config.Config, lang, gameLang string, sections []string) (parser.Options, error) {
	if lang == "" {
		lang = cfg.Language
	}
	if gameLang == "" {
		gameLang = cfg.GameLanguage
	}

	var opts parser.Options
	l, err := localization.ParseLanguage(lang)
	if err != nil {
		return opts, err
	}
	opts.Language = l
	opts.GameLanguage = l

	if gameLang != "" {
		if opts.GameLanguage, err = localization.ParseLanguage(gameLang); err != nil {
			return opts, err
		}
	}

	opts.Sections, err = parseSections(sections)
	return opts, err
}

func parseSections(names []string) ([]item.SectionKind, error) {
	if len(names) == 0 {
		return nil, nil
	}

	known := make(map[item.SectionKind]bool)
	for _, k := range parser.MustNewChain(parser.DefaultParsers()...).Kinds() {
		known[k] = true
	}

	var out []item.SectionKind
	for _, n := range names {
		k := item.SectionKind(strings.TrimSpace(n))
		if !known[k] {
			return nil, fmt.Errorf("unknown section %q", n)
		}
		out = append(out, k)
	}
	return out, nil
}

// loadResolver loads the dictionaries from the configured source.
func loadResolver(ctx context.Context, cfg *config.Config) (*localization.Resolver, func(), error) {
	var (
		src     localization.Source
		closeFn = func() {}
	)

	switch cfg.TableSource {
	case config.SourceJSON:
		s, err := localization.NewJSONSource(cfg.AssetsDir)
		if err != nil {
			return nil, nil, err
		}
		src = s
	case config.SourcePostgres:
		pool, err := connectPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		src = localization.NewPostgresSource(pool)
		closeFn = pool.Close
	case config.SourceNeo4j:
		driver, err := connectNeo4j(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		src = localization.NewGraphSource(driver)
		closeFn = func() { driver.Close(context.Background()) }
	default:
		return nil, nil, fmt.Errorf("unknown TABLE_SOURCE %q", cfg.TableSource)
	}

	tables, err := localization.Load(ctx, src)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return localization.NewResolver(tables), closeFn, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

func connectNeo4j(ctx context.Context, cfg *config.Config) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, fmt.Errorf("connect Neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")
	return driver, nil
}
