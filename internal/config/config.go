package config

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/lapse-browser/internal/app"
	"github.com/atomicstack/lapse-browser/internal/archive"
	"github.com/atomicstack/lapse-browser/internal/listview"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDir         = "LAPSE_BROWSER_DIR"
	envPageSize    = "LAPSE_BROWSER_PAGE_SIZE"
	envPagerWindow = "LAPSE_BROWSER_PAGER_WINDOW"
	envSort        = "LAPSE_BROWSER_SORT"
	envInterval    = "LAPSE_BROWSER_INTERVAL"
	envWidth       = "LAPSE_BROWSER_WIDTH"
	envHeight      = "LAPSE_BROWSER_HEIGHT"
	envShowFooter  = "LAPSE_BROWSER_FOOTER"
	envSelectNew   = "LAPSE_BROWSER_SELECT_NEW"
	envVerbose     = "LAPSE_BROWSER_VERBOSE"
	envTrace       = "LAPSE_BROWSER_TRACE"
	envLogFile     = "LAPSE_BROWSER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("lapse-browser", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dir := fs.String("dir", envOrDefault(env, envDir, "."), "archive directory to browse")
	pageSize := fs.Int("page-size", envOrInt(env, envPageSize, listview.DefaultPageSize), "rows per page")
	pagerWindow := fs.Int("pager-window", envOrInt(env, envPagerWindow, listview.DefaultPagerWindow), "number of slots in the page selector")
	sortExpr := fs.String("sort", envOrDefault(env, envSort, archive.ColumnName), "initial sort as column or column:asc|desc")
	interval := fs.Duration("interval", envOrDuration(env, envInterval, 2*time.Second), "archive rescan interval")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	selectNew := fs.Bool("select-new", envOrBool(env, envSelectNew, false), "select files that appear while browsing")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	sortColumn, ascending, err := ParseSort(*sortExpr)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Dir:           *dir,
			PageSize:      *pageSize,
			PagerWindow:   *pagerWindow,
			SortColumn:    sortColumn,
			SortAscending: ascending,
			Interval:      *interval,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			SelectNew:     *selectNew,
			Verbose:       *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dir":         *dir,
			"pageSize":    strconv.Itoa(*pageSize),
			"pagerWindow": strconv.Itoa(*pagerWindow),
			"sort":        *sortExpr,
			"interval":    interval.String(),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"selectNew":   strconv.FormatBool(*selectNew),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// ParseSort splits "column[:asc|desc]". The direction defaults to ascending.
func ParseSort(expr string) (column string, ascending bool, err error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return "", false, fmt.Errorf("empty sort expression")
	}
	parts := strings.Split(trimmed, ":")
	if len(parts) > 2 {
		return "", false, fmt.Errorf("invalid sort %q: too many colons", expr)
	}
	column = strings.TrimSpace(parts[0])
	if column == "" {
		return "", false, fmt.Errorf("invalid sort %q: missing column", expr)
	}
	if len(parts) == 1 {
		return column, true, nil
	}
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "asc":
		return column, true, nil
	case "desc":
		return column, false, nil
	}
	return "", false, fmt.Errorf("invalid sort order in %q (must be asc or desc)", expr)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration can drive the browser.
func Validate(cfg Config) error {
	if cfg.App.PageSize < 1 {
		return fmt.Errorf("page-size must be >= 1 (got %d)", cfg.App.PageSize)
	}
	if cfg.App.PagerWindow < listview.MinPagerWindow {
		return fmt.Errorf("pager-window must be >= %d (got %d)", listview.MinPagerWindow, cfg.App.PagerWindow)
	}
	if cfg.App.Interval <= 0 {
		return fmt.Errorf("interval must be positive (got %s)", cfg.App.Interval)
	}
	columns := archive.ColumnIDs()
	for _, id := range columns {
		if id == cfg.App.SortColumn {
			return nil
		}
	}
	if suggestion := closestColumn(cfg.App.SortColumn, columns); suggestion != "" {
		return fmt.Errorf("unknown sort column %q (did you mean %q?)", cfg.App.SortColumn, suggestion)
	}
	return fmt.Errorf("unknown sort column %q (valid: %s)", cfg.App.SortColumn, strings.Join(columns, ", "))
}

func closestColumn(query string, columns []string) string {
	ranks := fuzzy.RankFindNormalizedFold(query, columns)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
