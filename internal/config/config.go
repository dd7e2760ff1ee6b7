// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shivani7798/JobSpy/internal/report"
	"github.com/shivani7798/JobSpy/internal/search"
)

type Output struct {
	Dir      string   `yaml:"dir"`
	BaseName string   `yaml:"base_name"`
	Title    string   `yaml:"title"`
	Formats  []string `yaml:"formats"`
}

type Style struct {
	SummaryHeaderFill string  `yaml:"summary_header_fill"`
	SiteHeaderFill    string  `yaml:"site_header_fill"`
	HeaderFontColor   string  `yaml:"header_font_color"`
	MinColWidth       float64 `yaml:"min_col_width"`
	MaxColWidth       float64 `yaml:"max_col_width"`
}

type Config struct {
	Search search.Query `yaml:"search"`
	// ResultsFile is the JSON record file the file provider replays.
	ResultsFile string `yaml:"results_file"`
	Output      Output `yaml:"output"`
	Style       Style  `yaml:"style"`
	//Optional Telegram run summary
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "reports"
	}

	if cfg.Output.BaseName == "" {
		cfg.Output.BaseName = "job_report"
	}

	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"xlsx"}
	}

	if cfg.Search.ResultsWanted == 0 {
		cfg.Search.ResultsWanted = 50
	}

	//Validate required fields
	if cfg.ResultsFile == "" {
		log.Fatal("results_file is required")
	}

	for _, f := range cfg.Output.Formats {
		if _, err := report.ParseFormat(f); err != nil {
			log.Fatalf("Invalid output format: %v", err)
		}
	}

	return cfg
}

// Formats converts the configured format names. Load already validated them.
func (c *Config) Formats() []report.Format {
	formats := make([]report.Format, 0, len(c.Output.Formats))
	for _, f := range c.Output.Formats {
		format, _ := report.ParseFormat(f)
		formats = append(formats, format)
	}
	return formats
}

// StyleSpec maps the YAML styling block onto the report style configuration.
// Unset fields fall back to the default style.
func (c *Config) StyleSpec() report.StyleSpec {
	return report.StyleSpec{
		SummaryHeaderFill: c.Style.SummaryHeaderFill,
		SiteHeaderFill:    c.Style.SiteHeaderFill,
		HeaderFontColor:   c.Style.HeaderFontColor,
		MinColWidth:       c.Style.MinColWidth,
		MaxColWidth:       c.Style.MaxColWidth,
	}
}
