package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath         = "."
	defaultReceiptWidth = 42
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Business identifies the counter on receipts.
	Business BusinessConfig `json:"business" yaml:"business"`

	// Storage configures the snapshot persistence collaborator.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Printer configures the print bridge and its spool fallback.
	Printer *PrinterConfig `json:"printer" yaml:"printer"`

	// Pix configures the PIX payment block on receipts.
	Pix *PixConfig `json:"pix" yaml:"pix"`

	// QRCode configures QR generation for the PIX block.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Catalog optionally replaces the built-in menu.
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`
}

// CatalogConfig overrides the compiled-in menu. When present, it replaces the
// defaults wholesale; there is no per-entry merge.
type CatalogConfig struct {
	Categories []CategoryConfig `json:"categories" yaml:"categories"`
	Products   []ProductConfig  `json:"products" yaml:"products"`
}

// CategoryConfig is one menu category entry.
type CategoryConfig struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// ProductConfig is one menu product entry. Price is in reais.
type ProductConfig struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	CategoryID  string   `json:"categoryId" yaml:"categoryId"`
	Description string   `json:"description" yaml:"description"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	MaxSides    int      `json:"maxSides" yaml:"maxSides"`
}

// BusinessConfig is the header block printed on every receipt.
type BusinessConfig struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// StorageConfig locates the JSON snapshot file. An empty path keeps the
// state in memory only (used by tests).
type StorageConfig struct {
	SnapshotPath string `json:"snapshotPath" yaml:"snapshotPath"`
}

// PrinterConfig defines the printing collaborator. Endpoint is the HTTP
// print bridge; SpoolDir receives rendered receipts when the bridge is
// unreachable.
type PrinterConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Endpoint       string        `json:"endpoint" yaml:"endpoint"`
	SpoolDir       string        `json:"spoolDir" yaml:"spoolDir"`
	ReceiptWidth   int           `json:"receiptWidth" yaml:"receiptWidth"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// PixConfig holds the data embedded in the PIX payment payload.
type PixConfig struct {
	Key          string `json:"key" yaml:"key"`
	MerchantName string `json:"merchantName" yaml:"merchantName"`
	City         string `json:"city" yaml:"city"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf and overlays environment
// variables on top, aligning env segments with the YAML key casing.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PRINTER_SPOOLDIR -> printer.spoolDir (not printer.spooldir)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Printer != nil && cfg.Printer.ReceiptWidth == 0 {
		cfg.Printer.ReceiptWidth = defaultReceiptWidth
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
