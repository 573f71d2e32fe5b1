package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        int
	Environment string

	DatabaseURL string
	CacheURL    string

	// Raw service-account JSON for the Sheets/Drive clients.
	GoogleCredentials string

	SpreadsheetID string
	SheetPolicies string
	SheetPlans    string
	SheetPayments string
	SheetDrafts   string
	// Numeric gid of the drafts sheet, needed for row deletion. Resolved
	// from the spreadsheet metadata at startup when left at -1.
	DraftSheetGID int64

	DriveFolderID string

	// Comma-separated origin allow-list for CORS.
	AllowedOrigins string

	JWTSecret         string
	SessionTTLMinutes int
}

func InitConfig() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 3001)
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SHEET_NAME_POLICIES", "Pólizas")
	viper.SetDefault("SHEET_NAME_PLANS", "Cigna Complementario")
	viper.SetDefault("SHEET_NAME_PAYMENTS", "Pagos")
	viper.SetDefault("SHEET_NAME_DRAFTS", "Borrador")
	viper.SetDefault("DRAFT_SHEET_GID", -1)
	viper.SetDefault("SESSION_TTL_MINUTES", 480)

	config := Config{
		Port:              viper.GetInt("PORT"),
		Environment:       viper.GetString("ENVIRONMENT"),
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		CacheURL:          viper.GetString("CACHE_URL"),
		GoogleCredentials: googleCredentials(),
		SpreadsheetID:     viper.GetString("SPREADSHEET_ID"),
		SheetPolicies:     viper.GetString("SHEET_NAME_POLICIES"),
		SheetPlans:        viper.GetString("SHEET_NAME_PLANS"),
		SheetPayments:     viper.GetString("SHEET_NAME_PAYMENTS"),
		SheetDrafts:       viper.GetString("SHEET_NAME_DRAFTS"),
		DraftSheetGID:     viper.GetInt64("DRAFT_SHEET_GID"),
		DriveFolderID:     viper.GetString("GOOGLE_DRIVE_FOLDER_ID"),
		AllowedOrigins:    viper.GetString("ALLOWED_ORIGINS"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		SessionTTLMinutes: viper.GetInt("SESSION_TTL_MINUTES"),
	}

	return config, nil
}

// googleCredentials returns the first non-empty credentials payload among
// the env names the deployment platforms have used over time.
func googleCredentials() string {
	for _, key := range []string{
		"GOOGLE_CREDENTIALS",
		"GOOGLE_APPLICATION_CREDENTIALS",
		"GOOGLE_SA_CREDENTIALS",
	} {
		if value := strings.TrimSpace(viper.GetString(key)); value != "" {
			return value
		}
	}
	return ""
}

// Origins splits the configured allow-list into individual origins.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
