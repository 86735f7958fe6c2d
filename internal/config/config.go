// Package config reads service settings from the environment (.env is autoloaded in main).
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
	StorageRedis    = "redis"
)

type Config struct {
	Port           int
	StorageBackend string

	RecordsTable  string
	CountersTable string
	PaymentsTable string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers  []string
	BookingsTopic string

	SlackWebhookURL string
	SlackTimeout    time.Duration

	CatalogFile      string
	InvoicePrefix    string
	ArchiveLimit     int
	BusinessTimezone string

	MercadoPagoAccessToken string
}

func Load() Config {
	return Config{
		Port:           getenvInt("PORT", 8080),
		StorageBackend: strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageMemory)),

		RecordsTable:  getenvDefault("RECORDS_TABLE", "records"),
		CountersTable: getenvDefault("COUNTERS_TABLE", "counters"),
		PaymentsTable: getenvDefault("PAYMENTS_TABLE", "payments"),

		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		KafkaBrokers:  getenvList("KAFKA_BROKERS"),
		BookingsTopic: getenvDefault("BOOKINGS_TOPIC", "bookings"),

		SlackWebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		SlackTimeout:    time.Duration(getenvInt("SLACK_TIMEOUT_SECONDS", 5)) * time.Second,

		CatalogFile:      os.Getenv("CATALOG_FILE"),
		InvoicePrefix:    getenvDefault("INVOICE_PREFIX", "TFS"),
		ArchiveLimit:     getenvInt("ARCHIVE_LIMIT", 100),
		BusinessTimezone: getenvDefault("BUSINESS_TIMEZONE", "America/Toronto"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

// Location resolves BusinessTimezone, falling back to the process zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		log.Printf("[config] unknown BUSINESS_TIMEZONE=%q, using local time err=%v", c.BusinessTimezone, err)
		return time.Local
	}
	return loc
}

// PaymentGatewayMockEnabled reports whether payments skip the real provider.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
