package config

import (
    "testing"
    "time"

    "github.com/caarlos0/env/v11"
)

func TestParseDefaults(t *testing.T) {
    cfg, err := parse(env.Options{Environment: map[string]string{}})
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if cfg.Port != "8080" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
        t.Fatalf("defaults not applied: %+v", cfg)
    }
    if cfg.Seed {
        t.Fatalf("expected Seed default false")
    }
    if cfg.RecoveryFormula != "base" {
        t.Fatalf("expected base recovery formula, got %q", cfg.RecoveryFormula)
    }
    if !cfg.AggregationEnabled || cfg.AggregationInterval != time.Minute || cfg.AggregationContestTimeout != 10*time.Second {
        t.Fatalf("aggregation defaults not applied: %+v", cfg)
    }
    if len(cfg.KafkaBrokers) != 0 {
        t.Fatalf("expected no kafka brokers, got %v", cfg.KafkaBrokers)
    }
    if cfg.DatabaseMaxOpenConns != 20 || cfg.DatabaseMaxIdleConns != 5 || cfg.DatabaseConnMaxLifetime != 30*time.Minute {
        t.Fatalf("pool defaults not applied: %+v", cfg)
    }
}

func TestParseOverrides(t *testing.T) {
    cfg, err := parse(env.Options{Environment: map[string]string{
        "PORT":                        "9090",
        "DATABASE_URL":                "postgres://example",
        "LOG_LEVEL":                   "debug",
        "SEED":                        "true",
        "OPENAI_API_KEY":              "key",
        "OPENAI_COACH_MODEL":          "model",
        "RECOVERY_FORMULA":            "rhr_penalty",
        "AGGREGATION_INTERVAL":        "5s",
        "AGGREGATION_CONTEST_TIMEOUT": "2s",
        "AGGREGATION_CONCURRENCY":     "0",
        "KAFKA_BROKERS":               "kafka-1:9092,kafka-2:9092",
        "LANGFUSE_BASE_URL":           "http://langfuse:3000",
        "LANGFUSE_PUBLIC_KEY":         "pk",
        "LANGFUSE_SECRET_KEY":         "sk",
    }})
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    if cfg.Port != "9090" || cfg.DatabaseURL != "postgres://example" || cfg.LogLevel != "debug" || !cfg.Seed {
        t.Fatalf("env overrides not applied: %+v", cfg)
    }
    if cfg.OpenAIAPIKey != "key" || cfg.OpenAICoachModel != "model" {
        t.Fatalf("openai env overrides missing: %+v", cfg)
    }
    if cfg.LangfuseBaseURL != "http://langfuse:3000" || cfg.LangfusePublicKey != "pk" || cfg.LangfuseSecretKey != "sk" {
        t.Fatalf("langfuse env overrides missing: %+v", cfg)
    }
    if cfg.RecoveryFormula != "rhr_penalty" {
        t.Fatalf("recovery formula override missing: %q", cfg.RecoveryFormula)
    }
    if cfg.AggregationInterval != 5*time.Second || cfg.AggregationContestTimeout != 2*time.Second {
        t.Fatalf("aggregation overrides missing: %+v", cfg)
    }
    if cfg.AggregationConcurrency != 1 {
        t.Fatalf("expected concurrency floor of 1, got %d", cfg.AggregationConcurrency)
    }
    if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
        t.Fatalf("kafka brokers not split: %v", cfg.KafkaBrokers)
    }
}

func TestParseRejectsBadDuration(t *testing.T) {
    if _, err := parse(env.Options{Environment: map[string]string{"AGGREGATION_INTERVAL": "soon"}}); err == nil {
        t.Fatalf("expected error for invalid duration")
    }
    if _, err := parse(env.Options{Environment: map[string]string{"AGGREGATION_INTERVAL": "0s"}}); err == nil {
        t.Fatalf("expected error for zero interval")
    }
    if _, err := parse(env.Options{Environment: map[string]string{"DB_MAX_OPEN_CONNS": "0"}}); err == nil {
        t.Fatalf("expected error for empty connection pool")
    }
}
