package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys overriding flag defaults.
const (
	envSeed     = "KBTOOL_SEED"
	envWorkers  = "KBTOOL_WORKERS"
	envLogLevel = "KBTOOL_LOG_LEVEL"
)

// loadEnv reads ./.env into the process environment. Variables already set
// win over the file.
func loadEnv() error {
	return godotenv.Load()
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func defaultWorkers() int {
	return int(envInt64(envWorkers, int64(runtime.NumCPU())))
}
