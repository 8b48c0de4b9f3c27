package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// minBufferSize is the floor this embedding layer clamps the ingest chunk
// size to. The core trie itself accepts any positive size (see
// radix-hw/internal/trie.BulkInsertFromStream) — the floor here exists so
// a misconfigured deployment doesn't thrash the filesystem with one-byte
// reads.
const minBufferSize = 1024

type Config struct {
	Env         string       `yaml:"env" env-default:"local"`
	HistoryPath string       `yaml:"history_path" env-required:"true"`
	Ingest      IngestConfig `yaml:"ingest"`
}

type IngestConfig struct {
	DefaultPath string `yaml:"default_path" env-default:"./data/words.txt"`
	BufferSize  int    `yaml:"buffer_size" env-default:"1048576"`
}

func MustLoad() *Config {
	configPathFlag := flag.String("config", "", "Path to the config file")
	historyPathFlag := flag.String("history-path", "", "Path to the ingestion history store")
	wordlistPathFlag := flag.String("wordlist-path", "", "Path to the word list to ingest")
	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = fetchConfigPath() // fallback to default method
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("error loading config file: " + err.Error())
	}

	if *historyPathFlag != "" {
		cfg.HistoryPath = *historyPathFlag
	}

	if *wordlistPathFlag != "" {
		cfg.Ingest.DefaultPath = *wordlistPathFlag
	}

	if cfg.Ingest.BufferSize < minBufferSize {
		cfg.Ingest.BufferSize = minBufferSize
	}

	return &cfg
}

// fetchConfigPath fetches config path from environment variable or default if it was not set in command line flag.
// Priority: flag > env > default.
// Default value is ./config/config_local.yaml.
func fetchConfigPath() string {
	var res string

	res = os.Getenv("CONFIG_PATH")
	if res == "" {
		cwd, _ := os.Getwd()
		fmt.Println("Current working directory:", cwd)
	}

	if res == "" {
		res = "./config/config_local.yaml" // default path
	}

	fmt.Println("Config path:", res)
	return res
}
