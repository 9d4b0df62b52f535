package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Discord struct {
	Token   string
	AppID   string
	GuildID string
}

type DXmateAPI struct {
	BaseURL string
	Timeout time.Duration
}

type Matchmaking struct {
	PollInterval       time.Duration
	MaxEmptyTicks      int
	UnrankedMinMatches int
}

type HTTPServer struct {
	Host string
	Port string
}

type GRPCServer struct {
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	RankTTL  time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Enabled is false when no database host is configured; match history is skipped then.
func (p Postgres) Enabled() bool {
	return p.Host != ""
}

type Log struct {
	Level string
}

type Config struct {
	Discord     Discord
	DXmateAPI   DXmateAPI
	Matchmaking Matchmaking
	HTTP        HTTPServer
	GRPC        GRPCServer
	Redis       RedisCache
	Postgres    Postgres
	Log         Log
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Discord:     newDiscord(),
		DXmateAPI:   newDXmateAPI(),
		Matchmaking: newMatchmaking(),
		HTTP:        newHTTP(),
		GRPC:        newGRPC(),
		Redis:       newRedis(),
		Postgres:    newPostgres(),
		Log:         Log{Level: getenv("LOG_LEVEL", "info")},
	}
}

func newDiscord() Discord {
	return Discord{
		Token:   getsecret("DISCORD_BOT_TOKEN"),
		AppID:   getenv("DISCORD_BOT_CLIENT_ID", ""),
		GuildID: getenv("DXMATE_DISCORD_SERVER_GUILD_ID", ""),
	}
}

func newDXmateAPI() DXmateAPI {
	return DXmateAPI{
		BaseURL: strings.TrimSuffix(getenv("DXMATE_API_BASE_URL", "http://localhost:3000"), "/"),
		Timeout: getduration("DXMATE_API_TIMEOUT", 10*time.Second),
	}
}

func newMatchmaking() Matchmaking {
	return Matchmaking{
		PollInterval:       getduration("MATCHMAKING_POLL_INTERVAL", 5*time.Second),
		MaxEmptyTicks:      getint("MATCHMAKING_MAX_EMPTY_TICKS", 25),
		UnrankedMinMatches: getint("UNRANKED_MIN_RANKED_MATCHES", 10),
	}
}

func newHTTP() HTTPServer {
	return HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newGRPC() GRPCServer {
	return GRPCServer{
		Port: getenv("GRPC_PORT", "9090"),
	}
}

func newRedis() RedisCache {
	return RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD"),
		RankTTL:  getduration("REDIS_RANK_TTL", 10*time.Minute),
	}
}

func newPostgres() Postgres {
	return Postgres{
		Host:     getenv("DB_HOST", ""),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "dxmate"),
		Password: getsecret("DB_PASSWORD"),
		DBName:   getenv("DB_NAME", "dxmate"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined\n", logtag, key)
		return ""
	}
	fmt.Printf("%s %s = ****\n", logtag, key)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("%s %s is not an integer (%q). Using default value %d", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("%s %s is not a duration (%q). Using default value %s", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return v
}
