package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	// Pipeline
	InputPath    string
	OutputPath   string
	Organization string
	Brotli       bool

	// SFTP publish
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPKnownHosts            string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		// Pipeline
		InputPath:    getenv("TEACHING_INPUT", "data/ta_courses_confirmed.json"),
		OutputPath:   getenv("TEACHING_OUTPUT", "data/teaching.yaml"),
		Organization: getenv("TEACHING_ORGANIZATION", "University of South Florida"),
		Brotli:       getenvBool("TEACHING_BROTLI", false),

		// SFTP publish
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPKnownHosts:            getenv("SFTP_KNOWN_HOSTS", defaultKnownHosts()),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", false),
	}
}

func defaultKnownHosts() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ssh", "known_hosts")
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
