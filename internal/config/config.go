/*
 * config.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr            string        `yaml:"addr"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		Gzip            bool          `yaml:"gzip"`
	} `yaml:"server"`

	PubChem struct {
		BaseURL   string        `yaml:"base_url"`
		RateLimit float64       `yaml:"rate_limit"` // requests per second
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"pubchem"`

	Viewer struct {
		Width       int    `yaml:"width"`
		Height      int    `yaml:"height"`
		ColorScheme string `yaml:"color_scheme"`
		ScriptURL   string `yaml:"script_url"`
	} `yaml:"viewer"`

	Embed struct {
		Seed          int64 `yaml:"seed"` // 0 means a new seed per request
		MaxIterations int   `yaml:"max_iterations"`
	} `yaml:"embed"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // text or json
	} `yaml:"log"`
}

// LoadConfig reads the configuration from path, or from the default locations if
// path is empty. Environment variables (also read from a .env file in the working
// directory) override the file, and defaults fill whatever is left unset.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if path == "" {
		locations := []string{
			"chemview.yaml",
			"chemview.yml",
			filepath.Join(os.Getenv("HOME"), ".config/chemview/config.yaml"),
			"/etc/chemview/config.yaml",
		}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	config := &Config{}
	config.Server.Gzip = true
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := mergeWithEnv(config); err != nil {
		return nil, err
	}
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 10 * time.Second
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 60 * time.Second
	}
	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = 10 * time.Second
	}

	if config.PubChem.BaseURL == "" {
		config.PubChem.BaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	}
	if config.PubChem.RateLimit == 0 {
		config.PubChem.RateLimit = 5
	}
	if config.PubChem.Timeout == 0 {
		config.PubChem.Timeout = 30 * time.Second
	}
	if config.PubChem.UserAgent == "" {
		config.PubChem.UserAgent = "chemview"
	}

	if config.Viewer.Width == 0 {
		config.Viewer.Width = 400
	}
	if config.Viewer.Height == 0 {
		config.Viewer.Height = 400
	}
	if config.Viewer.ColorScheme == "" {
		config.Viewer.ColorScheme = "Jmol"
	}
	if config.Viewer.ScriptURL == "" {
		config.Viewer.ScriptURL = "https://cdn.jsdelivr.net/npm/3dmol@2.4.2/build/3Dmol-min.js"
	}

	if config.Embed.MaxIterations == 0 {
		config.Embed.MaxIterations = 2000
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

func mergeWithEnv(config *Config) error {
	if addr := os.Getenv("CHEMVIEW_ADDR"); addr != "" {
		config.Server.Addr = addr
	}
	if gz := os.Getenv("CHEMVIEW_GZIP"); gz != "" {
		b, err := strconv.ParseBool(gz)
		if err != nil {
			return fmt.Errorf("invalid CHEMVIEW_GZIP: %w", err)
		}
		config.Server.Gzip = b
	}
	if url := os.Getenv("CHEMVIEW_PUBCHEM_URL"); url != "" {
		config.PubChem.BaseURL = url
	}
	if rate := os.Getenv("CHEMVIEW_PUBCHEM_RATE"); rate != "" {
		r, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return fmt.Errorf("invalid CHEMVIEW_PUBCHEM_RATE: %w", err)
		}
		config.PubChem.RateLimit = r
	}
	if timeout := os.Getenv("CHEMVIEW_PUBCHEM_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid CHEMVIEW_PUBCHEM_TIMEOUT: %w", err)
		}
		config.PubChem.Timeout = d
	}
	if seed := os.Getenv("CHEMVIEW_EMBED_SEED"); seed != "" {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CHEMVIEW_EMBED_SEED: %w", err)
		}
		config.Embed.Seed = s
	}
	if level := os.Getenv("CHEMVIEW_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
	if format := os.Getenv("CHEMVIEW_LOG_FORMAT"); format != "" {
		config.Log.Format = format
	}
	return nil
}
