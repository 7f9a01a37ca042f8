// Copyright 2026 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type WorkbenchConfig struct {
	Balanced        bool   `yaml:"balanced"`
	KeysOnly        bool   `yaml:"keys_only"`
	AllowDuplicates bool   `yaml:"allow_duplicates"`
	TreeFile        string `yaml:"tree_file"`
}

type Config struct {
	Workbench WorkbenchConfig `yaml:"workbench"`
}

var defaultConfig = Config{
	Workbench: WorkbenchConfig{
		Balanced:        true,
		KeysOnly:        false,
		AllowDuplicates: true,
		TreeFile:        "",
	},
}

// LoadConfig never fails hard: any problem with ~/.arbor.yaml falls
// back to the defaults.
func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".arbor.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".arbor.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Arbor Workbench Settings\n")
	fmt.Printf("═══════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n\n", configPath)

	fmt.Printf("🌳 %sWorkbench:%s\n", Green, Reset)
	fmt.Printf("  • %sbalanced%s: %t\n", Green, Reset, config.Workbench.Balanced)
	fmt.Printf("    Self-balancing (AVL) mode versus a plain binary search tree\n")
	fmt.Printf("  • %skeys_only%s: %t\n", Green, Reset, config.Workbench.KeysOnly)
	fmt.Printf("    Store bare keys instead of key-value pairs\n")
	fmt.Printf("  • %sallow_duplicates%s: %t\n", Green, Reset, config.Workbench.AllowDuplicates)
	fmt.Printf("    Whether a key may occur more than once\n")
	fmt.Printf("  • %stree_file%s: %q\n", Green, Reset, config.Workbench.TreeFile)
	fmt.Printf("    Tree file loaded on startup when set\n\n")

	fmt.Printf("💡 Edit %s to change these, for example:\n", configPath)
	fmt.Printf("   workbench:\n     balanced: false\n     allow_duplicates: false\n")
}
