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
	"log"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// sessionFromFlags builds a session from the config file, letting
// command-line flags override individual knobs.
func sessionFromFlags(cmd *cobra.Command) (*Session, *Config) {
	config, err := LoadConfig()
	if err != nil {
		config = &defaultConfig
	}

	balanced := config.Workbench.Balanced
	keysOnly := config.Workbench.KeysOnly
	allowDuplicates := config.Workbench.AllowDuplicates
	if cmd.Flags().Changed("bst") {
		balanced = false
	}
	if cmd.Flags().Changed("keys-only") {
		keysOnly = true
	}
	if cmd.Flags().Changed("no-duplicates") {
		allowDuplicates = false
	}

	return NewSession(balanced, keysOnly, allowDuplicates), config
}

func addFlavorFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("bst", false, "plain binary search tree instead of AVL")
	cmd.Flags().Bool("keys-only", false, "store bare keys instead of key-value pairs")
	cmd.Flags().Bool("no-duplicates", false, "reject repeated keys")
}

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
An ordered key/value workbench over binary search and AVL trees [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	launch := func(cmd *cobra.Command, args []string) {
		flavorChosen := cmd.Flags().Changed("bst") ||
			cmd.Flags().Changed("keys-only") ||
			cmd.Flags().Changed("no-duplicates")

		session, config := sessionFromFlags(cmd)
		if config.Workbench.TreeFile != "" {
			flavorChosen = true
			if _, err := session.load([]string{config.Workbench.TreeFile}); err != nil {
				log.Printf("Could not load %s: %v. Starting empty.", config.Workbench.TreeFile, err)
			}
		}
		// Without flags or a saved tree the workbench opens on its
		// flavor picker instead.
		if !flavorChosen {
			session = nil
		}
		if err := runWorkbench(session, NewGuideCache()); err != nil {
			log.Fatalf("Error running workbench: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree workbench",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the workbench UI for building and querying a tree`),
		Args:  cobra.MinimumNArgs(0),
		Run:   launch,
	}
	addFlavorFlags(cmdRun)

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the workbench command guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the workbench command guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file if missing",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdSeed = &cobra.Command{
		Use:   "seed [file]",
		Short: "Fill a tree with random keys and save it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Seed builds a tree from random keys and serializes it to a file`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := sessionFromFlags(cmd)
			count, _ := cmd.Flags().GetInt("count")
			keyRange, _ := cmd.Flags().GetInt("range")
			if err := seedTree(session, args[0], count, keyRange); err != nil {
				log.Fatalf("Error seeding tree: %v", err)
			}
		},
	}
	addFlavorFlags(cmdSeed)
	cmdSeed.Flags().Int("count", 1000, "number of random keys to insert")
	cmdSeed.Flags().Int("range", 500, "keys are drawn from [-range, range]")

	var cmdDump = &cobra.Command{
		Use:   "dump [file]",
		Short: "Print a saved tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dump loads a serialized tree file and prints its diagram`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := sessionFromFlags(cmd)
			if err := dumpTree(session, args[0]); err != nil {
				log.Fatalf("Error dumping tree: %v", err)
			}
		},
	}
	addFlavorFlags(cmdDump)

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the workbench version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arbor",
		Version: version,
		Long:    asciiLogo,
		Run:     launch,
	}
	addFlavorFlags(rootCmd)
	rootCmd.AddCommand(cmdRun, cmdUsage, cmdSettings, cmdSeed, cmdDump, cmdVersion)
	rootCmd.Execute()
}
