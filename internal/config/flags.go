package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-log-role logger role label
//	-gen-length default generated password length
//	-gen-extended use the extended generator character set by default
func ParseFlags() *StructuredConfig {
	var databasePath string
	var jsonConfigPath string
	var logRole string
	var generatorLength int
	var generatorExtended bool

	flag.StringVar(&databasePath, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&logRole, "log-role", "", "Logger role label")
	flag.IntVar(&generatorLength, "gen-length", 0, "Default generated password length")
	flag.BoolVar(&generatorExtended, "gen-extended", false, "Use extended generator character set")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogRole: logRole,
		},
		Storage: Storage{
			DB: DB{
				Path: databasePath,
			},
		},
		Generator: Generator{
			Length:   generatorLength,
			Extended: generatorExtended,
		},
		JSONFilePath: jsonConfigPath,
	}
}
