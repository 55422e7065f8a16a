package config

// Config is the root pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig holds stage file paths and processing settings.
// Stage boundaries are CSV files; paths are relative to the working
// directory unless absolute.
type PipelineConfig struct {
	RawCSV        string `yaml:"raw_csv"        env:"PIPELINE_RAW_CSV"        env-default:"output/dictionary_raw.csv"`
	NormalizedCSV string `yaml:"normalized_csv" env:"PIPELINE_NORMALIZED_CSV" env-default:"output/dictionary_normalized.csv"`
	CollisionsCSV string `yaml:"collisions_csv" env:"PIPELINE_COLLISIONS_CSV" env-default:"output/reports/normalize_collisions.csv"`
	RankedCSV     string `yaml:"ranked_csv"     env:"PIPELINE_RANKED_CSV"     env-default:"output/dictionary_ranked.csv"`
	FinalCSV      string `yaml:"final_csv"      env:"PIPELINE_FINAL_CSV"      env-default:"output/dictionary_final.csv"`

	// EtymologyCSV is an optional overlay (normalized_word, etymology)
	// produced by the enrichment collaborator. Empty disables the merge.
	EtymologyCSV string `yaml:"etymology_csv" env:"PIPELINE_ETYMOLOGY_CSV"`

	Dedupe      bool `yaml:"dedupe"       env:"PIPELINE_DEDUPE"       env-default:"true"`
	ReportLimit int  `yaml:"report_limit" env:"PIPELINE_REPORT_LIMIT" env-default:"50"`
	DryRun      bool `yaml:"dry_run"      env:"PIPELINE_DRY_RUN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
