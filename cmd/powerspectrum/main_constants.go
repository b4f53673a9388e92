package main

// Configuration keys (flag names, config-file keys and, upper-cased with
// the env prefix, environment variables)
const (
	keyConfig       = "config"
	keyDegree       = "degree"
	keyWindowFactor = "window-factor"
	keyPeriods      = "periods"
	keyKMin         = "kmin"
	keyKMax         = "kmax"
	keyBaseMin      = "base-min"
	keyBaseMax      = "base-max"
	keyBaseSamples  = "base-samples"
	keyMethod       = "method"
	keyPrecision    = "precision"
	keyOrder        = "order"
	keyPanels       = "panels"
	keyOutputDir    = "out"
	keyFormat       = "format"
	keyStages       = "stages"
	keyTable        = "table"
	keyVerbose      = "verbose"
	keyCPUProfile   = "cpuprofile"
)

// Environment variable prefix, e.g. POWERSPECTRUM_DEGREE
const envPrefix = "POWERSPECTRUM"

// Table output formatting
const (
	tableMinWidth = 0
	tableTabWidth = 8
	tablePadding  = 2
	tablePadChar  = ' '
)

// Period parsing
const periodBitSize = 64
