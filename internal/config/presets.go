package config

func f(v float64) *float64 { return &v }

var Presets = map[string]map[string]*Config{
	"external-cylinder": {
		"air": {
			Scenario: "external-cylinder",
			Inputs:   InputConfig{Re: 6071, Pr: 0.7},
			Sweep:    SweepConfig{Param: "re", From: 1e3, To: 1e5, Steps: 60, Log: true},
		},
		"air-wall": {
			Scenario: "external-cylinder", Method: "Zukauskas",
			Inputs: InputConfig{Re: 7992, Pr: 0.707, Prw: f(0.69)},
			Sweep:  SweepConfig{Param: "re", From: 1e3, To: 2e5, Steps: 60, Log: true},
		},
		"oil": {
			Scenario: "external-cylinder", Method: "Whitaker",
			Inputs: InputConfig{Re: 300, Pr: 100, Mu: f(0.01), MuWall: f(0.02)},
			Sweep:  SweepConfig{Param: "re", From: 10, To: 1e4, Steps: 60, Log: true},
		},
	},
	"external-plate": {
		"laminar": {
			Scenario: "external-plate",
			Inputs:   InputConfig{Re: 1e5, Pr: 0.7},
			Sweep:    SweepConfig{Param: "re", From: 1e4, To: 5e5, Steps: 60, Log: true},
		},
		"turbulent": {
			Scenario: "external-plate",
			Inputs:   InputConfig{Re: 1e7, Pr: 0.7},
			Sweep:    SweepConfig{Param: "re", From: 5e5, To: 1e8, Steps: 60, Log: true},
		},
	},
	"free-vertical-cylinder": {
		"short": {
			Scenario: "free-vertical-cylinder",
			Inputs:   InputConfig{Pr: 0.72, Gr: 1e7, L: f(0.5), D: f(0.1)},
			Sweep:    SweepConfig{Param: "gr", From: 1e5, To: 1e9, Steps: 60, Log: true},
		},
		"no-geometry": {
			Scenario: "free-vertical-cylinder",
			Inputs:   InputConfig{Pr: 0.72, Gr: 1e7},
			Sweep:    SweepConfig{Param: "gr", From: 1e5, To: 1e9, Steps: 60, Log: true},
		},
	},
	"free-horizontal-plate": {
		"hot-up": {
			Scenario: "free-horizontal-plate",
			Inputs:   InputConfig{Pr: 5.54, Gr: 3.21e8, Buoyancy: true},
			Sweep:    SweepConfig{Param: "gr", From: 1e6, To: 1e10, Steps: 60, Log: true},
		},
		"cold-up": {
			Scenario: "free-horizontal-plate",
			Inputs:   InputConfig{Pr: 5.54, Gr: 3.21e8, Buoyancy: false},
			Sweep:    SweepConfig{Param: "gr", From: 1e6, To: 1e10, Steps: 60, Log: true},
		},
	},
	"enclosed": {
		"air-gap": {
			Scenario: "enclosed",
			Inputs:   InputConfig{Pr: 0.7, Gr: 1e6 / 0.7, Buoyancy: true},
			Sweep:    SweepConfig{Param: "gr", From: 1e3, To: 1e8, Steps: 60, Log: true},
		},
	},
	"supercritical": {
		"water": {
			Scenario: "supercritical",
			Inputs:   InputConfig{Re: 1e5, Pr: 1.2, RhoW: f(330), RhoB: f(290)},
			Sweep:    SweepConfig{Param: "re", From: 1e4, To: 1e6, Steps: 60, Log: true},
		},
	},
	"plate-single": {
		"chevron30": {
			Scenario: "plate-single",
			Inputs:   InputConfig{Re: 2000, Pr: 0.7, Chevron: 30},
			Sweep:    SweepConfig{Param: "re", From: 10, To: 1e4, Steps: 60, Log: true},
		},
		"chevron60": {
			Scenario: "plate-single",
			Inputs:   InputConfig{Re: 2000, Pr: 0.7, Chevron: 60},
			Sweep:    SweepConfig{Param: "re", From: 10, To: 1e4, Steps: 60, Log: true},
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
