package config

import (
	"sort"

	"github.com/san-kum/moldyn/internal/md"
)

var Presets = map[string]*Config{
	"argon-nve": {
		Molecule: "argon-pair", Dt: 1.0, TargetTemp: 60.0, Cutoff: 12.0,
		Tau: DefaultTau, Thermostat: md.ThermostatNone, Integrator: md.IntegratorVerlet,
		Steps: 2000,
	},
	// Bonded pairs are not excluded from LJ, so the close O–H contacts
	// heat and disperse the dimer within the first steps; this preset
	// exercises thermostat coupling, not a stable water geometry.
	"water-300k": {
		Molecule: "water-dimer", Dt: 0.5, TargetTemp: 300.0, Cutoff: 10.0,
		Tau: 50.0, Thermostat: md.ThermostatBerendsen, Integrator: md.IntegratorVerlet,
		Steps: 4000,
	},
	"benzene-pi": {
		Molecule: "benzene-stack", Dt: 0.5, TargetTemp: 150.0, Cutoff: 12.0,
		Tau: 50.0, Thermostat: md.ThermostatBerendsen, Integrator: md.IntegratorVerlet,
		Steps: 2000,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
