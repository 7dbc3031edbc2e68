package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procalc/heatcorr/corr"
	"github.com/procalc/heatcorr/external"
	"github.com/procalc/heatcorr/freeconv"
	"github.com/procalc/heatcorr/internal/config"
	"github.com/procalc/heatcorr/materials"
	"github.com/procalc/heatcorr/plateex"
	"github.com/procalc/heatcorr/supercrit"
)

var (
	re       float64
	pr       float64
	gr       float64
	prw      float64
	mu       float64
	muWall   float64
	length   float64
	diameter float64
	buoyancy bool
	chevron  float64
	rhoW     float64
	rhoB     float64

	method     string
	allMethods bool
	configFile string
	preset     string
	temp       float64
	complete   bool
	verbose    bool

	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scenario glues one registry to the flag-level inputs the CLI carries.
type scenario struct {
	name    string
	desc    string
	methods func(in config.InputConfig, checkRanges bool) []string
	eval    func(in config.InputConfig, method string) (float64, error)
}

func cylinderInput(in config.InputConfig) external.CylinderInput {
	return external.CylinderInput{Re: in.Re, Pr: in.Pr, Prw: in.Prw, Mu: in.Mu, MuW: in.MuWall}
}

func supercritInput(in config.InputConfig) supercrit.Input {
	return supercrit.Input{Re: in.Re, Pr: in.Pr, Prw: in.Prw, RhoW: in.RhoW, RhoB: in.RhoB,
		MuW: in.MuWall, MuB: in.Mu}
}

var scenarios = []scenario{
	{
		name: "external-cylinder",
		desc: "forced convection, crossflow over a cylinder",
		methods: func(in config.InputConfig, cr bool) []string {
			return external.CylinderMethods(cylinderInput(in), cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return external.Cylinder(cylinderInput(in), m)
		},
	},
	{
		name: "external-plate",
		desc: "forced convection over a horizontal flat plate",
		methods: func(in config.InputConfig, cr bool) []string {
			return external.PlateMethods(external.PlateInput{Re: in.Re, Pr: in.Pr}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return external.Plate(external.PlateInput{Re: in.Re, Pr: in.Pr}, m)
		},
	},
	{
		name: "free-vertical-plate",
		desc: "free convection from a vertical plate",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.VerticalPlateMethods(freeconv.VerticalPlateInput{Pr: in.Pr, Gr: in.Gr}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.VerticalPlate(freeconv.VerticalPlateInput{Pr: in.Pr, Gr: in.Gr}, m)
		},
	},
	{
		name: "free-horizontal-plate",
		desc: "free convection from a horizontal plate",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.HorizontalPlateMethods(freeconv.HorizontalPlateInput{Pr: in.Pr, Gr: in.Gr, Buoyancy: in.Buoyancy}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.HorizontalPlate(freeconv.HorizontalPlateInput{Pr: in.Pr, Gr: in.Gr, Buoyancy: in.Buoyancy}, m)
		},
	},
	{
		name: "free-vertical-cylinder",
		desc: "free convection from a vertical cylinder",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.VerticalCylinderMethods(freeconv.VerticalCylinderInput{Pr: in.Pr, Gr: in.Gr, L: in.L, D: in.D}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.VerticalCylinder(freeconv.VerticalCylinderInput{Pr: in.Pr, Gr: in.Gr, L: in.L, D: in.D}, m)
		},
	},
	{
		name: "free-horizontal-cylinder",
		desc: "free convection from a horizontal cylinder",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.HorizontalCylinderMethods(freeconv.HorizontalCylinderInput{Pr: in.Pr, Gr: in.Gr}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.HorizontalCylinder(freeconv.HorizontalCylinderInput{Pr: in.Pr, Gr: in.Gr}, m)
		},
	},
	{
		name: "free-sphere",
		desc: "free convection from a sphere",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.SphereMethods(freeconv.SphereInput{Pr: in.Pr, Gr: in.Gr}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.Sphere(freeconv.SphereInput{Pr: in.Pr, Gr: in.Gr}, m)
		},
	},
	{
		name: "enclosed",
		desc: "natural convection between horizontal plates",
		methods: func(in config.InputConfig, cr bool) []string {
			return freeconv.EnclosedMethods(freeconv.EnclosedInput{Pr: in.Pr, Gr: in.Gr, Buoyancy: in.Buoyancy}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return freeconv.Enclosed(freeconv.EnclosedInput{Pr: in.Pr, Gr: in.Gr, Buoyancy: in.Buoyancy}, m)
		},
	},
	{
		name: "supercritical",
		desc: "supercritical internal flow",
		methods: func(in config.InputConfig, cr bool) []string {
			return supercrit.Methods(supercritInput(in), cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return supercrit.Nu(supercritInput(in), m)
		},
	},
	{
		name: "plate-single",
		desc: "single-phase chevron plate exchanger",
		methods: func(in config.InputConfig, cr bool) []string {
			return plateex.SinglePhaseMethods(plateex.SinglePhaseInput{Re: in.Re, Pr: in.Pr, ChevronAngle: in.Chevron, Mu: in.Mu, MuWall: in.MuWall}, cr)
		},
		eval: func(in config.InputConfig, m string) (float64, error) {
			return plateex.SinglePhase(plateex.SinglePhaseInput{Re: in.Re, Pr: in.Pr, ChevronAngle: in.Chevron, Mu: in.Mu, MuWall: in.MuWall}, m)
		},
	},
}

func findScenario(name string) (*scenario, error) {
	for i := range scenarios {
		if scenarios[i].name == name {
			return &scenarios[i], nil
		}
	}
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return nil, fmt.Errorf("unknown scenario: %s (valid: %s)", name, strings.Join(names, ", "))
}

// gatherInputs builds the input set from config file, preset, then
// flags, in increasing priority.
func gatherInputs(cmd *cobra.Command, scenarioName string) (config.InputConfig, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return config.InputConfig{}, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(scenarioName, preset)
		if p == nil {
			return config.InputConfig{}, fmt.Errorf("unknown preset %q for scenario %s", preset, scenarioName)
		}
		cfg = p
	}
	in := cfg.Inputs

	flagSet := func(name string) bool { return cmd.Flags().Changed(name) }
	if flagSet("re") {
		in.Re = re
	}
	if flagSet("pr") {
		in.Pr = pr
	}
	if flagSet("gr") {
		in.Gr = gr
	}
	if flagSet("prw") {
		in.Prw = corr.Float(prw)
	}
	if flagSet("mu") {
		in.Mu = corr.Float(mu)
	}
	if flagSet("mu-wall") {
		in.MuWall = corr.Float(muWall)
	}
	if flagSet("length") {
		in.L = corr.Float(length)
	}
	if flagSet("diameter") {
		in.D = corr.Float(diameter)
	}
	if flagSet("buoyancy") {
		in.Buoyancy = buoyancy
	}
	if flagSet("chevron") {
		in.Chevron = chevron
	}
	if flagSet("rho-w") {
		in.RhoW = corr.Float(rhoW)
	}
	if flagSet("rho-b") {
		in.RhoB = corr.Float(rhoB)
	}
	return in, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&re, "re", config.DefaultRe, "Reynolds number")
	cmd.Flags().Float64Var(&pr, "pr", config.DefaultPr, "Prandtl number")
	cmd.Flags().Float64Var(&gr, "gr", config.DefaultGr, "Grashof number")
	cmd.Flags().Float64Var(&prw, "prw", 0, "wall Prandtl number")
	cmd.Flags().Float64Var(&mu, "mu", 0, "bulk viscosity, Pa*s")
	cmd.Flags().Float64Var(&muWall, "mu-wall", 0, "wall viscosity, Pa*s")
	cmd.Flags().Float64Var(&length, "length", 0, "characteristic length, m")
	cmd.Flags().Float64Var(&diameter, "diameter", 0, "diameter, m")
	cmd.Flags().BoolVar(&buoyancy, "buoyancy", true, "buoyancy assisted orientation")
	cmd.Flags().Float64Var(&chevron, "chevron", 45, "chevron angle, degrees")
	cmd.Flags().Float64Var(&rhoW, "rho-w", 0, "wall density, kg/m^3")
	cmd.Flags().Float64Var(&rhoB, "rho-b", 0, "bulk density, kg/m^3")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "heatcorr",
		Short: "heat transfer correlation reference",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenarios and their method catalogues",
		RunE:  listScenarios,
	}

	methodsCmd := &cobra.Command{
		Use:   "methods [scenario]",
		Short: "list applicable methods for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  listMethods,
	}
	addInputFlags(methodsCmd)
	methodsCmd.Flags().BoolVar(&allMethods, "all", false, "include methods outside the regime and input availability")

	evalCmd := &cobra.Command{
		Use:   "eval [scenario]",
		Short: "evaluate a correlation",
		Args:  cobra.ExactArgs(1),
		RunE:  evalScenario,
	}
	addInputFlags(evalCmd)
	evalCmd.Flags().StringVar(&method, "method", "", "method name (empty for the scenario default)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "sweep one input and plot the result",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepScenario,
	}
	addInputFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&method, "method", "", "method name")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "re", "input to sweep (re or gr)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1e3, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1e6, "sweep end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", config.DefaultSteps, "sweep points")

	materialCmd := &cobra.Command{
		Use:   "material [k|rho|cp|find] [name]",
		Short: "material property lookup",
		Args:  cobra.ExactArgs(2),
		RunE:  materialLookup,
	}
	materialCmd.Flags().Float64VarP(&temp, "temperature", "T", materials.DefaultT, "temperature, K")
	materialCmd.Flags().BoolVar(&complete, "complete", false, "only materials with rho, k and Cp all available")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if names == nil {
				return fmt.Errorf("no presets for scenario %s", args[0])
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(scenariosCmd, methodsCmd, evalCmd, sweepCmd, materialCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func listScenarios(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("Scenarios"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	in := config.DefaultConfig().Inputs
	for _, s := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.name, s.desc,
			dimStyle.Render(strings.Join(s.methods(in, false), ", ")))
	}
	return nil
}

func listMethods(cmd *cobra.Command, args []string) error {
	s, err := findScenario(args[0])
	if err != nil {
		return err
	}
	in, err := gatherInputs(cmd, s.name)
	if err != nil {
		return err
	}
	for _, name := range s.methods(in, !allMethods) {
		fmt.Println(name)
	}
	return nil
}

func evalScenario(cmd *cobra.Command, args []string) error {
	s, err := findScenario(args[0])
	if err != nil {
		return err
	}
	in, err := gatherInputs(cmd, s.name)
	if err != nil {
		return err
	}
	if method == "" {
		logrus.WithField("scenario", s.name).Debug("resolving default method")
	}
	nu, err := s.eval(in, method)
	if err != nil {
		return err
	}
	fmt.Printf("%.6g\n", nu)
	return nil
}

func sweepScenario(cmd *cobra.Command, args []string) error {
	s, err := findScenario(args[0])
	if err != nil {
		return err
	}
	in, err := gatherInputs(cmd, s.name)
	if err != nil {
		return err
	}

	param, from, to, steps := sweepParam, sweepFrom, sweepTo, sweepSteps
	logSpaced := true
	if configFile != "" || preset != "" {
		// Config or preset sweep settings apply unless flags override.
		cfg := config.DefaultConfig()
		if configFile != "" {
			if cfg, err = config.Load(configFile); err != nil {
				return err
			}
		}
		if preset != "" {
			if p := config.GetPreset(s.name, preset); p != nil {
				cfg = p
			}
		}
		if !cmd.Flags().Changed("param") {
			param = cfg.Sweep.Param
		}
		if !cmd.Flags().Changed("from") {
			from = cfg.Sweep.From
		}
		if !cmd.Flags().Changed("to") {
			to = cfg.Sweep.To
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Sweep.Steps
		}
		logSpaced = cfg.Sweep.Log
	}
	if steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps")
	}

	values := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		frac := float64(i) / float64(steps-1)
		var x float64
		if logSpaced {
			x = from * math.Pow(to/from, frac)
		} else {
			x = from + (to-from)*frac
		}
		point := in
		switch param {
		case "re":
			point.Re = x
		case "gr":
			point.Gr = x
		default:
			return fmt.Errorf("unknown sweep parameter: %s", param)
		}
		nu, err := s.eval(point, method)
		if err != nil {
			return err
		}
		values = append(values, nu)
	}

	caption := fmt.Sprintf("%s: Nu over %s [%.3g .. %.3g]", s.name, param, from, to)
	fmt.Println(asciigraph.Plot(values,
		asciigraph.Height(15),
		asciigraph.Width(72),
		asciigraph.Caption(caption)))
	return nil
}

func materialLookup(cmd *cobra.Command, args []string) error {
	op, name := args[0], args[1]
	switch op {
	case "find":
		id := materials.Nearest(name, complete)
		if id == "" {
			return fmt.Errorf("no material matches %q", name)
		}
		fmt.Printf("%s\t(%s)\n", id, materials.Source(id))
		return nil
	case "k":
		v, err := materials.K(name, temp)
		if err != nil {
			return err
		}
		fmt.Printf("%g W/m/K\n", v)
		return nil
	case "rho":
		v, err := materials.Rho(name)
		if err != nil {
			return err
		}
		fmt.Printf("%g kg/m^3\n", v)
		return nil
	case "cp":
		v, err := materials.Cp(name, temp)
		if err != nil {
			return err
		}
		fmt.Printf("%g J/kg/K\n", v)
		return nil
	default:
		return fmt.Errorf("unknown material operation: %s (valid: k, rho, cp, find)", op)
	}
}
