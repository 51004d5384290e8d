package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/TrimCut/internal/importer"
	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/piwi3910/TrimCut/internal/project"
)

var dxfUnits = map[string]float64{
	"in": importer.UnitsInches,
	"ft": importer.UnitsFeet,
	"mm": importer.UnitsMillimeters,
	"cm": importer.UnitsCentimeters,
}

// addInputFlags registers the flags that describe a plan configuration.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayP("measure", "m", nil, `measurement as length[:room[:wall]], e.g. "8' 4 1/2:Kitchen:North"`)
	f.StringSliceP("lengths", "l", nil, "available stock lengths (default from config)")
	f.String("kerf", "", "saw kerf, e.g. 1/8 (default from config)")
	f.Bool("balanced", false, "split every oversize measurement into even pieces")
	f.String("file", "", "load measurements and stock from a project or plan JSON file")
	f.String("saved", "", "load a saved configuration by name")
	f.String("csv", "", "import measurements from a CSV file")
	f.String("xlsx", "", "import measurements from an Excel workbook")
	f.String("dxf", "", "import wall lengths from a DXF floor plan")
	f.String("dxf-units", "in", "DXF drawing units: in, ft, mm, cm")
	f.String("blade", "", "use the kerf of a named blade from the inventory")
	f.String("stock", "", "use the lengths of a named stock preset from the inventory")
}

// parseMeasure parses one -m value of the form length[:room[:wall]].
func parseMeasure(s string) (model.Measurement, error) {
	parts := strings.SplitN(s, ":", 3)
	length, err := model.ParseLength(parts[0])
	if err != nil {
		return model.Measurement{}, fmt.Errorf("measurement %q: %w", s, err)
	}
	var room, wall string
	if len(parts) > 1 {
		room = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		wall = strings.TrimSpace(parts[2])
	}
	return model.NewMeasurement(length, room, wall), nil
}

// loadPlanInput builds a validated plan configuration from the input flags.
// Import warnings are written to w.
func loadPlanInput(cmd *cobra.Command, w io.Writer) (model.PlanConfig, error) {
	f := cmd.Flags()
	var cfg model.PlanConfig

	file, _ := f.GetString("file")
	saved, _ := f.GetString("saved")
	switch {
	case file != "" && saved != "":
		return cfg, fmt.Errorf("--file and --saved cannot be combined")
	case file != "":
		c, err := project.LoadPlanConfig(file)
		if err != nil {
			return cfg, fmt.Errorf("failed to load %s: %w", file, err)
		}
		cfg = c
	case saved != "":
		c, err := loadSaved(cmd.Context(), saved)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}

	if err := importInto(cmd, w, &cfg); err != nil {
		return cfg, err
	}

	measures, _ := f.GetStringArray("measure")
	for _, s := range measures {
		m, err := parseMeasure(s)
		if err != nil {
			return cfg, err
		}
		cfg.Measurements = append(cfg.Measurements, m)
	}
	if len(cfg.Measurements) == 0 {
		return cfg, fmt.Errorf("no measurements given\nHint: use -m, --file, --saved, --csv, --xlsx or --dxf")
	}

	if err := applyStock(cmd, &cfg); err != nil {
		return cfg, err
	}
	if err := applyKerf(cmd, &cfg); err != nil {
		return cfg, err
	}

	if balanced, _ := f.GetBool("balanced"); balanced {
		for i := range cfg.Measurements {
			cfg.Measurements[i].SplitBalanced = true
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSaved(ctx context.Context, name string) (model.PlanConfig, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore()
	if err != nil {
		return model.PlanConfig{}, err
	}
	defer st.Close()

	sc, err := st.Get(ctx, name)
	if err != nil {
		return model.PlanConfig{}, fmt.Errorf("failed to load saved configuration: %w", err)
	}
	return sc.Config, nil
}

func importInto(cmd *cobra.Command, w io.Writer, cfg *model.PlanConfig) error {
	f := cmd.Flags()
	csvPath, _ := f.GetString("csv")
	xlsxPath, _ := f.GetString("xlsx")
	dxfPath, _ := f.GetString("dxf")
	units, _ := f.GetString("dxf-units")

	var results []importer.ImportResult
	if csvPath != "" {
		results = append(results, importer.ImportCSV(csvPath))
	}
	if xlsxPath != "" {
		results = append(results, importer.ImportExcel(xlsxPath))
	}
	if dxfPath != "" {
		scale, ok := dxfUnits[strings.ToLower(units)]
		if !ok {
			return fmt.Errorf("invalid --dxf-units %q\nValid units: in, ft, mm, cm", units)
		}
		results = append(results, importer.ImportDXF(dxfPath, scale))
	}

	for _, r := range results {
		if len(r.Measurements) == 0 && len(r.Errors) > 0 {
			return fmt.Errorf("import failed: %s", strings.Join(r.Errors, "; "))
		}
		for _, msg := range append(r.Errors, r.Warnings...) {
			printWarning(w, msg)
		}
		cfg.Measurements = append(cfg.Measurements, r.Measurements...)
		app.logger.Debug("measurements imported", "count", len(r.Measurements), "errors", len(r.Errors))
	}
	return nil
}

// applyStock picks stock lengths from -l, then --stock, then the loaded
// configuration, then the app defaults.
func applyStock(cmd *cobra.Command, cfg *model.PlanConfig) error {
	f := cmd.Flags()
	lengths, _ := f.GetStringSlice("lengths")
	preset, _ := f.GetString("stock")

	switch {
	case len(lengths) > 0:
		cfg.AvailableLengths = cfg.AvailableLengths[:0]
		for _, s := range lengths {
			l, err := model.ParseLength(s)
			if err != nil {
				return fmt.Errorf("stock length %q: %w", s, err)
			}
			cfg.AvailableLengths = append(cfg.AvailableLengths, l)
		}
	case preset != "":
		inv, err := project.LoadInventory(app.inventoryPath())
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		sp := inv.FindStockByName(preset)
		if sp == nil {
			return fmt.Errorf("unknown stock preset %q\nHint: run 'trimcut inventory list'", preset)
		}
		sp.ApplyToConfig(cfg)
	case len(cfg.AvailableLengths) == 0:
		cfg.AvailableLengths = append([]float64(nil), app.config.DefaultStockLengths...)
	}
	return nil
}

// applyKerf picks the kerf from --kerf, then --blade, then the loaded
// configuration, then the app default.
func applyKerf(cmd *cobra.Command, cfg *model.PlanConfig) error {
	f := cmd.Flags()
	kerfFlag, _ := f.GetString("kerf")
	blade, _ := f.GetString("blade")

	switch {
	case kerfFlag != "":
		k, err := model.ParseLength(kerfFlag)
		if err != nil {
			return fmt.Errorf("kerf %q: %w", kerfFlag, err)
		}
		*cfg = cfg.WithKerf(k)
	case blade != "":
		inv, err := project.LoadInventory(app.inventoryPath())
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		bp := inv.FindBladeByName(blade)
		if bp == nil {
			return fmt.Errorf("unknown blade %q\nHint: run 'trimcut inventory list'", blade)
		}
		bp.ApplyToConfig(cfg)
	case cfg.Kerf == nil:
		*cfg = cfg.WithKerf(app.config.DefaultKerf)
	}
	return nil
}
