package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/config"
	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/logger"
	"github.com/strataframe/strata/pkg/physical"
	"github.com/strataframe/strata/pkg/rolling"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "strata",
		Short: "Strata - Typed column substrate for in-memory analytics",
		Long: `Strata provides the typed-column substrate of an in-memory analytical
engine: a logical type catalog, Arrow-backed physical columns, and rolling
window aggregations.`,
	}

	var (
		configPath string
		logLevel   string
	)
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides the config file")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.Logging.Encoding = "console"
		if configPath != "" {
			loaded, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		return logger.Init(logger.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			Encoding:    cfg.Logging.Encoding,
			OutputPaths: cfg.Logging.OutputPaths,
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Strata v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newInspectCmd())
	root.AddCommand(newRollingCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newInspectCmd prints the logical schema of an Arrow IPC file.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the logical schema of an Arrow IPC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0]) //nolint:gosec // G304: path comes from CLI args
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			reader, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.DefaultAllocator))
			if err != nil {
				return fmt.Errorf("failed to read IPC file: %w", err)
			}
			defer reader.Close()

			schema := reader.Schema()
			logger.Info("inspecting file",
				zap.String("path", args[0]),
				zap.Int("fields", schema.NumFields()),
				zap.Int("record_batches", reader.NumRecords()))

			for i := 0; i < schema.NumFields(); i++ {
				field := schema.Field(i)
				dt, err := physical.LogicalOf(field.Type)
				if err != nil {
					fmt.Printf("%-24s %v (no logical mapping)\n", field.Name, field.Type)
					continue
				}
				fmt.Printf("%-24s %s\n", field.Name, dt)
			}
			return nil
		},
	}
}

// newRollingCmd runs a rolling aggregation over a numeric column of an
// Arrow IPC file and prints the result values.
func newRollingCmd() *cobra.Command {
	var (
		column     string
		op         string
		window     int
		minPeriods int
		center     bool
		prob       float64
	)

	cmd := &cobra.Command{
		Use:   "rolling <file>",
		Short: "Run a rolling aggregation over a column of an Arrow IPC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0]) //nolint:gosec // G304: path comes from CLI args
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			reader, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.DefaultAllocator))
			if err != nil {
				return fmt.Errorf("failed to read IPC file: %w", err)
			}
			defer reader.Close()

			idx := reader.Schema().FieldIndices(column)
			if len(idx) == 0 {
				return fmt.Errorf("column %q not found", column)
			}

			var arrays []arrow.Array
			for i := 0; i < reader.NumRecords(); i++ {
				rec, err := reader.RecordAt(i)
				if err != nil {
					return fmt.Errorf("failed to read record batch %d: %w", i, err)
				}
				arrays = append(arrays, rec.Column(idx[0]))
			}

			opts := rolling.Options{
				WindowSize: window,
				MinPeriods: minPeriods,
				Center:     center,
			}
			if opts.MinPeriods == 0 {
				opts.MinPeriods = window
			}

			field := reader.Schema().Field(idx[0])
			switch field.Type.ID() {
			case arrow.INT64:
				col, err := chunked.FromArrays[int64](column, arrays)
				if err != nil {
					return err
				}
				return runRolling(rolling.OverInts(col), op, prob, opts)
			case arrow.FLOAT64:
				col, err := chunked.FromArrays[float64](column, arrays)
				if err != nil {
					return err
				}
				return runRolling(rolling.OverFloats(col), op, prob, opts)
			default:
				return fmt.Errorf("unsupported column type %v: want int64 or float64", field.Type)
			}
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "Column to aggregate (required)")
	cmd.Flags().StringVarP(&op, "op", "o", "mean", "Aggregation: sum, mean, median, quantile, min, max, var, std")
	cmd.Flags().IntVarP(&window, "window", "w", 3, "Window size")
	cmd.Flags().IntVar(&minPeriods, "min-periods", 0, "Minimum observations per window (default: window size)")
	cmd.Flags().BoolVar(&center, "center", false, "Center the window on each element")
	cmd.Flags().Float64VarP(&prob, "quantile", "q", 0.5, "Probability for the quantile aggregation")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runRolling[N dtype.Native](agg rolling.Agg[N], op string, prob float64, opts rolling.Options) error {
	switch op {
	case "sum":
		return emit(agg.RollingSum(opts))
	case "mean":
		return emit(agg.RollingMean(opts))
	case "median":
		return emit(agg.RollingMedian(opts))
	case "quantile":
		return emit(agg.RollingQuantile(prob, opts))
	case "min":
		return emit(agg.RollingMin(opts))
	case "max":
		return emit(agg.RollingMax(opts))
	case "var":
		return emit(agg.RollingVar(opts))
	case "std":
		return emit(agg.RollingStd(opts))
	default:
		return fmt.Errorf("unknown aggregation %q", op)
	}
}

func emit[N dtype.Native](col *chunked.Chunked[N], err error) error {
	if err != nil {
		return err
	}
	defer col.Release()
	col.ForEach(func(i int, v N, valid bool) {
		if valid {
			fmt.Printf("%d\t%v\n", i, v)
		} else {
			fmt.Printf("%d\tnull\n", i)
		}
	})
	return nil
}
