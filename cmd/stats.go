package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/groghall/tavernbot/internal/engine"
)

var statsTrials int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <dice>",
	Short: "Roll an expression repeatedly and summarize the totals",
	Long: `Evaluates a dice expression many times and reports the spread of
the totals. Useful for sanity-checking how an expression behaves, and for
seeing the large-count approximation track the analytic mean.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr := strings.Join(args, " ")
		roller := engine.NewRoller()

		// Validate once before burning trials on a bad expression.
		first, err := roller.Evaluate(expr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if first.Silent {
			fmt.Println("Nothing to roll: the expression contains no dice term.")
			os.Exit(1)
		}

		bar := progressbar.Default(int64(statsTrials), "Rolling")

		min, max := first.Total, first.Total
		sum, sumSq := 0.0, 0.0
		for i := 0; i < statsTrials; i++ {
			out, err := roller.Evaluate(expr)
			if err != nil {
				fmt.Printf("\nTrial %d failed: %v\n", i+1, err)
				os.Exit(1)
			}
			if out.Total < min {
				min = out.Total
			}
			if out.Total > max {
				max = out.Total
			}
			sum += float64(out.Total)
			sumSq += float64(out.Total) * float64(out.Total)
			bar.Add(1)
		}

		mean := sum / float64(statsTrials)
		stddev := math.Sqrt(sumSq/float64(statsTrials) - mean*mean)

		fmt.Printf("\n%s over %d trials:\n", expr, statsTrials)
		fmt.Printf("  min:    %d\n", min)
		fmt.Printf("  max:    %d\n", max)
		fmt.Printf("  mean:   %.2f\n", mean)
		fmt.Printf("  stddev: %.2f\n", stddev)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntVarP(&statsTrials, "trials", "n", 1000, "Number of evaluations to run")
}
