package compare

import (
	"fmt"
	"os"
	"squeeze/pkg"

	"github.com/spf13/cobra"
)

var CompareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Run every algorithm against one file",
	Long:  "Compress the file with every registered algorithm, report per-algorithm metrics and name the best ratio and fastest run.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		manager := pkg.NewManager()
		results := manager.CompareAlgorithms(input)

		bestRatio := -1
		fastest := -1
		for i, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: failed: %s\n", r.Algorithm, r.Err)
				continue
			}
			fmt.Printf("%s:\n\tOriginal: %d bytes\n\tCompressed: %d bytes\n\tRatio: %.2f%%\n\tTime: %s\n",
				r.Algorithm, r.OriginalSize, r.CompressedSize, r.Ratio, r.Duration)

			if bestRatio < 0 || r.Ratio > results[bestRatio].Ratio {
				bestRatio = i
			}
			if fastest < 0 || r.Duration < results[fastest].Duration {
				fastest = i
			}
		}

		if bestRatio < 0 {
			fmt.Printf("No algorithm succeeded on %s\n", input)
			os.Exit(1)
		}
		fmt.Printf("Best compression ratio: %s (%.2f%%)\n", results[bestRatio].Algorithm, results[bestRatio].Ratio)
		fmt.Printf("Fastest compression: %s (%s)\n", results[fastest].Algorithm, results[fastest].Duration)
	},
}
