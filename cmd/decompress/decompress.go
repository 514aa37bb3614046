package decompress

import (
	"fmt"
	"os"
	"squeeze/pkg"

	"github.com/spf13/cobra"
)

var out string

var DecompressCmd = &cobra.Command{
	Use:   "decompress [file]",
	Short: "Decompress a container file",
	Long:  "Decompress a .huff, .rle or .zsq container, picking the codec from the file extension.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		codec, err := pkg.CodecForPath(input)
		if err != nil {
			fmt.Printf("Error decompressing %s: %s\n", input, err)
			os.Exit(1)
		}

		output, err := codec.Decompress(input, out)
		if err != nil {
			fmt.Printf("Error decompressing %s: %s\n", input, err)
			os.Exit(1)
		}

		stats := codec.Stats()
		fmt.Printf("Decompressed %s to %s in %s\n", input, output, stats.Duration)
		if stats.Algorithm == "Huffman Coding" {
			if stats.Verified {
				fmt.Println("\tIntegrity: VERIFIED")
			} else {
				fmt.Println("\tIntegrity: VERIFICATION FAILED")
			}
		}
	},
}

func init() {
	DecompressCmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default derives from the input)")
}
