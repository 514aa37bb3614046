package compress

import (
	"fmt"
	"os"
	"squeeze/pkg"

	"github.com/spf13/cobra"
)

var (
	algo string
	out  string
)

var CompressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress a text file",
	Long:  "Compress a text file with the selected algorithm and print the compression statistics.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		var codec pkg.Codec
		switch algo {
		case "huffman":
			codec = pkg.NewHuffman()
		case "rle":
			codec = pkg.NewRunLength()
		case "zstd":
			codec = pkg.NewZstd()
		default:
			fmt.Printf("Unknown algorithm %q (want huffman, rle or zstd)\n", algo)
			os.Exit(1)
		}

		output, err := codec.Compress(input, out)
		if err != nil {
			fmt.Printf("Error compressing %s: %s\n", input, err)
			os.Exit(1)
		}

		stats := codec.Stats()
		fmt.Printf("Compressed %s to %s\n", input, output)
		fmt.Printf("\tAlgorithm: %s\n\tOriginal: %d bytes\n\tCompressed: %d bytes\n\tRatio: %.2f%%\n\tTime: %s\n",
			stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.Ratio, stats.Duration)
		if stats.Algorithm == "Huffman Coding" {
			fmt.Printf("\tChecksum: %d\n\tHash: %s\n", stats.Checksum, stats.FileHash)
		}
	},
}

func init() {
	CompressCmd.Flags().StringVarP(&algo, "algo", "a", "huffman", "Compression algorithm: huffman|rle|zstd")
	CompressCmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default derives from the input)")
}
