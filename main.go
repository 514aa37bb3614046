package main

import (
	compare "squeeze/cmd/compare"
	compress "squeeze/cmd/compress"
	decompress "squeeze/cmd/decompress"
	inspect "squeeze/cmd/inspect"
	version "squeeze/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "squeeze",
	Short: "Lossless file compression utility",
	Long:  "Squeeze compresses text files with Huffman, run-length or zstandard coding and compares the algorithms against each other.",
}

func main() {
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(compare.CompareCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.Execute()
}
