package inspect

import (
	"fmt"
	"os"
	"squeeze/pkg"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "View a container's metadata",
	Long:  "Print the metadata embedded in a compressed container without decoding its payload.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]

		info, err := pkg.Inspect(file)
		if err != nil {
			fmt.Printf("Error inspecting %s: %s\n", file, err)
			os.Exit(1)
		}

		fmt.Printf("Container %s:\n\tAlgorithm: %s\n\tOriginal size: %d bytes\n\tPayload size: %d\n\tTimestamp: %s\n",
			file, info.Algorithm, info.OriginalSize, info.PayloadSize, info.Timestamp)
		if info.Algorithm == "Huffman Coding" {
			fmt.Printf("\tCharacters: %d\n\tDistinct symbols: %d\n\tChecksum: %d\n\tHash: %s\n",
				info.CharacterCount, info.DistinctSymbols, info.Checksum, info.FileHash)
		}
	},
}
