package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Print the detected language of a text",
	Long:  "Detects the language from stop words among the first ten words. Reads stdin when no text is given.",
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	l := lang.Detect(text)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l, l.Name())
	return nil
}
