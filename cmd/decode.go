package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

// decodeCmd turns a text and its IOB tags into entity spans
var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode IOB tags into entity spans",
	Long: `Decode a comma separated IOB tag sequence into entity spans.

The text is read from the argument or, when absent, from standard input.
Tags are matched to characters one to one.

Example:
  hanja-api decode 王安石至京 --tags B-PER,I-PER,I-PER,O,B-LOC
  hanja-api decode 王安石至京 --tags B-PER,I-PER,I-PER,O,B-LOC --markup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().String("tags", "", "comma separated IOB tags")
	decodeCmd.Flags().Bool("markup", false, "print the text with entity tags instead of JSON spans")
	_ = decodeCmd.MarkFlagRequired("tags")
}

func runDecode(cmd *cobra.Command, args []string) error {
	text, err := decodeInput(cmd, args)
	if err != nil {
		return err
	}
	iob, _ := cmd.Flags().GetString("tags")
	asMarkup, _ := cmd.Flags().GetBool("markup")

	spans := annotation.ApplyEntityStyles(annotation.Decode(text, annotation.ParseTags(iob)))

	out := cmd.OutOrStdout()
	if asMarkup {
		fmt.Fprintln(out, annotation.Serialize(text, spans))
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(spans)
}

func decodeInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
